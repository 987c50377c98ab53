package kv

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the behaviour every driver must share.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "prompt_projects")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "prompt_projects", []byte(`[{"id":"1"}]`)))
		got, err := s.Get(ctx, "prompt_projects")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(got))
	})

	t.Run("overwrite replaces whole value", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "prompt_projects", []byte(`[]`)))
		got, err := s.Get(ctx, "prompt_projects")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("keys with separators", func(t *testing.T) {
		key := "snapshots/saved_contacts/20261018T000000Z.json"
		require.NoError(t, s.Set(ctx, key, []byte(`{"ok":true}`)))
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(got))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}

func TestMemory(t *testing.T) {
	exerciseStorage(t, NewMemory())
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'z'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	got[1] = 'z'

	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestFile(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	exerciseStorage(t, f)
}

func TestFileRequiresDir(t *testing.T) {
	_, err := NewFile("")
	assert.Error(t, err)
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedis(client)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStorage(t, store)

	raw, err := mr.Get("promptpronto:prompt_projects")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	assert.False(t, mr.Exists("prompt_projects"))
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorage(t, s)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "saved_contacts", []byte(`[1]`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, "saved_contacts")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))
}

func setupPostgresMock(t *testing.T) (*SQL, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_entries`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewSQL(context.Background(), db, Postgres)
	require.NoError(t, err)
	return store, mock, db
}

func TestPostgres_Get(t *testing.T) {
	store, mock, db := setupPostgresMock(t)
	defer db.Close()
	ctx := context.Background()

	t.Run("returns payload", func(t *testing.T) {
		mock.ExpectQuery(`SELECT payload FROM kv_entries WHERE name = \$1`).
			WithArgs("prompt_projects").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[]`)))

		got, err := store.Get(ctx, "prompt_projects")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps no rows to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT payload FROM kv_entries`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		mock.ExpectQuery(`SELECT payload FROM kv_entries`).
			WithArgs("prompt_projects").
			WillReturnError(fmt.Errorf("connection reset"))

		_, err := store.Get(ctx, "prompt_projects")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "connection reset")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_Set(t *testing.T) {
	store, mock, db := setupPostgresMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO kv_entries`).
		WithArgs("prompt_projects", []byte(`[{"id":"1"}]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "prompt_projects", []byte(`[{"id":"1"}]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSQLPropagatesCreateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE`).WillReturnError(fmt.Errorf("permission denied"))

	_, err = NewSQL(context.Background(), db, Postgres)
	assert.ErrorContains(t, err, "permission denied")
}

func TestS3(t *testing.T) {
	rt := &fakeS3{objects: make(map[string][]byte)}
	store := NewS3WithClient(newFakeS3Client(t, rt), "backups", "pp/")

	exerciseStorage(t, store)

	rt.mu.Lock()
	defer rt.mu.Unlock()
	assert.Contains(t, rt.objects, "backups/pp/prompt_projects")
}

func TestS3RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{})
	assert.Error(t, err)
}

func newFakeS3Client(t *testing.T, rt http.RoundTripper) *s3.Client {
	t.Helper()
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	require.NoError(t, err)
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String("https://mock.s3.local")
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
}

// fakeS3 answers the handful of path-style S3 calls the driver makes.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte // bucket/key -> body
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(req.URL.Path, "/")
	switch req.Method {
	case http.MethodHead:
		return fakeResponse(http.StatusOK, nil), nil
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if strings.Contains(req.Header.Get("Content-Encoding"), "aws-chunked") {
			body = decodeAWSChunked(body)
		}
		f.objects[path] = body
		resp := fakeResponse(http.StatusOK, nil)
		resp.Header.Set("ETag", `"etag"`)
		return resp, nil
	case http.MethodGet:
		body, ok := f.objects[path]
		if !ok {
			resp := fakeResponse(http.StatusNotFound, []byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			resp.Header.Set("Content-Type", "application/xml")
			return resp, nil
		}
		resp := fakeResponse(http.StatusOK, body)
		resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
		return resp, nil
	}
	return fakeResponse(http.StatusNotImplemented, nil), nil
}

func fakeResponse(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Header:        http.Header{},
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// decodeAWSChunked strips aws-chunked framing: <hex>[;ext]\r\n<data>\r\n ... 0\r\n<trailers>
func decodeAWSChunked(b []byte) []byte {
	var out []byte
	for len(b) > 0 {
		line, rest, ok := bytes.Cut(b, []byte("\r\n"))
		if !ok {
			break
		}
		sizeHex, _, _ := bytes.Cut(line, []byte(";"))
		size, err := strconv.ParseInt(string(sizeHex), 16, 64)
		if err != nil || size == 0 || int64(len(rest)) < size {
			break
		}
		out = append(out, rest[:size]...)
		b = bytes.TrimPrefix(rest[size:], []byte("\r\n"))
	}
	return out
}
