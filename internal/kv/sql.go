package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

// Dialect captures the statements that differ between SQL engines.
type Dialect struct {
	Name   string
	Create string
	Select string
	Upsert string
}

var (
	Postgres = Dialect{
		Name: "postgres",
		Create: `CREATE TABLE IF NOT EXISTS kv_entries (
	name TEXT PRIMARY KEY,
	payload BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		Select: `SELECT payload FROM kv_entries WHERE name = $1`,
		Upsert: `INSERT INTO kv_entries (name, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
	}

	SQLite = Dialect{
		Name: "sqlite",
		Create: `CREATE TABLE IF NOT EXISTS kv_entries (
	name TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		Select: `SELECT payload FROM kv_entries WHERE name = ?`,
		Upsert: `INSERT INTO kv_entries (name, payload, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
	}
)

// SQL persists keys as rows of a single table, one blob per row.
type SQL struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQL wraps an open database and ensures the table exists.
func NewSQL(ctx context.Context, db *sql.DB, dialect Dialect) (*SQL, error) {
	if _, err := db.ExecContext(ctx, dialect.Create); err != nil {
		return nil, fmt.Errorf("create kv table (%s): %w", dialect.Name, err)
	}
	return &SQL{db: db, dialect: dialect}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file.
func OpenSQLite(ctx context.Context, path string) (*SQL, error) {
	if path == "" {
		path = "prompt_pronto.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; SQLite serializes anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s, err := NewSQL(ctx, db, SQLite)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.dialect.Select, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return payload, nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.Upsert, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQL) Close() error {
	return s.db.Close()
}
