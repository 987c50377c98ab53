package http

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generation"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/repository"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/service"
)

// cannedService answers each kind with a fixed payload, or fails when err is set.
type cannedService struct {
	err error
}

func (s cannedService) Generate(_ context.Context, kind domain.Kind, _ map[string]string) (generation.Result, error) {
	if s.err != nil {
		return generation.Result{}, s.err
	}
	switch kind {
	case domain.KindContacts:
		return generation.Result{Kind: kind, Records: json.RawMessage(`[{"name":"Bia","role":"CMO","company":"Loja, Ltda","email":"b@l.com","instagram":"@bia"}]`)}, nil
	case domain.KindClientList:
		return generation.Result{Kind: kind, Records: json.RawMessage(`[{"businessName":"Doce Mel","niche":"Confeitaria","location":"Recife","contactName":"Ana","email":"a@d.com","instagram":"@docemel"}]`)}, nil
	case domain.KindApproach:
		return generation.Result{Kind: kind, Text: "Assunto: Parceria\nOlá, tudo bem?"}, nil
	}
	return generation.Result{Kind: kind, Text: "texto gerado"}, nil
}

type fixture struct {
	router   *gin.Engine
	projects *service.ProjectService
	lists    *repository.ContactListRepository
}

func setup(t *testing.T, svc generators.TextService) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kv.NewMemory()
	projects := service.NewProjectService(repository.NewProjectRepository(store, nil))
	lists := repository.NewContactListRepository(store, nil)

	set := generators.NewSet(svc, nil, nil)
	h := New(set, generators.NewRegistry(set, 0, 0, nil), generators.NewSaver(projects, lists), lists, nil)

	router := gin.New()
	h.Register(router.Group("/api/v1"))
	return fixture{router: router, projects: projects, lists: lists}
}

func (f fixture) raw(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f fixture) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	rr := f.raw(t, method, path, body)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return rr.Code, out
}

func (f fixture) open(t *testing.T, kind string, fields map[string]string) string {
	t.Helper()
	code, body := f.do(t, http.MethodPost, "/api/v1/drafts", map[string]any{"kind": kind, "fields": fields})
	require.Equal(t, http.StatusCreated, code, body)
	return body["draft"].(map[string]any)["id"].(string)
}

func TestGenerateOneShot(t *testing.T) {
	f := setup(t, cannedService{})

	code, body := f.do(t, http.MethodPost, "/api/v1/generate/site", map[string]any{"fields": map[string]string{"description": "pet shop"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "site", body["kind"])
	assert.Equal(t, false, body["fallback"])
	assert.Equal(t, "texto gerado", body["content"].(map[string]any)["text"])
	assert.NotContains(t, body, "warning")

	t.Run("missing input", func(t *testing.T) {
		code, body := f.do(t, http.MethodPost, "/api/v1/generate/contract", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("unknown kind", func(t *testing.T) {
		code, _ := f.do(t, http.MethodPost, "/api/v1/generate/poem", nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestGenerateChunkedBody(t *testing.T) {
	f := setup(t, cannedService{})

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/site", io.MultiReader(strings.NewReader(body)))
		req.Header.Set("Content-Type", "application/json")
		req.TransferEncoding = []string{"chunked"}
		require.Equal(t, int64(-1), req.ContentLength)
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		return rr
	}

	rr := send(`{"fields":{"description":"pet shop"}}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "texto gerado")

	rr = send("")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = send("{oops")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateFallbackIsFlagged(t *testing.T) {
	f := setup(t, cannedService{err: errors.New("quota exceeded")})

	code, body := f.do(t, http.MethodPost, "/api/v1/generate/contract", map[string]any{"fields": map[string]string{"contractType": "nda"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["fallback"])
	assert.Contains(t, body["warning"], "quota exceeded")
	assert.Contains(t, body["content"].(map[string]any)["text"], "Erro ao gerar contrato")
}

func TestDraftLifecycle(t *testing.T) {
	f := setup(t, cannedService{})
	id := f.open(t, "site", nil)

	code, body := f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/generate", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code, body)

	code, body = f.do(t, http.MethodPatch, "/api/v1/drafts/"+id, map[string]any{"name": "Teste", "fields": map[string]string{"description": "Hello"}})
	require.Equal(t, http.StatusOK, code)
	draft := body["draft"].(map[string]any)
	assert.Equal(t, true, draft["ready"])
	assert.Equal(t, "Teste", draft["name"])

	code, body = f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/generate", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "texto gerado", body["draft"].(map[string]any)["result"].(map[string]any)["text"])

	code, body = f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", nil)
	require.Equal(t, http.StatusOK, code, body)
	projectID := body["project"].(map[string]any)["id"].(string)
	assert.Equal(t, projectID, body["draft"].(map[string]any)["projectId"])

	// A second save updates the same record.
	f.do(t, http.MethodPatch, "/api/v1/drafts/"+id, map[string]any{"fields": map[string]string{"description": "World"}})
	code, _ = f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", nil)
	require.Equal(t, http.StatusOK, code)

	items, err := f.projects.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, projectID, items[0].ID)
	assert.Equal(t, "World", items[0].Input.Fields()["description"])
}

func TestDraftNotFound(t *testing.T) {
	f := setup(t, cannedService{})
	code, body := f.do(t, http.MethodGet, "/api/v1/drafts/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["ok"])
}

func TestSaveRequiresName(t *testing.T) {
	f := setup(t, cannedService{})
	id := f.open(t, "contract", map[string]string{"contractType": "nda"})
	f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/generate", nil)

	code, _ := f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body := f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", map[string]any{"name": "NDA"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "NDA", body["project"].(map[string]any)["name"])
}

func TestSaveBeforeGenerate(t *testing.T) {
	f := setup(t, cannedService{})
	id := f.open(t, "approach", map[string]string{"target": "lojas"})

	code, _ := f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestContactsSaveAndExport(t *testing.T) {
	f := setup(t, cannedService{})
	id := f.open(t, "contacts", map[string]string{"description": "lojas de moda"})
	f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/generate", nil)

	code, body := f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "lojas de moda", body["contactList"].(map[string]any)["query"])

	code, body = f.do(t, http.MethodGet, "/api/v1/contact-lists", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["contactLists"], 1)

	rr := f.raw(t, http.MethodGet, "/api/v1/drafts/"+id+"/export/csv", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "contatos_gerados.csv")
	rows, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Loja, Ltda", rows[1][2])

	code, body = f.do(t, http.MethodGet, "/api/v1/drafts/"+id+"/links", nil)
	require.Equal(t, http.StatusOK, code)
	profiles := body["profiles"].([]any)
	require.Len(t, profiles, 1)
	assert.Equal(t, "https://instagram.com/bia", profiles[0].(map[string]any)["url"])

	rr = f.raw(t, http.MethodGet, "/api/v1/drafts/"+id+"/export/print", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClientListDefaultName(t *testing.T) {
	f := setup(t, cannedService{})
	id := f.open(t, "client_list", map[string]string{"niche": "Confeitaria"})
	f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/generate", nil)

	code, body := f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/save", nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.True(t, strings.HasPrefix(body["project"].(map[string]any)["name"].(string), "Confeitaria - "))

	rr := f.raw(t, http.MethodGet, "/api/v1/drafts/"+id+"/export/csv", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "clientes_encontrados.csv")
}

func TestTextExports(t *testing.T) {
	f := setup(t, cannedService{})
	id := f.open(t, "approach", map[string]string{"target": "lojas"})

	rr := f.raw(t, http.MethodGet, "/api/v1/drafts/"+id+"/links", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	f.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/generate", nil)

	code, body := f.do(t, http.MethodGet, "/api/v1/drafts/"+id+"/links", nil)
	require.Equal(t, http.StatusOK, code)
	links := body["links"].(map[string]any)
	assert.Equal(t, "mailto:?subject=Parceria&body=Ol%C3%A1%2C%20tudo%20bem%3F", links["mailto"])
	assert.True(t, strings.HasPrefix(links["whatsapp"].(string), "https://wa.me/?text=Assunto%3A%20Parceria"))

	rr = f.raw(t, http.MethodGet, "/api/v1/drafts/"+id+"/export/print", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Olá, tudo bem?")

	rr = f.raw(t, http.MethodGet, "/api/v1/drafts/"+id+"/export/csv", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
