package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	router := gin.New()
	router.Use(RequestIDMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		seen = logging.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("echoes incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := rr.Header().Get("X-Request-Id")
		assert.Len(t, rid, 32)
		assert.Equal(t, rid, seen)
	})

	entries := logs.FilterMessage("request").All()
	assert.Len(t, entries, 2)
	assert.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status"])
}

func TestAPIKeyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(key string) *gin.Engine {
		r := gin.New()
		r.Use(APIKeyMiddleware(key))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	cases := []struct {
		name     string
		expected string
		header   string
		status   int
	}{
		{"disabled when unset", "", "", http.StatusOK},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"wrong key", "secret", "nope", http.StatusUnauthorized},
		{"correct key", "secret", "secret", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("X-API-Key", tc.header)
			}
			rr := httptest.NewRecorder()
			build(tc.expected).ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}
