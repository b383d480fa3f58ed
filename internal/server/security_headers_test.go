package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/dataset"
	"github.com/osse101/ValleyCompanion_Go/internal/repository/repositorytest"
)

func TestSecurityHeaders(t *testing.T) {
	store := dataset.NewStore(repositorytest.Fixture())
	router := NewRouter(Options{Backend: "memory"}, catalog.NewService(store), store)

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	// Error responses carry the headers too
	for _, path := range []string{"/api/v1/crops", "/api/v1/npcs?name=nobody", "/healthz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		for header, expected := range expectedHeaders {
			assert.Equal(t, expected, rec.Header().Get(header), "%s %s", path, header)
		}
	}
}
