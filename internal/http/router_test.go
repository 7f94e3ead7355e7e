package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRouterMethodGuard(t *testing.T) {
	router := NewRouter(Routes{
		Chat:   okHandler,
		Health: okHandler,
	})

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestRouterRegisteredRoutes(t *testing.T) {
	router := NewRouter(Routes{
		Chat:        okHandler,
		ChatHistory: okHandler,
		Health:      okHandler,
	})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/chat", http.StatusOK},
		{http.MethodGet, "/chat/history", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/internal/telemetry/ride", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}
}
