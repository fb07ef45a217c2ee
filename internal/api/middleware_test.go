package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware_HonorsOriginsSetAfterInit(t *testing.T) {
	// Simulates CORS_ORIGINS arriving from a .env file: the variable
	// is set after package init, before the first request.
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://vote.example.com")

	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/stats.json", nil)
	req.Header.Set("Origin", "https://vote.example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://vote.example.com" {
		t.Errorf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/stats.json", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin must get no allow header, got %q", got)
	}
}
