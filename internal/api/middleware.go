package api

import (
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// LoggingMiddleware logs incoming requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

// allowedOrigins returns the set of origins permitted for CORS.
// Reads from CORS_ORIGINS env var (comma-separated); empty means the
// stats endpoints are only consumed same-origin or by the TUI client,
// which does not send an Origin header. Resolved on first request,
// not at init, so values loaded from .env are honored.
var allowedOrigins = sync.OnceValue(func() map[string]bool {
	m := make(map[string]bool)
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			m[o] = true
		}
	}
	return m
})

// CORSMiddleware adds CORS headers for cross-origin requests
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// In development, allow all origins
		if os.Getenv("ENV") == "development" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if allowedOrigins()[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
