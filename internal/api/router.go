package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Database interface{ Health(context.Context) error }
	Handler  *VoteHandler
}

// RouterResult holds the router and resources that need cleanup
type RouterResult struct {
	Router       *chi.Mux
	RateLimiters *RateLimiters
}

// NewRouter creates and configures the HTTP router.
// Caller must call result.RateLimiters.Stop() on shutdown.
func NewRouter(cfg *RouterConfig) *RouterResult {
	r := chi.NewRouter()

	rateLimiters := NewRateLimiters()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware)
	// Default limits: 30/min and 6/sec per IP
	r.Use(rateLimiters.Minute.Middleware)
	r.Use(rateLimiters.Second.Middleware)

	r.Get("/api/health", NewHealthHandler(cfg.Database))

	h := cfg.Handler
	r.Get("/", h.Index)
	r.Get("/editors.json", h.Editors)
	r.Get("/stats.json", h.Stats)
	r.Get("/votes.json", h.Votes)

	// Voting: 1/day/IP on top of the default limits
	r.With(rateLimiters.Vote.Middleware).Post("/vote", h.Vote)

	r.Get("/robots.txt", h.Robots)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/manifest.json", h.Manifest)

	return &RouterResult{
		Router:       r,
		RateLimiters: rateLimiters,
	}
}
