package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sgoral/voe/internal/vote"
)

// VoteStore is the storage surface the handlers need
type VoteStore interface {
	Insert(ctx context.Context, editorID int) (*vote.Vote, error)
	Stats(ctx context.Context, dir vote.Directory) (*vote.Stats, error)
	Range(ctx context.Context, q vote.RangeQuery) (vote.RecordList, error)
}

// VoteHandler handles vote and statistics requests
type VoteHandler struct {
	store     VoteStore
	directory vote.Directory
	publicURL string
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(store VoteStore, directory vote.Directory, publicURL string) *VoteHandler {
	return &VoteHandler{
		store:     store,
		directory: directory,
		publicURL: publicURL,
	}
}

// Editors handles GET /editors.json.
// The response object lists editors in roster order.
func (h *VoteHandler) Editors(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.directory)
}

// Stats handles GET /stats.json
func (h *VoteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context(), h.directory)
	if err != nil {
		slog.Error("Failed to compute vote stats", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Votes handles GET /votes.json?from=&to=&editor=.
// All filters are optional; a filter that does not parse as an integer
// is ignored, as is an editor filter naming an unknown editor.
func (h *VoteHandler) Votes(w http.ResponseWriter, r *http.Request) {
	var q vote.RangeQuery

	if v, err := strconv.ParseInt(r.URL.Query().Get("from"), 10, 64); err == nil {
		q.From = &v
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("to"), 10, 64); err == nil {
		q.To = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("editor")); err == nil && h.directory.Contains(v) {
		q.Editor = &v
	}

	records, err := h.store.Range(r.Context(), q)
	if err != nil {
		slog.Error("Failed to query votes", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to query votes")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// VoteRequest is the body of POST /vote
type VoteRequest struct {
	Editor int `json:"editor"`
}

// Vote handles POST /vote
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if err := parseJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !h.directory.Contains(req.Editor) {
		respondError(w, http.StatusBadRequest, "unknown editor")
		return
	}

	v, err := h.store.Insert(r.Context(), req.Editor)
	if err != nil {
		slog.Error("Failed to record vote", "error", err, "editor", req.Editor)
		respondError(w, http.StatusInternalServerError, "failed to record vote")
		return
	}

	name, _ := h.directory.Name(strconv.Itoa(v.Editor))
	slog.Info("Vote recorded", "id", v.ID, "editor", name)

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":     v.ID,
		"editor": v.Editor,
		"voted":  float64(v.Voted.UnixMilli()) / 1000,
	})
}

// publicRoutes are the pages listed in the sitemap
var publicRoutes = []string{
	"/",
	"/editors.json",
	"/stats.json",
	"/votes.json",
	"/robots.txt",
	"/sitemap.xml",
	"/manifest.json",
}

// Robots handles GET /robots.txt
func (h *VoteHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: *\nSitemap: %s/sitemap.xml\n", h.publicURL)
}

// Sitemap handles GET /sitemap.xml, generated from the route table
func (h *VoteHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprint(w, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, route := range publicRoutes {
		fmt.Fprintf(w, "<url><loc>%s%s</loc><priority>1.0</priority></url>", h.publicURL, route)
	}
	fmt.Fprint(w, `</urlset>`)
}

// Manifest handles GET /manifest.json
func (h *VoteHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"$schema":          "https://json.schemastore.org/web-manifest-combined.json",
		"short_name":       "Vim or Emacs",
		"name":             "Vim or Emacs?",
		"description":      "Vim or GNU Emacs?",
		"start_url":        ".",
		"display":          "standalone",
		"theme_color":      "#fbfbfb",
		"background_color": "#181818",
	})
}

// Index handles GET /
func (h *VoteHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "voe - vim or emacs voting API")
}
