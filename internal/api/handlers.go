package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// NewHealthHandler creates a health handler with a database check
func NewHealthHandler(dbHealthChecker interface{ Health(context.Context) error }) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]string)
		status := "ok"

		if dbHealthChecker != nil {
			if err := dbHealthChecker.Health(r.Context()); err != nil {
				slog.Error("Database health check failed", "error", err)
				services["database"] = "unhealthy"
				status = "degraded"
			} else {
				services["database"] = "healthy"
			}
		}

		response := HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  services,
		}

		if status != "ok" {
			respondJSON(w, http.StatusServiceUnavailable, response)
			return
		}
		respondJSON(w, http.StatusOK, response)
	}
}

// parseJSON is a helper to decode JSON request bodies
func parseJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
