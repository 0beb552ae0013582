// Package health serves the liveness check outside the OpenAPI surface.
package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	applog "github.com/janisto/travel-planner-api/internal/platform/logging"
)

// Path is where the health check is mounted.
const Path = "/health"

const statusHealthy = "healthy"

// Response is the health check payload.
type Response struct {
	Status string `json:"status"`
}

// Mount registers the health check for GET and HEAD.
func Mount(router chi.Router) {
	router.Get(Path, Handler)
	router.Head(Path, Handler)
}

// Handler reports the process as healthy. The body is omitted for HEAD.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if err := json.NewEncoder(w).Encode(Response{Status: statusHealthy}); err != nil {
		applog.LogError(r.Context(), "failed to write health response", err)
	}
}
