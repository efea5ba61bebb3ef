package api

import (
	"net/http"

	"github.com/phrazzld/timension/internal/api/shared"
)

// Content modes reported by the health check.
const (
	ContentModeLive     = "live"
	ContentModeFallback = "fallback"
)

// HealthHandler reports liveness and whether content comes from the model.
type HealthHandler struct {
	live func() bool
}

// NewHealthHandler creates a HealthHandler. live reports whether a model
// credential is configured; nil means fallback mode.
func NewHealthHandler(live func() bool) *HealthHandler {
	return &HealthHandler{live: live}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	mode := ContentModeFallback
	if h.live != nil && h.live() {
		mode = ContentModeLive
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Content: mode})
}
