package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler provides a minimal liveness check endpoint.
type HealthHandler struct {
	Logger *zap.Logger
	// Number of buildings loaded, reported for quick sanity checks.
	Buildings int
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{"status": "ok", "buildings": h.Buildings}
	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
