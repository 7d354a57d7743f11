package handlers

import (
	"campus-paths-service/internal/api/dto"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// BuildingLister is the part of the path service the building endpoint needs.
type BuildingLister interface {
	Buildings(ctx context.Context) map[string]string
}

// BuildingHandler exposes the building directory.
type BuildingHandler struct {
	Service BuildingLister
	Logger  *zap.Logger
}

func (h *BuildingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListBuildingsResponse(h.Service.Buildings(r.Context()))
	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
