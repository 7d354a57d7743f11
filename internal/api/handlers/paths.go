package handlers

import (
	"campus-paths-service/internal/api/dto"
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/platform/obs"
	"campus-paths-service/internal/services"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RouteFinder is the part of the path service the path endpoint needs.
type RouteFinder interface {
	Route(ctx context.Context, src, dest string) (*domain.Route, error)
}

type PathHandler struct {
	Service RouteFinder
	Logger  *zap.Logger
}

// Path answers GET /getPath?src=<short>&dest=<short>.
func (h *PathHandler) Path(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	req := dto.PathRequest{
		Src:  strings.TrimSpace(q.Get("src")),
		Dest: strings.TrimSpace(q.Get("dest")),
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, validationMessage(err), invalidFields(err)...)
		return
	}

	route, err := h.Service.Route(r.Context(), req.Src, req.Dest)
	if err != nil {
		var unknown *services.UnknownBuildingError
		switch {
		case errors.As(err, &unknown):
			var invalid []string
			if unknown.BadSrc {
				invalid = append(invalid, "src")
			}
			if unknown.BadDest {
				invalid = append(invalid, "dest")
			}
			writeError(w, r, h.Logger, http.StatusBadRequest, unknown.Error(), invalid...)
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, r, h.Logger, http.StatusNotFound, "no path exists from "+req.Src+" to "+req.Dest)
		default:
			h.Logger.Error("route failed",
				zap.String("req_id", obs.RequestID(r.Context())),
				zap.String("src", req.Src),
				zap.String("dest", req.Dest),
				zap.Error(err),
			)
			writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, toPathResponse(route))
}

func toPathResponse(route *domain.Route) dto.PathResponse {
	res := dto.PathResponse{
		Start:      toPoint(route.Path.Start),
		Cost:       route.Path.TotalCost,
		Path:       make([]dto.SegmentResponse, 0, len(route.Path.Segments)),
		Directions: route.Directions,
		Distance:   route.Summary,
	}
	for _, s := range route.Path.Segments {
		res.Path = append(res.Path, dto.SegmentResponse{
			Start: toPoint(s.Start),
			End:   toPoint(s.End),
			Cost:  s.Cost,
		})
	}
	return res
}

func toPoint(p domain.Point) dto.PointResponse {
	return dto.PointResponse{X: p.X, Y: p.Y}
}
