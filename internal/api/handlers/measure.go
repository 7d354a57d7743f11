package handlers

import (
	"campus-paths-service/internal/api/dto"
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/services"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// MeasureHandler reports straight-line distances between two campus points.
type MeasureHandler struct {
	Projection domain.Projection
	Logger     *zap.Logger
}

// Measure answers GET /measure?x1=&y1=&x2=&y2=.
func (h *MeasureHandler) Measure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	req := dto.MeasureRequest{
		X1: strings.TrimSpace(q.Get("x1")),
		Y1: strings.TrimSpace(q.Get("y1")),
		X2: strings.TrimSpace(q.Get("x2")),
		Y2: strings.TrimSpace(q.Get("y2")),
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, validationMessage(err), invalidFields(err)...)
		return
	}

	raw := []struct {
		name  string
		value string
	}{{"x1", req.X1}, {"y1", req.Y1}, {"x2", req.X2}, {"y2", req.Y2}}

	var vals [4]float64
	var invalid []string
	for i, f := range raw {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			invalid = append(invalid, f.name)
			continue
		}
		vals[i] = v
	}
	if len(invalid) > 0 {
		writeError(w, r, h.Logger, http.StatusBadRequest, "coordinates must be finite numbers", invalid...)
		return
	}

	m := services.Measure(h.Projection,
		domain.Point{X: vals[0], Y: vals[1]},
		domain.Point{X: vals[2], Y: vals[3]},
	)

	writeJSON(w, r, h.Logger, http.StatusOK, dto.MeasureResponse{
		From:         toPoint(m.From),
		To:           toPoint(m.To),
		FromGeo:      dto.CoordinatesResponse{Lat: m.FromGeo.Lat, Lng: m.FromGeo.Lng},
		ToGeo:        dto.CoordinatesResponse{Lat: m.ToGeo.Lat, Lng: m.ToGeo.Lng},
		PlanarLength: m.PlanarLength,
		GeoMeters:    m.GeoMeters,
		Bearing:      m.Bearing,
		GeoBearing:   m.GeoBearing,
	})
}
