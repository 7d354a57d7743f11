package api

import (
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/platform/obs"
	"campus-paths-service/internal/ports"
	"campus-paths-service/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *obs.Metrics) {
	t.Helper()

	a := domain.Point{X: 0, Y: 0}
	b := domain.Point{X: 0, Y: -100}
	campus, err := services.BuildCampus(&ports.CampusData{
		Buildings: []domain.Building{
			{ShortName: "SOU", LongName: "South Hall", Location: a},
			{ShortName: "NOR", LongName: "North Hall", Location: b},
			{ShortName: "ISL", LongName: "Island", Location: domain.Point{X: 500, Y: 500}},
		},
		Paths: []ports.PathRecord{
			{Start: a, End: b, Distance: 1200},
			{Start: b, End: a, Distance: 1200},
		},
	})
	require.NoError(t, err)

	metrics := obs.NewMetrics("test")
	svc, err := services.NewPathService(services.PathServiceConfig{
		Campus:  campus,
		Metrics: metrics,
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		Service:        svc,
		Metrics:        metrics,
		Logger:         zap.NewNop(),
		Projection:     domain.UWProjection,
		AllowedOrigins: []string{"http://localhost:3000"},
		BuildingCount:  len(campus.Buildings()),
	}), metrics
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterGetPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/getPath?src=SOU&dest=NOR", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1200.0, body["cost"])
	assert.Len(t, body["path"], 1)
	assert.Equal(t, "Directions:\n1. Walk 366 m, bearing 0 degrees\nArrived at destination.\n", body["directions"])
	assert.Equal(t, "Total distance: 365.8 m", body["distance"])
}

func TestRouterStatusCodes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		target string
		want   int
	}{
		{"/health", http.StatusOK},
		{"/getBuildings", http.StatusOK},
		{"/getPath?src=SOU&dest=NOPE", http.StatusBadRequest},
		{"/getPath?src=SOU&dest=ISL", http.StatusNotFound},
		{"/measure?x1=0&y1=0&x2=3&y2=4", http.StatusOK},
		{"/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouterBuildingsCoverPathEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/getBuildings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var buildings map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buildings))
	assert.Equal(t, map[string]string{"SOU": "South Hall", "NOR": "North Hall", "ISL": "Island"}, buildings)

	for short := range buildings {
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/getPath?src="+short+"&dest="+short, nil))
		assert.Equal(t, http.StatusOK, rec.Code, short)
	}
}

func TestRouterRequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = serve(router, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRouterCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/getPath", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := serve(router, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/getBuildings", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = serve(router, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	serve(router, httptest.NewRequest(http.MethodGet, "/getPath?src=SOU&dest=NOR", nil))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/getPath",status="200"} 1`)
	assert.Contains(t, body, `test_path_queries_total{outcome="found"} 1`)
}
