package api

import (
	"campus-paths-service/internal/api/handlers"
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/platform/obs"
	"campus-paths-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Service        *services.PathService
	Metrics        *obs.Metrics
	Logger         *zap.Logger
	Projection     domain.Projection
	AllowedOrigins []string
	BuildingCount  int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger, cfg.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	health := &handlers.HealthHandler{Logger: logger, Buildings: cfg.BuildingCount}
	buildings := &handlers.BuildingHandler{Service: cfg.Service, Logger: logger}
	paths := &handlers.PathHandler{Service: cfg.Service, Logger: logger}
	measure := &handlers.MeasureHandler{Projection: cfg.Projection, Logger: logger}

	r.HandleFunc("/health", health.Health)
	r.HandleFunc("/getBuildings", buildings.List)
	r.HandleFunc("/getPath", paths.Path)
	r.HandleFunc("/measure", measure.Measure)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	return r
}
