package main

import (
	"campus-paths-service/internal/adapters/cache"
	"campus-paths-service/internal/adapters/sources"
	"campus-paths-service/internal/api"
	"campus-paths-service/internal/config"
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/platform/db"
	"campus-paths-service/internal/platform/obs"
	"campus-paths-service/internal/ports"
	"campus-paths-service/internal/services"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := obs.NewLogger(cfg.Env, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	source, closeSource, err := openSource(ctx, cfg.Campus)
	if err != nil {
		return err
	}
	defer closeSource()

	data, err := source.LoadCampus(ctx)
	if err != nil {
		return err
	}

	// An invalid dataset is fatal: the service never starts on a partial graph.
	campus, err := services.BuildCampus(data)
	if err != nil {
		return err
	}
	logger.Info("campus loaded",
		zap.String("source", cfg.Campus.Source),
		zap.Int("buildings", len(campus.Buildings())),
		zap.Int("nodes", campus.Graph().Len()),
		zap.Int("edges", campus.Graph().EdgeCount()),
	)

	var routeCache ports.RouteCache
	if cfg.Cache.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		routeCache = cache.NewRedisRouteCache(client, cfg.Cache.KeyPrefix, cfg.Cache.TTL)
		logger.Info("route cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	metrics := obs.NewMetrics("campus_paths")

	svc, err := services.NewPathService(services.PathServiceConfig{
		Campus:  campus,
		Cache:   routeCache,
		Metrics: metrics,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	router := api.NewRouter(api.RouterConfig{
		Service:        svc,
		Metrics:        metrics,
		Logger:         logger,
		Projection:     domain.UWProjection,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		BuildingCount:  len(campus.Buildings()),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openSource selects the configured campus source. The returned close func
// is always non-nil.
func openSource(ctx context.Context, cfg config.CampusConfig) (ports.CampusSource, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case "csv":
		return sources.NewCSVSource(cfg.BuildingsPath, cfg.PathsPath), noop, nil
	case "yaml":
		return sources.NewYAMLSource(cfg.YAMLPath), noop, nil
	case "postgres":
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return sources.NewPostgresSource(conn), func() { _ = conn.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("open campus source: unknown source %q", cfg.Source)
	}
}
