package ports

import (
	"campus-paths-service/internal/domain"
	"context"
)

// Contract for caching computed building-to-building routes.
// Routes are pure functions of the loaded graph, so entries never need
// invalidation while the same dataset is served.
type RouteCache interface {
	// Return the cached route and true, or false on a miss.
	Get(ctx context.Context, from, to string) (*domain.Route, bool, error)
	// Store a computed route.
	Put(ctx context.Context, route *domain.Route) error
}
