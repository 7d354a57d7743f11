package cache

import (
	"campus-paths-service/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRouteCache is a Redis-backed cache of computed routes keyed by
// (from, to). Entries expire after TTL; a zero TTL keeps them indefinitely.
type RedisRouteCache struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, prefix string, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{Client: client, Prefix: prefix, TTL: ttl}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("new redis client: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("new redis client: ping: %w", err)
	}
	return client, nil
}

type cachedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type cachedSegment struct {
	Start cachedPoint `json:"start"`
	End   cachedPoint `json:"end"`
	Cost  float64     `json:"cost"`
}

type cachedRoute struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Start      cachedPoint     `json:"start"`
	Segments   []cachedSegment `json:"segments"`
	TotalCost  float64         `json:"total_cost"`
	Directions string          `json:"directions"`
	Summary    string          `json:"summary"`
}

// Fetch a cached route.
func (c *RedisRouteCache) Get(ctx context.Context, from, to string) (*domain.Route, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("route cache: redis client is nil")
	}

	raw, err := c.Client.Get(ctx, c.key(from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache %q -> %q: %w", from, to, err)
	}

	var cr cachedRoute
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, false, fmt.Errorf("get route cache %q -> %q: decode: %w", from, to, err)
	}

	segments := make([]domain.Segment, 0, len(cr.Segments))
	for _, s := range cr.Segments {
		segments = append(segments, domain.Segment{
			Start: domain.Point{X: s.Start.X, Y: s.Start.Y},
			End:   domain.Point{X: s.End.X, Y: s.End.Y},
			Cost:  s.Cost,
		})
	}

	return &domain.Route{
		From: cr.From,
		To:   cr.To,
		Path: domain.Path{
			Start:     domain.Point{X: cr.Start.X, Y: cr.Start.Y},
			Segments:  segments,
			TotalCost: cr.TotalCost,
		},
		Directions: cr.Directions,
		Summary:    cr.Summary,
	}, true, nil
}

// Store a computed route.
func (c *RedisRouteCache) Put(ctx context.Context, route *domain.Route) error {
	if c.Client == nil {
		return errors.New("route cache: redis client is nil")
	}
	if route == nil {
		return errors.New("put route cache: route is nil")
	}

	cr := cachedRoute{
		From:       route.From,
		To:         route.To,
		Start:      cachedPoint{X: route.Path.Start.X, Y: route.Path.Start.Y},
		Segments:   make([]cachedSegment, 0, len(route.Path.Segments)),
		TotalCost:  route.Path.TotalCost,
		Directions: route.Directions,
		Summary:    route.Summary,
	}
	for _, s := range route.Path.Segments {
		cr.Segments = append(cr.Segments, cachedSegment{
			Start: cachedPoint{X: s.Start.X, Y: s.Start.Y},
			End:   cachedPoint{X: s.End.X, Y: s.End.Y},
			Cost:  s.Cost,
		})
	}

	payload, err := json.Marshal(cr)
	if err != nil {
		return fmt.Errorf("put route cache %q -> %q: encode: %w", route.From, route.To, err)
	}

	if err := c.Client.Set(ctx, c.key(route.From, route.To), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put route cache %q -> %q: %w", route.From, route.To, err)
	}
	return nil
}

// key escapes both names so no pair of ids can collide on the separator.
func (c *RedisRouteCache) key(from, to string) string {
	return strings.Join([]string{c.Prefix, url.QueryEscape(from), url.QueryEscape(to)}, ":")
}
