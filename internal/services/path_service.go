package services

import (
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/platform/obs"
	"campus-paths-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// UnknownBuildingError reports which side of a route query named a building
// that does not exist. It matches domain.ErrUnknownNode under errors.Is.
type UnknownBuildingError struct {
	Src  string
	Dest string
	// Which names were invalid.
	BadSrc  bool
	BadDest bool
}

func (e *UnknownBuildingError) Error() string {
	switch {
	case e.BadSrc && e.BadDest:
		return fmt.Sprintf("buildings %q and %q do not exist", e.Src, e.Dest)
	case e.BadSrc:
		return fmt.Sprintf("building %q does not exist", e.Src)
	default:
		return fmt.Sprintf("building %q does not exist", e.Dest)
	}
}

func (e *UnknownBuildingError) Unwrap() error { return domain.ErrUnknownNode }

// PathService answers building listing and route queries over a loaded
// campus. It keeps no mutable state of its own and is safe for concurrent use.
type PathService struct {
	campus  *CampusMap
	cache   ports.RouteCache
	metrics *obs.Metrics
	logger  *zap.Logger
}

// PathServiceConfig carries everything a PathService needs. Campus is
// required; Cache, Metrics and Logger are optional.
type PathServiceConfig struct {
	Campus  *CampusMap
	Cache   ports.RouteCache
	Metrics *obs.Metrics
	Logger  *zap.Logger
}

func NewPathService(cfg PathServiceConfig) (*PathService, error) {
	if cfg.Campus == nil {
		return nil, errors.New("new path service: campus is nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PathService{
		campus:  cfg.Campus,
		cache:   cfg.Cache,
		metrics: cfg.Metrics,
		logger:  logger,
	}, nil
}

// Buildings maps every building short name to its display name.
func (s *PathService) Buildings(ctx context.Context) map[string]string {
	bldgs := s.campus.Buildings()
	out := make(map[string]string, len(bldgs))
	for _, b := range bldgs {
		out[b.ShortName] = b.LongName
	}
	return out
}

// Route computes the shortest walking route between two buildings.
//
// Unknown names yield *UnknownBuildingError; an unreachable destination yields
// an error matching domain.ErrNotFound.
func (s *PathService) Route(ctx context.Context, src, dest string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, s.logger, "path.Route")(&err)

	badSrc := !s.campus.HasBuilding(src)
	badDest := !s.campus.HasBuilding(dest)
	if badSrc || badDest {
		s.countOutcome(obs.OutcomeUnknownBuilding)
		return nil, &UnknownBuildingError{Src: src, Dest: dest, BadSrc: badSrc, BadDest: badDest}
	}

	if s.cache != nil {
		cached, ok, cerr := s.cache.Get(ctx, src, dest)
		if cerr != nil {
			s.logger.Warn("route cache read failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(cerr))
		}
		if ok {
			s.countCache(true)
			s.countOutcome(obs.OutcomeFound)
			return cached, nil
		}
		s.countCache(false)
	}

	start := time.Now()
	path, err := FindPath(s.campus.Graph(), src, dest)
	if s.metrics != nil {
		s.metrics.SearchTime.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.countOutcome(obs.OutcomeNoPath)
		} else {
			s.countOutcome(obs.OutcomeError)
		}
		return nil, fmt.Errorf("route %q -> %q: %w", src, dest, err)
	}

	route := &domain.Route{
		From:       src,
		To:         dest,
		Path:       path,
		Directions: Narrate(path),
		Summary:    SummarizeDistance(path.TotalCost),
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, route); err != nil {
			s.logger.Warn("route cache write failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
		}
	}

	s.countOutcome(obs.OutcomeFound)
	return route, nil
}

func (s *PathService) countOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.PathQueries.WithLabelValues(outcome).Inc()
	}
}

func (s *PathService) countCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHits.Inc()
	} else {
		s.metrics.CacheMisses.Inc()
	}
}
