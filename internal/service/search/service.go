package search

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
	"github.com/logstream/pipeline/internal/service/cache"
)

type service struct {
	cache    cache.InterfaceCache
	primary  PrimarySearcher
	fallback FallbackSearcher
	breaker  *gobreaker.CircuitBreaker
	group    singleflight.Group
	ttl      time.Duration
	metrics  Metrics
	log      logger.InterfaceLogger

	hits   int64
	misses int64
}

var _ Service = (*service)(nil)

// New builds the search service. The breaker trips to degrade-to-fallback
// after repeated SearchBackendErrors rather than hammering a dead search
// store on every request (DESIGN.md: grounded on jordigilh-kubernaut's
// use of sony/gobreaker).
func New(c cache.InterfaceCache, primary PrimarySearcher, fallback FallbackSearcher, ttl time.Duration, metrics Metrics, log logger.InterfaceLogger) Service {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "search-store",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &service{
		cache:    c,
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		ttl:      ttl,
		metrics:  metrics,
		log:      log,
	}
}

// Search implements spec §4.8/§4.9 end to end.
func (s *service) Search(ctx context.Context, req model.SearchRequest) (model.SearchResult, error) {
	if err := req.Validate(); err != nil {
		return model.SearchResult{}, err
	}

	key := req.CacheKey()
	start := time.Now()

	if result, ok := s.tryCache(ctx, key, start); ok {
		return result, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Re-check the cache: another goroutine may have filled it while
		// we waited to join the singleflight group.
		if result, ok := s.tryCache(ctx, key, start); ok {
			return result, nil
		}
		return s.queryBackend(ctx, req)
	})
	if err != nil {
		return model.SearchResult{}, err
	}
	return v.(model.SearchResult), nil
}

func (s *service) tryCache(ctx context.Context, key string, start time.Time) (model.SearchResult, bool) {
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		atomic.AddInt64(&s.hits, 1)
		s.metrics.IncCacheHit()
		s.updateHitRatio()
		result := *cached
		result.SearchTimeMs = time.Since(start).Milliseconds()
		return result, true
	case errors.Is(err, model.ErrCacheMiss):
		atomic.AddInt64(&s.misses, 1)
		s.metrics.IncCacheMiss()
		s.updateHitRatio()
		return model.SearchResult{}, false
	default:
		// Cache backend error: log, count, bypass — never fail the caller.
		s.log.Errorf("search: cache bypass: %v", err)
		s.metrics.IncCacheError()
		return model.SearchResult{}, false
	}
}

func (s *service) updateHitRatio() {
	hits := atomic.LoadInt64(&s.hits)
	misses := atomic.LoadInt64(&s.misses)
	total := hits + misses
	if total == 0 {
		return
	}
	s.metrics.SetCacheHitRatio(float64(hits) / float64(total))
}

func (s *service) queryBackend(ctx context.Context, req model.SearchRequest) (model.SearchResult, error) {
	backendStart := time.Now()

	result, err := s.queryPrimaryOrFallback(ctx, req)
	if err != nil {
		return model.SearchResult{}, err
	}
	result.SearchTimeMs = time.Since(backendStart).Milliseconds()
	s.metrics.ObserveSearchDuration(time.Since(backendStart))

	// Negative caching is forbidden (spec §4.9): empty results are never stored.
	if result.TotalElements > 0 {
		if err := s.cache.Set(ctx, req.CacheKey(), &result, s.ttl); err != nil {
			s.log.Errorf("search: cache fill failed: %v", err)
			s.metrics.IncCacheError()
		}
	}
	return result, nil
}

func (s *service) queryPrimaryOrFallback(ctx context.Context, req model.SearchRequest) (model.SearchResult, error) {
	v, err := s.breaker.Execute(func() (interface{}, error) {
		return s.primary.Query(ctx, req)
	})
	if err == nil {
		result := v.(model.SearchResult)
		result.LevelCounts = orEmpty(result.LevelCounts)
		result.ServiceCounts = orEmptyService(result.ServiceCounts)
		return result, nil
	}

	s.log.Errorf("search: primary search store unavailable, degrading to fallback: %v", err)
	s.metrics.IncSearchBackendError()

	result, ferr := s.fallback.Query(ctx, req)
	if ferr != nil {
		return model.SearchResult{}, ferr
	}
	result.LevelCounts = orEmpty(result.LevelCounts)
	result.ServiceCounts = orEmptyService(result.ServiceCounts)
	return result, nil
}

func orEmpty(m map[model.Level]int64) map[model.Level]int64 {
	if m == nil {
		return map[model.Level]int64{}
	}
	return m
}

func orEmptyService(m map[string]int64) map[string]int64 {
	if m == nil {
		return map[string]int64{}
	}
	return m
}
