// Package search orchestrates the cached hybrid-search path of spec
// §4.8/§4.9: cache → primary search store (circuit-breaker guarded) →
// authoritative-store fallback with page-scoped aggregations. Grounded on
// the teacher's order_service.go cache-then-repo shape, extended with the
// breaker-gated fallback this domain requires and the teacher lacks.
package search

import (
	"context"
	"time"

	"github.com/logstream/pipeline/internal/model"
)

// PrimarySearcher is the search-store query path (internal/search.Store).
type PrimarySearcher interface {
	Query(ctx context.Context, req model.SearchRequest) (model.SearchResult, error)
}

// FallbackSearcher is the authoritative-store degraded path
// (internal/store.PostgresStore).
type FallbackSearcher interface {
	Query(ctx context.Context, req model.SearchRequest) (model.SearchResult, error)
}

// Metrics is the subset of spec §6's operational surface this service
// updates.
type Metrics interface {
	IncCacheHit()
	IncCacheMiss()
	IncCacheError()
	IncSearchBackendError()
	ObserveSearchDuration(d time.Duration)
	SetCacheHitRatio(ratio float64)
}

// Service is the public contract the HTTP handler calls.
type Service interface {
	Search(ctx context.Context, req model.SearchRequest) (model.SearchResult, error)
}
