// Package cache is the look-aside cache layer of spec §4.9: keyed by the
// canonical SearchRequest serialization, values are full SearchResults,
// TTL-bound, never negative-cached, and built to bypass to the backend on
// any cache-backend error rather than fail the caller.
package cache

import (
	"context"
	"time"

	"github.com/logstream/pipeline/internal/model"
)

// InterfaceCache is the contract both the Redis-backed production cache
// and the in-process test double satisfy, following the teacher's
// InterfaceCache naming in internal/service/cache/interface.go.
type InterfaceCache interface {
	// Get returns model.ErrCacheMiss (unwrapped, not a CacheError) on a
	// clean miss. Any other error is a CacheError: the caller must log,
	// count, and bypass to the search service rather than fail.
	Get(ctx context.Context, key string) (*model.SearchResult, error)
	// Set stores value with the given TTL. Callers must not call Set for
	// empty results (spec §4.9: "Empty-result responses are not cached").
	Set(ctx context.Context, key string, value *model.SearchResult, ttl time.Duration) error
}
