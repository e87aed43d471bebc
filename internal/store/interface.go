package store

import (
	"context"

	"github.com/logstream/pipeline/internal/model"
)

// Writer is the authoritative store's write contract (spec §4.4).
// WriteBatch MUST be atomic per batch: either every record is persisted
// with recordId and receivedAt assigned, or none are and the whole batch
// fails — the caller (consumer) owns the DLQ decision on failure.
type Writer interface {
	WriteBatch(ctx context.Context, records []model.LogRecord) ([]model.LogRecord, error)
}

// FallbackQuerier is the authoritative-store read path used only when the
// search store is unavailable (spec §4.8 fallback). Aggregations returned
// are page-scoped, never full-match-set.
type FallbackQuerier interface {
	Query(ctx context.Context, req model.SearchRequest) (model.SearchResult, error)
}

// Store combines both capabilities; PostgresStore is the production
// implementation and satisfies both interfaces.
type Store interface {
	Writer
	FallbackQuerier
}
