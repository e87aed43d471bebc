package queue

import (
	"context"
	"time"

	"github.com/logstream/pipeline/internal/model"
)

// IndexWriter is the best-effort search-store indexer dispatched
// fire-and-forget after a durable write (spec §4.5).
type IndexWriter interface {
	IndexBatch(ctx context.Context, records []model.LogRecord) error
}

// Broadcaster is the realtime fan-out dispatched fire-and-forget after a
// durable write (spec §4.7). Enqueue never blocks and never errors to the
// caller — backpressure is handled internally via drop-oldest.
type Broadcaster interface {
	Enqueue(records []model.LogRecord)
}

// DLQRouter publishes a failed record's diagnostic envelope (spec §4.6).
type DLQRouter interface {
	Route(ctx context.Context, env model.DLQEnvelope) error
}

// Metrics is the subset of the operational surface (spec §6) the queue
// package updates. Implemented by internal/metrics.
type Metrics interface {
	IncPublished(n int)
	IncPublishFailed(n int)
	IncConsumed(n int)
	IncDLQ(n int)
	IncIndexFailed(n int)
	ObserveConsumerBatchDuration(d time.Duration)
	ObserveIngestAcceptLatency(d time.Duration)
}
