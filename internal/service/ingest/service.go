// Package ingest is the front-door concern of spec §4.1: validate, hand
// off to the queue producer, and return before downstream durability is
// achieved. Grounded on the teacher's order_service.go thin-service shape.
package ingest

import (
	"context"
	"time"

	"github.com/logstream/pipeline/internal/model"
)

// Producer is the queue producer capability this service depends on.
type Producer interface {
	Publish(ctx context.Context, record model.LogRecord) error
	PublishBatch(ctx context.Context, records []model.LogRecord) error
}

// Metrics is the subset of spec §6's operational surface this service updates.
type Metrics interface {
	ObserveIngestAcceptLatency(d time.Duration)
}

// Service is the ingest endpoint's domain logic.
type Service interface {
	AcceptOne(ctx context.Context, record model.LogRecord) error
	AcceptBatch(ctx context.Context, records []model.LogRecord) (int, error)
}

type service struct {
	producer Producer
	metrics  Metrics
	maxBatch int
}

func New(producer Producer, metrics Metrics, maxBatch int) Service {
	if maxBatch <= 0 {
		maxBatch = model.MaxBatchSize
	}
	return &service{producer: producer, metrics: metrics, maxBatch: maxBatch}
}

// AcceptOne validates and publishes a single record. It never blocks on
// the durable write or the index write (spec §4.1).
func (s *service) AcceptOne(ctx context.Context, record model.LogRecord) error {
	start := time.Now()
	defer func() { s.metrics.ObserveIngestAcceptLatency(time.Since(start)) }()

	if err := record.Validate(); err != nil {
		return err
	}
	return s.producer.Publish(ctx, record)
}

// AcceptBatch validates every record, enforces the batch-size cap, and
// publishes per-record (preserving serviceId partitioning, spec §4.2). An
// empty batch is a no-op that still returns success (spec §8 boundary:
// "Empty batch ingest returns 202 and is a no-op").
func (s *service) AcceptBatch(ctx context.Context, records []model.LogRecord) (int, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveIngestAcceptLatency(time.Since(start)) }()

	if len(records) == 0 {
		return 0, nil
	}
	if err := model.ValidateBatch(records, s.maxBatch); err != nil {
		return 0, err
	}

	if err := s.producer.PublishBatch(ctx, records); err != nil {
		// Cancellation mid-batch: records already published remain
		// published (spec §5); the caller sees Canceled without further
		// publication.
		return 0, err
	}
	return len(records), nil
}
