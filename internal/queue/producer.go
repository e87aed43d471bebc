// Package queue is the durable-queue concern: a partitioned producer
// (spec §4.2), an N-worker batch consumer driving the write/index/
// broadcast/DLQ pipeline (spec §4.3), and the DLQ router (spec §4.6).
// Grounded on the teacher's internal/kafka/consumer.go, generalized from
// a single order-events topic to the log pipeline and split into its own
// producer/consumer/DLQ files.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
)

// Producer publishes LogRecords to a single logical topic, partitioned by
// serviceId (spec §4.2). Publication is asynchronous from the caller's
// perspective (kafka.Writer with Async: true); delivery outcome surfaces
// only through the Completion callback, never by blocking the caller.
type Producer struct {
	writer  *kafka.Writer
	log     logger.InterfaceLogger
	metrics Metrics
}

// NewProducer builds a Producer. Balancer is keyed by serviceId so that
// per-service ordering (spec §4.3's ordering guarantee) holds end to end.
func NewProducer(brokers []string, topic string, log logger.InterfaceLogger, metrics Metrics) *Producer {
	p := &Producer{log: log, metrics: metrics}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		Async:        true,
		RequiredAcks: kafka.RequireOne,
		Completion:   p.onCompletion,
	}
	return p
}

func (p *Producer) onCompletion(messages []kafka.Message, err error) {
	if err != nil {
		p.metrics.IncPublishFailed(len(messages))
		p.log.Errorf("queue: publish failed for %d message(s): %v", len(messages), err)
		return
	}
	p.metrics.IncPublished(len(messages))
}

// Publish enqueues one record for asynchronous delivery. It returns
// immediately; an error here means the record could not be handed to the
// writer at all (marshalling, closed writer) and is returned to the
// ingest endpoint. The later delivery outcome never changes the 202
// already sent; it is reported only through onCompletion (spec §4.2:
// "at-least-once from the producer's view is acceptable; at-most-once is
// not").
func (p *Producer) Publish(ctx context.Context, record model.LogRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(record.ServiceID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return &model.PublishError{Cause: err}
	}
	return nil
}

// PublishBatch publishes every record in a batch individually so that
// per-record partitioning by serviceId is preserved (spec §4.2: "Batches
// submitted by the endpoint are published per-record").
func (p *Producer) PublishBatch(ctx context.Context, records []model.LogRecord) error {
	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Publish(ctx, records[i]); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
