package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	kafka "github.com/segmentio/kafka-go"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
)

// KafkaDLQRouter publishes DLQEnvelopes to a side topic (spec §4.6). It
// is never on the critical path: Route's caller logs-and-continues on
// error, it never blocks offset commit.
type KafkaDLQRouter struct {
	writer *kafka.Writer
	log    logger.InterfaceLogger
}

var _ DLQRouter = (*KafkaDLQRouter)(nil)

func NewKafkaDLQRouter(brokers []string, topic string, log logger.InterfaceLogger) *KafkaDLQRouter {
	return &KafkaDLQRouter{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		log: log,
	}
}

// Route publishes env, assigning a correlation id if the caller left one
// unset, for operator tracing across the DLQ side channel.
func (r *KafkaDLQRouter) Route(ctx context.Context, env model.DLQEnvelope) error {
	if env.CorrelationID == "" {
		env.CorrelationID = uuid.NewString()
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal dlq envelope: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(env.Record.ServiceID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "error-kind", Value: []byte(env.ErrorKind)},
			{Key: "origin-partition", Value: []byte(fmt.Sprintf("%d", env.OriginPartition))},
			{Key: "origin-offset", Value: []byte(fmt.Sprintf("%d", env.OriginOffset))},
		},
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		r.log.Errorf("queue: dlq write failed: %v", err)
		return err
	}
	return nil
}

func (r *KafkaDLQRouter) Close() error {
	return r.writer.Close()
}
