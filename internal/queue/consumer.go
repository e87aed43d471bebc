package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
	"github.com/logstream/pipeline/internal/store"
	"github.com/logstream/pipeline/internal/taskrunner"
)

// ConsumerConfig tunes the batch consumer pool (spec §4.3).
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	Group       string
	WorkerCount int           // recommended 3, one per partition
	BatchSize   int           // max messages accumulated before processing
	BatchWait   time.Duration // max time to wait to fill a batch
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.WorkerCount <= 0 {
		c.WorkerCount = 3
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 500
	}
	if c.BatchWait <= 0 {
		c.BatchWait = 500 * time.Millisecond
	}
	return c
}

// Consumer runs ConsumerConfig.WorkerCount parallel workers, each pulling
// from its assigned partitions and driving the durable-write → async-index
// → async-broadcast → commit pipeline of spec §4.3.
type Consumer struct {
	cfg     ConsumerConfig
	writer  store.Writer
	index   IndexWriter
	bcast   Broadcaster
	dlq     DLQRouter
	runner  *taskrunner.Runner
	metrics Metrics
	log     logger.InterfaceLogger
}

func NewConsumer(cfg ConsumerConfig, writer store.Writer, index IndexWriter, bcast Broadcaster, dlq DLQRouter, runner *taskrunner.Runner, metrics Metrics, log logger.InterfaceLogger) *Consumer {
	return &Consumer{
		cfg:     cfg.withDefaults(),
		writer:  writer,
		index:   index,
		bcast:   bcast,
		dlq:     dlq,
		runner:  runner,
		metrics: metrics,
		log:     log,
	}
}

// Run blocks until ctx is canceled, at which point each worker finishes
// its current batch (spec §5: "consumer workers finish their current
// batch and then exit at the next offset-commit boundary") and returns.
func (c *Consumer) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make(chan error, c.cfg.WorkerCount)

	for i := 0; i < c.cfg.WorkerCount; i++ {
		wg.Add(1)
		workerID := i
		go func() {
			defer wg.Done()
			if err := c.runWorker(ctx, workerID); err != nil && !errors.Is(err, context.Canceled) {
				errs <- fmt.Errorf("worker %d: %w", workerID, err)
			}
		}()
	}

	wg.Wait()
	close(errs)

	var firstErr error
	for err := range errs {
		if firstErr == nil {
			firstErr = err
		} else {
			c.log.Errorf("queue: additional worker error: %v", err)
		}
	}
	return firstErr
}

func (c *Consumer) runWorker(ctx context.Context, workerID int) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.Brokers,
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.Group,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			c.log.Errorf("queue: worker %d reader close: %v", workerID, err)
		}
	}()

	for {
		msgs, err := fetchBatch(ctx, reader, c.cfg.BatchSize, c.cfg.BatchWait)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			continue
		}

		// A batch already fetched is written (or routed to the DLQ) and
		// committed even if ctx is canceled meanwhile; ctx only stops the
		// next fetch.
		batchCtx := context.WithoutCancel(ctx)
		start := time.Now()
		c.processFetch(batchCtx, msgs)
		c.metrics.ObserveConsumerBatchDuration(time.Since(start))

		if err := reader.CommitMessages(batchCtx, msgs...); err != nil {
			c.log.Errorf("queue: worker %d commit failed: %v", workerID, err)
		}
	}
}

// fetchBatch accumulates up to batchSize messages or until batchWait
// elapses, whichever comes first. Returns early (possibly empty) on ctx
// cancellation so the caller can exit at the next commit boundary.
func fetchBatch(ctx context.Context, reader *kafka.Reader, batchSize int, batchWait time.Duration) ([]kafka.Message, error) {
	deadline := time.Now().Add(batchWait)
	msgs := make([]kafka.Message, 0, batchSize)

	for len(msgs) < batchSize {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		fetchCtx, cancel := context.WithTimeout(ctx, remaining)
		m, err := reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if ctx.Err() != nil {
				return msgs, ctx.Err()
			}
			return msgs, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// processFetch groups a worker's fetched messages by partition — each
// partition group is independently decoded, written, indexed, and
// broadcast, matching the Batch data model of spec §3 ("drawn from one
// queue partition"). The whole fetch is committed together afterward
// regardless of per-partition outcome.
func (c *Consumer) processFetch(ctx context.Context, msgs []kafka.Message) {
	byPartition := map[int][]kafka.Message{}
	for _, m := range msgs {
		byPartition[m.Partition] = append(byPartition[m.Partition], m)
	}
	for partition, group := range byPartition {
		c.processPartitionBatch(ctx, partition, group)
	}
}

func (c *Consumer) processPartitionBatch(ctx context.Context, _ int, msgs []kafka.Message) {
	var valid []model.LogRecord
	var validMsgs []kafka.Message

	for _, m := range msgs {
		var rec model.LogRecord
		if err := json.Unmarshal(m.Value, &rec); err != nil {
			c.routeToDLQ(ctx, rec, m, "invalid_json", err)
			continue
		}
		if err := rec.Validate(); err != nil {
			c.routeToDLQ(ctx, rec, m, "schema_validation", err)
			continue
		}
		valid = append(valid, rec)
		validMsgs = append(validMsgs, m)
	}
	c.metrics.IncConsumed(len(msgs))

	if len(valid) == 0 {
		return
	}

	written, err := c.writer.WriteBatch(ctx, valid)
	if err != nil {
		// Critical-path failure: route every record to DLQ, then commit
		// anyway — re-delivery would loop indefinitely (spec §4.3 step 1).
		kind := dlqKind(err)
		for i, m := range validMsgs {
			c.routeToDLQ(ctx, valid[i], m, kind, err)
		}
		return
	}

	// Async, non-critical: indexing genuinely blocks on Elasticsearch, so
	// it goes on the shared runner. Enqueue is non-blocking by construction
	// (spec §4.7/§5) and must run synchronously here: offloading it would
	// let two batches from this worker race on the runner and broadcast
	// out of persistence order (spec §8 invariant #2).
	c.runner.Go("index-batch", func() error {
		if err := c.index.IndexBatch(ctx, written); err != nil {
			c.metrics.IncIndexFailed(len(written))
			return err
		}
		return nil
	})
	c.bcast.Enqueue(written)
}

func dlqKind(err error) string {
	var transient *model.TransientStoreError
	var permanent *model.PermanentStoreError
	switch {
	case errors.As(err, &transient):
		return "transient_store_error"
	case errors.As(err, &permanent):
		return "permanent_store_error"
	default:
		return "store_error"
	}
}

func (c *Consumer) routeToDLQ(ctx context.Context, rec model.LogRecord, m kafka.Message, kind string, cause error) {
	env := model.DLQEnvelope{
		Record:          rec,
		ErrorKind:       kind,
		ErrorMessage:    causeMessage(cause),
		OriginTopic:     c.cfg.Topic,
		OriginPartition: m.Partition,
		OriginOffset:    m.Offset,
		FailedAt:        time.Now().UTC(),
	}
	if err := c.dlq.Route(ctx, env); err != nil {
		c.log.Errorf("queue: dlq route failed for partition=%d offset=%d: %v", m.Partition, m.Offset, err)
	}
	c.metrics.IncDLQ(1)
}

func causeMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
