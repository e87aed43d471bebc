// Package broadcast implements the realtime broadcaster of spec §4.7: a
// single bounded FIFO queue with drop-oldest backpressure, flushed on a
// tick to an external Sink standing in for the out-of-scope WebSocket
// framing layer (spec §1). The FIFO/eviction shape is grounded on the
// teacher's container/list cache (internal/service/cache/cache.go);
// everything else here is new, since the teacher has no realtime concern.
package broadcast

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
)

// Sink is the external fan-out collaborator (spec §4.7: "Subscriber
// fan-out provided by the external framing layer"). A production
// deployment wires this to whatever broadcasts to WebSocket subscribers.
type Sink interface {
	Send(ctx context.Context, batch []model.LogRecord) error
}

// Metrics is the subset of spec §6's counters this package updates.
type Metrics interface {
	IncQueued(n int)
	IncBroadcast(n int)
	IncDropped(n int)
}

// Config holds the policy levers of spec §4.7, defaults {250, 250, 2000}.
type Config struct {
	Enabled    bool
	IntervalMS int
	MaxPayload int
	QueueCap   int
}

func (c Config) withDefaults() Config {
	if c.IntervalMS <= 0 {
		c.IntervalMS = 250
	}
	if c.MaxPayload <= 0 {
		c.MaxPayload = 250
	}
	if c.QueueCap <= 0 {
		c.QueueCap = 2000
	}
	return c
}

// Broadcaster owns a single bounded FIFO queue and a periodic flush task.
// Enqueue is safe for many producers; only the flush loop dequeues, so the
// drop-oldest invariant never races with a concurrent drain.
type Broadcaster struct {
	mu      sync.Mutex
	queue   *list.List
	cfg     Config
	enabled bool

	sink    Sink
	metrics Metrics
	log     logger.InterfaceLogger

	queued  int64
	dropped int64
	sent    int64

	stopCh chan struct{}
	doneCh chan struct{}
}

// New builds a Broadcaster. It does not start the flush loop — call Start.
func New(cfg Config, sink Sink, metrics Metrics, log logger.InterfaceLogger) *Broadcaster {
	cfg = cfg.withDefaults()
	return &Broadcaster{
		queue:   list.New(),
		cfg:     cfg,
		enabled: cfg.Enabled,
		sink:    sink,
		metrics: metrics,
		log:     log,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Enqueue appends records to the tail of the queue, dropping from the
// head (oldest-first) whenever the queue is at capacity (spec §4.7
// enqueue path). Non-blocking by construction: no record ever waits.
func (b *Broadcaster) Enqueue(records []model.LogRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled {
		return
	}

	for _, r := range records {
		if b.queue.Len() >= b.cfg.QueueCap {
			oldest := b.queue.Front()
			if oldest != nil {
				b.queue.Remove(oldest)
				b.dropped++
				b.metrics.IncDropped(1)
			}
		}
		b.queue.PushBack(r)
		b.queued++
		b.metrics.IncQueued(1)
	}
}

// SetEnabled toggles the broadcaster. Disabling clears the queue
// immediately, counting the cleared records as dropped; re-enabling does
// not replay anything (spec §4.7).
func (b *Broadcaster) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
	if !enabled {
		if n := b.queue.Len(); n > 0 {
			b.dropped += int64(n)
			b.metrics.IncDropped(n)
		}
		b.queue.Init()
	}
}

// QueueLen reports the current queue length (for tests/metrics).
func (b *Broadcaster) QueueLen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue.Len()
}

// Counters reports the accounting-identity triple (spec §8 invariant 3:
// queued == broadcast + dropped + currently_queued).
func (b *Broadcaster) Counters() (queued, broadcastN, dropped, currentlyQueued int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queued, b.sent, b.dropped, int64(b.queue.Len())
}

// Start runs the flush loop until Stop is called or ctx is canceled.
func (b *Broadcaster) Start(ctx context.Context) {
	go b.run(ctx)
}

func (b *Broadcaster) run(ctx context.Context) {
	defer close(b.doneCh)
	interval := time.Duration(b.cfg.IntervalMS) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.flushOnce(ctx)
			return
		case <-b.stopCh:
			b.flushOnce(ctx)
			return
		case <-ticker.C:
			b.flushOnce(ctx)
		}
	}
}

// flushOnce drains up to MaxPayload entries and hands them to the sink.
// Fan-out errors are logged, never re-enqueued (spec §4.7: "re-enqueue
// could form an unbounded loop"); the failed batch is counted as dropped.
func (b *Broadcaster) flushOnce(ctx context.Context) {
	batch := b.drain(b.cfg.MaxPayload)
	if len(batch) == 0 {
		return
	}
	if err := b.sink.Send(ctx, batch); err != nil {
		b.log.Errorf("broadcast: sink send failed for %d record(s): %v", len(batch), err)
		b.mu.Lock()
		b.dropped += int64(len(batch))
		b.mu.Unlock()
		b.metrics.IncDropped(len(batch))
		return
	}
	b.mu.Lock()
	b.sent += int64(len(batch))
	b.mu.Unlock()
	b.metrics.IncBroadcast(len(batch))
}

func (b *Broadcaster) drain(max int) []model.LogRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.queue.Len()
	if n > max {
		n = max
	}
	if n == 0 {
		return nil
	}

	out := make([]model.LogRecord, 0, n)
	for i := 0; i < n; i++ {
		front := b.queue.Front()
		out = append(out, front.Value.(model.LogRecord))
		b.queue.Remove(front)
	}
	return out
}

// Stop signals the flush loop to drain once more and exit (spec §5:
// "broadcaster flushes remaining items up to MAX_PAYLOAD once, then drops
// the rest"), then blocks until it has.
func (b *Broadcaster) Stop() {
	close(b.stopCh)
	<-b.doneCh
}

// NoopSink discards every flushed batch. It stands in for the WebSocket
// framing layer spec §1 places out of scope, so the broadcaster itself
// remains exercisable without a subscriber transport wired up.
type NoopSink struct{}

func (NoopSink) Send(ctx context.Context, batch []model.LogRecord) error {
	return nil
}
