package metrics

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	kafka "github.com/segmentio/kafka-go"
)

// Status is one backing dependency's liveness (spec §6: "ok/warn/down per
// backing store with a measured probe latency").
type Status struct {
	Name      string        `json:"name"`
	State     string        `json:"state"` // ok|warn|down
	LatencyMs int64         `json:"latencyMs"`
	Error     string        `json:"error,omitempty"`
}

// HealthChecker probes every backing store with a bounded deadline each.
type HealthChecker struct {
	db      *sql.DB
	es      *elasticsearch.Client
	rdb     *redis.Client
	brokers []string
}

func NewHealthChecker(db *sql.DB, es *elasticsearch.Client, rdb *redis.Client, brokers []string) *HealthChecker {
	return &HealthChecker{db: db, es: es, rdb: rdb, brokers: brokers}
}

// Check probes every dependency concurrently and returns a Status per dependency.
func (h *HealthChecker) Check(ctx context.Context) []Status {
	results := make([]Status, 4)
	done := make(chan struct{}, 4)

	go func() { results[0] = probe("postgres", h.probeDB); done <- struct{}{} }()
	go func() { results[1] = probe("elasticsearch", h.probeES); done <- struct{}{} }()
	go func() { results[2] = probe("redis", h.probeRedis); done <- struct{}{} }()
	go func() { results[3] = probe("kafka", h.probeKafka); done <- struct{}{} }()

	for i := 0; i < 4; i++ {
		<-done
	}
	return results
}

func probe(name string, fn func(ctx context.Context) error) Status {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return Status{Name: name, State: "down", LatencyMs: latency, Error: err.Error()}
	}
	state := "ok"
	if latency > 500 {
		state = "warn"
	}
	return Status{Name: name, State: state, LatencyMs: latency}
}

func (h *HealthChecker) probeDB(ctx context.Context) error {
	return h.db.PingContext(ctx)
}

func (h *HealthChecker) probeES(ctx context.Context) error {
	res, err := esapi.PingRequest{}.Do(ctx, h.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return &esStatusError{status: res.Status()}
	}
	return nil
}

func (h *HealthChecker) probeRedis(ctx context.Context) error {
	return h.rdb.Ping(ctx).Err()
}

func (h *HealthChecker) probeKafka(ctx context.Context) error {
	if len(h.brokers) == 0 {
		return errNoBrokers
	}
	conn, err := kafka.DialContext(ctx, "tcp", h.brokers[0])
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.ReadPartitions()
	return err
}

type esStatusError struct{ status string }

func (e *esStatusError) Error() string { return "elasticsearch ping: " + e.status }

var errNoBrokers = errors.New("kafka: no brokers configured")
