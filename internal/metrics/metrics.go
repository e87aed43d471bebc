// Package metrics is the operational surface of spec §6/§11: counters,
// timers, and gauges backed by prometheus/client_golang, plus liveness
// probes of the backing stores.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements every per-component Metrics interface in this
// module (queue.Metrics, broadcast.Metrics, search.Metrics) so a single
// registry backs the whole pipeline, as spec §9 describes ("Metrics
// registry... process-wide singleton with explicit init/shutdown").
type Metrics struct {
	logsPublished   prometheus.Counter
	logsPublishFail prometheus.Counter
	logsConsumed    prometheus.Counter
	logsDLQ         prometheus.Counter
	indexFailed     prometheus.Counter

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheErrors prometheus.Counter
	cacheHitRatio prometheus.Gauge

	broadcastQueued    prometheus.Counter
	broadcastSent      prometheus.Counter
	broadcastDropped   prometheus.Counter
	searchBackendError prometheus.Counter

	ingestAcceptLatency   prometheus.Histogram
	consumerBatchDuration prometheus.Histogram
	searchDuration        prometheus.Histogram
}

// New registers every metric in reg (pass prometheus.DefaultRegisterer
// in production, a fresh *prometheus.Registry in tests).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		logsPublished:   counter(reg, "logs_published_total", "Records published to the queue."),
		logsPublishFail: counter(reg, "logs_publish_failed_total", "Queue publish failures."),
		logsConsumed:    counter(reg, "logs_consumed_total", "Records consumed from the queue."),
		logsDLQ:         counter(reg, "logs_dlq_total", "Records routed to the dead-letter queue."),
		indexFailed:     counter(reg, "index_failed_total", "Records that failed best-effort search indexing."),

		cacheHits:     counter(reg, "cache_hits_total", "Search cache hits."),
		cacheMisses:   counter(reg, "cache_misses_total", "Search cache misses."),
		cacheErrors:   counter(reg, "cache_errors_total", "Search cache backend errors."),
		cacheHitRatio: gauge(reg, "cache_hit_ratio", "Rolling cache hit ratio."),

		broadcastQueued:    counter(reg, "broadcast_queued_total", "Records enqueued to the realtime broadcaster."),
		broadcastSent:      counter(reg, "broadcast_sent_total", "Records flushed to realtime subscribers."),
		broadcastDropped:   counter(reg, "broadcast_dropped_total", "Records dropped by the broadcaster under backpressure."),
		searchBackendError: counter(reg, "search_backend_errors_total", "Search-store failures that triggered fallback."),

		ingestAcceptLatency:   histogram(reg, "ingest_accept_latency_seconds", "Ingest endpoint accept latency."),
		consumerBatchDuration: histogram(reg, "consumer_batch_duration_seconds", "Consumer batch processing duration."),
		searchDuration:        histogram(reg, "search_duration_seconds", "Backend (non-cache) search duration."),
	}
	return m
}

func counter(reg prometheus.Registerer, name, help string) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	reg.MustRegister(c)
	return c
}

func gauge(reg prometheus.Registerer, name, help string) prometheus.Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	reg.MustRegister(g)
	return g
}

func histogram(reg prometheus.Registerer, name, help string) prometheus.Histogram {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{Name: name, Help: help, Buckets: prometheus.DefBuckets})
	reg.MustRegister(h)
	return h
}

// --- queue.Metrics ---

func (m *Metrics) IncPublished(n int)       { m.logsPublished.Add(float64(n)) }
func (m *Metrics) IncPublishFailed(n int)   { m.logsPublishFail.Add(float64(n)) }
func (m *Metrics) IncConsumed(n int)        { m.logsConsumed.Add(float64(n)) }
func (m *Metrics) IncDLQ(n int)             { m.logsDLQ.Add(float64(n)) }
func (m *Metrics) IncIndexFailed(n int)     { m.indexFailed.Add(float64(n)) }
func (m *Metrics) ObserveConsumerBatchDuration(d time.Duration) {
	m.consumerBatchDuration.Observe(d.Seconds())
}
func (m *Metrics) ObserveIngestAcceptLatency(d time.Duration) {
	m.ingestAcceptLatency.Observe(d.Seconds())
}

// --- broadcast.Metrics ---

func (m *Metrics) IncQueued(n int)    { m.broadcastQueued.Add(float64(n)) }
func (m *Metrics) IncBroadcast(n int) { m.broadcastSent.Add(float64(n)) }
func (m *Metrics) IncDropped(n int)   { m.broadcastDropped.Add(float64(n)) }

// --- search.Metrics ---

func (m *Metrics) IncCacheHit()           { m.cacheHits.Add(1) }
func (m *Metrics) IncCacheMiss()          { m.cacheMisses.Add(1) }
func (m *Metrics) IncCacheError()         { m.cacheErrors.Add(1) }
func (m *Metrics) IncSearchBackendError() { m.searchBackendError.Add(1) }
func (m *Metrics) ObserveSearchDuration(d time.Duration) {
	m.searchDuration.Observe(d.Seconds())
}
func (m *Metrics) SetCacheHitRatio(ratio float64) { m.cacheHitRatio.Set(ratio) }
