package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncPublished(3)
	m.IncPublishFailed(1)
	m.IncConsumed(5)
	m.IncDLQ(2)
	m.IncIndexFailed(1)

	require.Equal(t, float64(3), testutil.ToFloat64(m.logsPublished))
	require.Equal(t, float64(1), testutil.ToFloat64(m.logsPublishFail))
	require.Equal(t, float64(5), testutil.ToFloat64(m.logsConsumed))
	require.Equal(t, float64(2), testutil.ToFloat64(m.logsDLQ))
	require.Equal(t, float64(1), testutil.ToFloat64(m.indexFailed))
}

func TestMetrics_CacheHitRatioGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetCacheHitRatio(0.75)
	require.Equal(t, 0.75, testutil.ToFloat64(m.cacheHitRatio))
}

func TestMetrics_HistogramsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveIngestAcceptLatency(10 * time.Millisecond)
	m.ObserveConsumerBatchDuration(100 * time.Millisecond)
	m.ObserveSearchDuration(5 * time.Millisecond)

	require.Equal(t, 1, testutil.CollectAndCount(m.ingestAcceptLatency))
	require.Equal(t, 1, testutil.CollectAndCount(m.consumerBatchDuration))
	require.Equal(t, 1, testutil.CollectAndCount(m.searchDuration))
}
