package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProbe_OkWhenFast(t *testing.T) {
	status := probe("svc", func(ctx context.Context) error { return nil })
	require.Equal(t, "svc", status.Name)
	require.Equal(t, "ok", status.State)
	require.Empty(t, status.Error)
}

func TestProbe_WarnWhenSlow(t *testing.T) {
	status := probe("svc", func(ctx context.Context) error {
		time.Sleep(550 * time.Millisecond)
		return nil
	})
	require.Equal(t, "warn", status.State)
	require.GreaterOrEqual(t, status.LatencyMs, int64(500))
}

func TestProbe_DownOnError(t *testing.T) {
	status := probe("svc", func(ctx context.Context) error { return errors.New("boom") })
	require.Equal(t, "down", status.State)
	require.Equal(t, "boom", status.Error)
}

func TestEsStatusError_FormatsMessage(t *testing.T) {
	err := &esStatusError{status: "500 Internal Server Error"}
	require.Equal(t, "elasticsearch ping: 500 Internal Server Error", err.Error())
}

func TestProbeKafka_NoBrokersConfigured(t *testing.T) {
	h := NewHealthChecker(nil, nil, nil, nil)
	require.ErrorIs(t, h.probeKafka(context.Background()), errNoBrokers)
}
