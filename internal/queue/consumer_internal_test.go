package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/model"
)

func TestDLQKind_ClassifiesStoreErrors(t *testing.T) {
	require.Equal(t, "transient_store_error", dlqKind(&model.TransientStoreError{Cause: errors.New("x")}))
	require.Equal(t, "permanent_store_error", dlqKind(&model.PermanentStoreError{Cause: errors.New("x")}))
	require.Equal(t, "store_error", dlqKind(errors.New("unexpected")))
}

func TestCauseMessage(t *testing.T) {
	require.Equal(t, "", causeMessage(nil))
	require.Equal(t, "boom", causeMessage(errors.New("boom")))
}

func TestConsumerConfig_WithDefaults(t *testing.T) {
	cfg := ConsumerConfig{}.withDefaults()
	require.Equal(t, 3, cfg.WorkerCount)
	require.Equal(t, 500, cfg.BatchSize)
	require.NotZero(t, cfg.BatchWait)

	cfg = ConsumerConfig{WorkerCount: 7, BatchSize: 10}.withDefaults()
	require.Equal(t, 7, cfg.WorkerCount)
	require.Equal(t, 10, cfg.BatchSize)
}
