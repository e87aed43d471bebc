package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/mocks"
	"github.com/logstream/pipeline/internal/model"

	"github.com/golang/mock/gomock"
)

func TestMemoryCache_Get_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewMemoryCache(0, mocks.NewMockInterfaceLogger(ctrl))

	_, err := c.Get(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrCacheMiss)
}

func TestMemoryCache_Set_Then_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewMemoryCache(0, mocks.NewMockInterfaceLogger(ctrl))

	want := &model.SearchResult{TotalElements: 3}
	require.NoError(t, c.Set(context.Background(), "k1", want, time.Minute))

	got, err := c.Get(context.Background(), "k1")
	require.NoError(t, err)
	require.Same(t, want, got)
	require.Len(t, c.data, 1)
	require.Equal(t, 1, c.order.Len())
}

func TestMemoryCache_UpdateExisting_DoesNotGrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewMemoryCache(0, mocks.NewMockInterfaceLogger(ctrl))

	first := &model.SearchResult{TotalElements: 1}
	second := &model.SearchResult{TotalElements: 2}
	require.NoError(t, c.Set(context.Background(), "k1", first, time.Minute))
	require.NoError(t, c.Set(context.Background(), "k1", second, time.Minute))

	require.Equal(t, 1, c.order.Len())
	got, err := c.Get(context.Background(), "k1")
	require.NoError(t, err)
	require.Same(t, second, got)
}

func TestMemoryCache_EvictsOldestAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewMemoryCache(2, mocks.NewMockInterfaceLogger(ctrl))

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k1", &model.SearchResult{}, time.Minute))
	require.NoError(t, c.Set(ctx, "k2", &model.SearchResult{}, time.Minute))
	require.NoError(t, c.Set(ctx, "k3", &model.SearchResult{}, time.Minute))

	_, err := c.Get(ctx, "k1")
	require.ErrorIs(t, err, model.ErrCacheMiss)

	_, err = c.Get(ctx, "k3")
	require.NoError(t, err)
}

func TestMemoryCache_ExpiresAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewMemoryCache(0, mocks.NewMockInterfaceLogger(ctrl))
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", &model.SearchResult{}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "k1")
	require.ErrorIs(t, err, model.ErrCacheMiss)
}
