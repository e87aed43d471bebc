package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchRequest_Validate_DefaultsSize(t *testing.T) {
	req := &SearchRequest{}
	require.NoError(t, req.Validate())
	require.Equal(t, DefaultPageSize, req.Size)
}

func TestSearchRequest_Validate_PageSizeBoundary(t *testing.T) {
	req := &SearchRequest{Size: MaxPageSize}
	require.NoError(t, req.Validate())

	req = &SearchRequest{Size: MaxPageSize + 1}
	require.Error(t, req.Validate())
}

func TestSearchRequest_Validate_NegativePage(t *testing.T) {
	req := &SearchRequest{Page: -1}
	require.Error(t, req.Validate())
}

func TestSearchRequest_Validate_InvalidLevel(t *testing.T) {
	bogus := Level("CRITICAL")
	req := &SearchRequest{Level: &bogus}
	require.Error(t, req.Validate())
}

func TestSearchRequest_Validate_TimeWindowBoundary(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	exact := start.Add(MaxSearchWindow)
	req := &SearchRequest{StartTime: &start, EndTime: &exact}
	require.NoError(t, req.Validate())

	overshoot := start.Add(MaxSearchWindow + time.Millisecond)
	req = &SearchRequest{StartTime: &start, EndTime: &overshoot}
	require.Error(t, req.Validate())
}

func TestSearchRequest_Validate_EndBeforeStart(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Second)
	req := &SearchRequest{StartTime: &start, EndTime: &end}
	require.Error(t, req.Validate())
}

func TestSearchRequest_Validate_StartEqualsEnd(t *testing.T) {
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	req := &SearchRequest{StartTime: &at, EndTime: &at}
	require.NoError(t, req.Validate())
}

func TestSearchRequest_CacheKey_StableAcrossEquivalentNils(t *testing.T) {
	a := &SearchRequest{Page: 1, Size: 50}
	b := &SearchRequest{Page: 1, Size: 50}
	require.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestSearchRequest_CacheKey_DiffersOnFilter(t *testing.T) {
	svc := "svc-a"
	a := &SearchRequest{Page: 1, Size: 50}
	b := &SearchRequest{Page: 1, Size: 50, ServiceID: &svc}
	require.NotEqual(t, a.CacheKey(), b.CacheKey())
}
