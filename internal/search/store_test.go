package search

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/model"
)

func TestBuildQuery_NoFilters_UsesMatchAll(t *testing.T) {
	body, err := buildQuery(model.SearchRequest{Size: 50})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	query := decoded["query"].(map[string]interface{})
	_, ok := query["match_all"]
	require.True(t, ok)
}

func TestBuildQuery_FiltersBecomeTermClauses(t *testing.T) {
	svc := "svc-a"
	lvl := model.LevelError
	body, err := buildQuery(model.SearchRequest{ServiceID: &svc, Level: &lvl, Size: 20, Page: 1})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Equal(t, float64(20), decoded["size"])
	require.Equal(t, float64(20), decoded["from"])

	query := decoded["query"].(map[string]interface{})
	boolQuery := query["bool"].(map[string]interface{})
	filters := boolQuery["filter"].([]interface{})
	require.Len(t, filters, 2)
}

func TestESSearchResponse_ToResult_AggregatesOverWholeMatchSet(t *testing.T) {
	raw := `{
		"hits": {"total": {"value": 120}, "hits": []},
		"aggregations": {
			"by_level": {"buckets": [{"key": "ERROR", "doc_count": 40}]},
			"by_service": {"buckets": [{"key": "svc-a", "doc_count": 100}]}
		}
	}`
	var parsed esSearchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))

	result := parsed.toResult(model.SearchRequest{Page: 0, Size: 50})
	require.Equal(t, int64(120), result.TotalElements)
	require.Equal(t, 3, result.TotalPages)
	require.Equal(t, int64(40), result.LevelCounts[model.LevelError])
	require.Equal(t, int64(100), result.ServiceCounts["svc-a"])
	require.False(t, result.PageScoped)
}

func TestToDocument_FormatsTimestampRFC3339Nano(t *testing.T) {
	ts := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	doc := toDocument(model.LogRecord{RecordID: 1, Timestamp: ts, ServiceID: "svc-a", Level: model.LevelInfo, Message: "hi"})

	parsed, err := parseESTime(doc.Timestamp)
	require.NoError(t, err)
	require.True(t, ts.Equal(parsed))
}

func TestDocToRecord_RoundTrips(t *testing.T) {
	ts := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	doc := toDocument(model.LogRecord{RecordID: 9, Timestamp: ts, ServiceID: "svc-a", Level: model.LevelWarning, Message: "careful", TraceID: "t1"})

	rec := docToRecord(doc)
	require.Equal(t, int64(9), rec.RecordID)
	require.Equal(t, "svc-a", rec.ServiceID)
	require.Equal(t, model.LevelWarning, rec.Level)
	require.Equal(t, "t1", rec.TraceID)
	require.True(t, ts.Equal(rec.Timestamp))
}
