package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/logstream/pipeline/internal/model"
)

// Store is the primary (non-fallback) search path of spec §4.8: one
// Elasticsearch query returns the requested page and both aggregations
// (counts by level, counts by serviceId) computed over the entire
// filtered match set.
type Store struct {
	client *elasticsearch.Client
	index  string
}

func NewStore(client *elasticsearch.Client, index string) *Store {
	return &Store{client: client, index: index}
}

// Query issues the single combined search+aggregation request.
func (s *Store) Query(ctx context.Context, req model.SearchRequest) (model.SearchResult, error) {
	body, err := buildQuery(req)
	if err != nil {
		return model.SearchResult{}, fmt.Errorf("build query: %w", err)
	}

	res, err := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
	}.Do(ctx, s.client)
	if err != nil {
		return model.SearchResult{}, &model.SearchBackendError{Cause: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return model.SearchResult{}, &model.SearchBackendError{Cause: fmt.Errorf("search store returned status %s", res.Status())}
	}

	var parsed esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return model.SearchResult{}, &model.SearchBackendError{Cause: fmt.Errorf("decode response: %w", err)}
	}

	return parsed.toResult(req), nil
}

// buildQuery renders the term-filter + analyzed-match query described in
// spec §4.8: exact filters are term filters, free-text query is an
// analyzed match on message, sort is timestamp descending, and both
// aggregations are computed alongside the page in the same request.
func buildQuery(req model.SearchRequest) ([]byte, error) {
	var filters []map[string]interface{}

	if req.ServiceID != nil && *req.ServiceID != "" {
		filters = append(filters, map[string]interface{}{"term": map[string]interface{}{"serviceId": *req.ServiceID}})
	}
	if req.Level != nil && *req.Level != "" {
		filters = append(filters, map[string]interface{}{"term": map[string]interface{}{"level": string(*req.Level)}})
	}
	if req.TraceID != nil && *req.TraceID != "" {
		filters = append(filters, map[string]interface{}{"term": map[string]interface{}{"traceId": *req.TraceID}})
	}
	if req.StartTime != nil || req.EndTime != nil {
		rng := map[string]interface{}{}
		if req.StartTime != nil {
			rng["gte"] = req.StartTime.UTC()
		}
		if req.EndTime != nil {
			rng["lte"] = req.EndTime.UTC()
		}
		filters = append(filters, map[string]interface{}{"range": map[string]interface{}{"timestamp": rng}})
	}
	if req.Query != nil && *req.Query != "" {
		filters = append(filters, map[string]interface{}{"match": map[string]interface{}{"message": *req.Query}})
	}

	var query map[string]interface{}
	if len(filters) == 0 {
		query = map[string]interface{}{"match_all": map[string]interface{}{}}
	} else {
		query = map[string]interface{}{"bool": map[string]interface{}{"filter": filters}}
	}

	size := req.Size
	if size <= 0 {
		size = model.DefaultPageSize
	}

	body := map[string]interface{}{
		"from":  req.Page * size,
		"size":  size,
		"query": query,
		"sort": []map[string]interface{}{
			{"timestamp": map[string]interface{}{"order": "desc"}},
		},
		"aggs": map[string]interface{}{
			"by_level": map[string]interface{}{
				"terms": map[string]interface{}{"field": "level", "size": 10},
			},
			"by_service": map[string]interface{}{
				"terms": map[string]interface{}{"field": "serviceId", "size": 1000},
			},
		},
	}

	return json.Marshal(body)
}

type esSearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
	Aggregations struct {
		ByLevel struct {
			Buckets []struct {
				Key      string `json:"key"`
				DocCount int64  `json:"doc_count"`
			} `json:"buckets"`
		} `json:"by_level"`
		ByService struct {
			Buckets []struct {
				Key      string `json:"key"`
				DocCount int64  `json:"doc_count"`
			} `json:"buckets"`
		} `json:"by_service"`
	} `json:"aggregations"`
}

func (r *esSearchResponse) toResult(req model.SearchRequest) model.SearchResult {
	size := req.Size
	if size <= 0 {
		size = model.DefaultPageSize
	}

	records := make([]model.LogRecord, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		records = append(records, docToRecord(h.Source))
	}

	levelCounts := map[model.Level]int64{}
	for _, b := range r.Aggregations.ByLevel.Buckets {
		levelCounts[model.Level(b.Key)] = b.DocCount
	}
	serviceCounts := map[string]int64{}
	for _, b := range r.Aggregations.ByService.Buckets {
		serviceCounts[b.Key] = b.DocCount
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((r.Hits.Total.Value + int64(size) - 1) / int64(size))
	}

	return model.SearchResult{
		Logs:          records,
		TotalElements: r.Hits.Total.Value,
		TotalPages:    totalPages,
		CurrentPage:   req.Page,
		Size:          size,
		LevelCounts:   levelCounts,
		ServiceCounts: serviceCounts,
	}
}

func docToRecord(d document) model.LogRecord {
	ts, _ := parseESTime(d.Timestamp)
	return model.LogRecord{
		RecordID:  d.RecordID,
		Timestamp: ts,
		ServiceID: d.ServiceID,
		Level:     model.Level(d.Level),
		Message:   d.Message,
		TraceID:   d.TraceID,
		Metadata:  d.Metadata,
	}
}
