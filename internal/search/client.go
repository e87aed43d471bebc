// Package search is the search-store concern: a best-effort bulk index
// writer (spec §4.5) and the primary (non-fallback) search path of spec
// §4.8, backed by Elasticsearch. Grounded on the esutil.BulkIndexer
// pattern in other_examples' loggerkit Elasticsearch core factory.
package search

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/logstream/pipeline/internal/config"
)

// NewClient builds an Elasticsearch client from SearchConfig.
func NewClient(cfg *config.SearchConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch.NewClient: %w", err)
	}
	return client, nil
}
