package search

import "time"

// parseESTime parses the RFC3339-nano timestamp format documents are
// indexed with (see toDocument in index_writer.go).
func parseESTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, raw)
}
