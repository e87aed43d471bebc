package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/logstream/pipeline/internal/model"
)

// Query implements the authoritative-store fallback path of spec §4.8:
// equality for serviceId/traceId/level, BETWEEN for time, case-insensitive
// substring for query, same sort (timestamp desc) and pagination as the
// primary path. Aggregations are computed over only the returned page and
// the result is marked PageScoped.
func (s *PostgresStore) Query(ctx context.Context, req model.SearchRequest) (model.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	where, args := buildFallbackWhere(req)

	total, err := s.fallbackCount(ctx, where, args)
	if err != nil {
		return model.SearchResult{}, &model.SearchBackendError{Cause: fmt.Errorf("fallback count: %w", err)}
	}

	records, err := s.fallbackPage(ctx, where, args, req.Page, req.Size)
	if err != nil {
		return model.SearchResult{}, &model.SearchBackendError{Cause: fmt.Errorf("fallback page: %w", err)}
	}

	levelCounts := map[model.Level]int64{}
	serviceCounts := map[string]int64{}
	for _, r := range records {
		levelCounts[r.Level]++
		serviceCounts[r.ServiceID]++
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return model.SearchResult{
		Logs:          records,
		TotalElements: total,
		TotalPages:    totalPages,
		CurrentPage:   req.Page,
		Size:          req.Size,
		LevelCounts:   levelCounts,
		ServiceCounts: serviceCounts,
		PageScoped:    true,
	}, nil
}

// buildFallbackWhere renders the WHERE clause and positional args for the
// fallback SQL query, equivalent to the primary search-store filter set.
func buildFallbackWhere(req model.SearchRequest) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	idx := 1
	next := func(v interface{}) string {
		args = append(args, v)
		placeholder := fmt.Sprintf("$%d", idx)
		idx++
		return placeholder
	}

	if req.ServiceID != nil && *req.ServiceID != "" {
		clauses = append(clauses, "service_id = "+next(*req.ServiceID))
	}
	if req.Level != nil && *req.Level != "" {
		clauses = append(clauses, "level = "+next(string(*req.Level)))
	}
	if req.TraceID != nil && *req.TraceID != "" {
		clauses = append(clauses, "trace_id = "+next(*req.TraceID))
	}
	if req.StartTime != nil && req.EndTime != nil {
		clauses = append(clauses, fmt.Sprintf("timestamp BETWEEN %s AND %s", next(*req.StartTime), next(*req.EndTime)))
	} else if req.StartTime != nil {
		clauses = append(clauses, "timestamp >= "+next(*req.StartTime))
	} else if req.EndTime != nil {
		clauses = append(clauses, "timestamp <= "+next(*req.EndTime))
	}
	if req.Query != nil && *req.Query != "" {
		clauses = append(clauses, "message ILIKE "+next("%"+*req.Query+"%"))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *PostgresStore) fallbackCount(ctx context.Context, where string, args []interface{}) (int64, error) {
	var total int64
	query := "SELECT COUNT(*) FROM logs" + where
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *PostgresStore) fallbackPage(ctx context.Context, where string, args []interface{}, page, size int) ([]model.LogRecord, error) {
	if size <= 0 {
		size = model.DefaultPageSize
	}
	limitIdx := len(args) + 1
	offsetIdx := len(args) + 2
	query := fmt.Sprintf(`
SELECT id, timestamp, service_id, level, message, COALESCE(trace_id, ''), received_at
FROM logs%s
ORDER BY timestamp DESC
LIMIT $%d OFFSET $%d`, where, limitIdx, offsetIdx)

	fullArgs := append(append([]interface{}{}, args...), size, page*size)

	rows, err := s.db.QueryContext(ctx, query, fullArgs...)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) { _ = rows.Close() }(rows)

	out := make([]model.LogRecord, 0, size)
	for rows.Next() {
		var r model.LogRecord
		var level string
		if err := rows.Scan(&r.RecordID, &r.Timestamp, &r.ServiceID, &level, &r.Message, &r.TraceID, &r.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.Level = model.Level(level)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
