package model

import (
	"fmt"
	"strings"
	"time"
)

// MaxSearchWindow bounds the time window a SearchRequest may span (spec
// §4.8: "endTime − startTime ≤ 7 days"). The Open Question on inclusive vs
// exclusive is decided in SPEC_FULL.md: the bound is inclusive.
const MaxSearchWindow = 7 * 24 * time.Hour

// MaxPageSize and DefaultPageSize bound/seed SearchRequest.Size (spec §6).
const (
	MaxPageSize     = 1000
	DefaultPageSize = 50
)

// SearchRequest is the filter+pagination contract of spec §3/§6. All
// filter fields are optional and ANDed; Sort is always timestamp descending
// in the core (not a client choice).
type SearchRequest struct {
	ServiceID *string
	Level     *Level
	TraceID   *string
	StartTime *time.Time
	EndTime   *time.Time
	Query     *string
	Page      int
	Size      int
}

// Validate enforces spec §4.8 and the boundary behaviors of §8.
func (r *SearchRequest) Validate() error {
	var fields []string

	if r.Page < 0 {
		fields = append(fields, "page must be >= 0")
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		fields = append(fields, fmt.Sprintf("size %d exceeds max %d", r.Size, MaxPageSize))
	}
	if r.Level != nil && !r.Level.Valid() {
		fields = append(fields, fmt.Sprintf("level %q is not one of DEBUG|INFO|WARNING|ERROR", *r.Level))
	}
	if r.StartTime != nil && r.EndTime != nil {
		if r.EndTime.Before(*r.StartTime) {
			fields = append(fields, "endTime must be >= startTime")
		} else if r.EndTime.Sub(*r.StartTime) > MaxSearchWindow {
			fields = append(fields, "time window exceeds 7 days")
		}
	}

	return NewValidationError(fields...)
}

// CacheKey renders a canonical string for the look-aside cache (spec §4.9),
// using consistent null placeholders so two logically-identical requests
// hash to the same key regardless of which optional filters are nil.
func (r *SearchRequest) CacheKey() string {
	var b strings.Builder
	writeOpt := func(label string, v *string) {
		b.WriteString(label)
		b.WriteByte('=')
		if v == nil {
			b.WriteString("<nil>")
		} else {
			b.WriteString(*v)
		}
		b.WriteByte('|')
	}

	writeOpt("serviceId", r.ServiceID)
	var lvl *string
	if r.Level != nil {
		s := string(*r.Level)
		lvl = &s
	}
	writeOpt("level", lvl)
	writeOpt("traceId", r.TraceID)

	b.WriteString("start=")
	if r.StartTime == nil {
		b.WriteString("<nil>")
	} else {
		b.WriteString(r.StartTime.UTC().Format(time.RFC3339Nano))
	}
	b.WriteByte('|')

	b.WriteString("end=")
	if r.EndTime == nil {
		b.WriteString("<nil>")
	} else {
		b.WriteString(r.EndTime.UTC().Format(time.RFC3339Nano))
	}
	b.WriteByte('|')

	writeOpt("query", r.Query)
	fmt.Fprintf(&b, "page=%d|size=%d", r.Page, r.Size)
	return b.String()
}

// SearchResult is the full response shape of spec §3/§6. LevelCounts and
// ServiceCounts are computed over the entire filtered match set, never
// merely the returned page — except when PageScoped is true, which marks
// the authoritative-store fallback path of spec §4.8 where aggregations
// are necessarily computed over only the returned page.
type SearchResult struct {
	Logs          []LogRecord      `json:"logs"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
	CurrentPage   int              `json:"currentPage"`
	Size          int              `json:"size"`
	SearchTimeMs  int64            `json:"searchTimeMs"`
	LevelCounts   map[Level]int64  `json:"levelCounts"`
	ServiceCounts map[string]int64 `json:"serviceCounts"`
	PageScoped    bool             `json:"pageScoped"`
}
