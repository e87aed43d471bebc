package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by the authoritative store when a lookup misses.
var ErrNotFound = errors.New("record not found")

// ErrCacheMiss is returned by cache backends on a clean miss (not an error condition).
var ErrCacheMiss = errors.New("cache miss")

// ValidationError reports one or more field-level problems with inbound
// data (an ingest record or a search request). It is always user-visible.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, "; "))
}

// NewValidationError builds a ValidationError from field messages; returns
// nil if no messages were given, so callers can do `if err := ...; err != nil`.
func NewValidationError(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// TransientStoreError wraps a retryable authoritative-store failure
// (connection drop, serialization conflict). The batch is routed to DLQ;
// it is not surfaced to the producer.
type TransientStoreError struct {
	Cause error
}

func (e *TransientStoreError) Error() string { return fmt.Sprintf("transient store error: %v", e.Cause) }
func (e *TransientStoreError) Unwrap() error  { return e.Cause }

// PermanentStoreError wraps a non-retryable authoritative-store failure
// (constraint violation). Should be unreachable given ingest validation,
// but the consumer treats it identically to TransientStoreError: DLQ and move on.
type PermanentStoreError struct {
	Cause error
}

func (e *PermanentStoreError) Error() string { return fmt.Sprintf("permanent store error: %v", e.Cause) }
func (e *PermanentStoreError) Unwrap() error  { return e.Cause }

// IndexError wraps a best-effort search-store indexing failure. Logged and
// counted by the caller; never propagated further.
type IndexError struct {
	Cause error
}

func (e *IndexError) Error() string { return fmt.Sprintf("index error: %v", e.Cause) }
func (e *IndexError) Unwrap() error  { return e.Cause }

// CacheError wraps a cache-backend failure. The cache layer logs, counts,
// and bypasses to the backend search path; it never fails the caller.
type CacheError struct {
	Cause error
}

func (e *CacheError) Error() string { return fmt.Sprintf("cache error: %v", e.Cause) }
func (e *CacheError) Unwrap() error  { return e.Cause }

// SearchBackendError wraps a search-store failure that triggers fallback
// to the authoritative store with page-scoped aggregations.
type SearchBackendError struct {
	Cause error
}

func (e *SearchBackendError) Error() string { return fmt.Sprintf("search backend error: %v", e.Cause) }
func (e *SearchBackendError) Unwrap() error  { return e.Cause }

// PublishError wraps a queue-producer delivery failure. Logged and counted;
// never retracts an ingest acknowledgment already sent to the caller.
type PublishError struct {
	Cause error
}

func (e *PublishError) Error() string { return fmt.Sprintf("publish error: %v", e.Cause) }
func (e *PublishError) Unwrap() error  { return e.Cause }
