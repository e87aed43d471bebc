// Package model holds the canonical types that flow through the ingest,
// storage, search, and broadcast stages of the pipeline.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Level is the severity enum carried by every LogRecord.
type Level string

const (
	LevelDebug   Level = "DEBUG"
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// ParseLevel validates a raw string against the known enum values.
func ParseLevel(raw string) (Level, bool) {
	switch Level(strings.ToUpper(raw)) {
	case LevelDebug:
		return LevelDebug, true
	case LevelInfo:
		return LevelInfo, true
	case LevelWarning:
		return LevelWarning, true
	case LevelError:
		return LevelError, true
	default:
		return "", false
	}
}

func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError:
		return true
	default:
		return false
	}
}

// LogRecord is the canonical unit flowing through the pipeline (spec §3).
// recordId and receivedAt are assigned exclusively by the durable writer;
// a producer-supplied value for either is ignored on ingest.
type LogRecord struct {
	RecordID   int64                  `json:"recordId,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	ServiceID  string                 `json:"serviceId"`
	Level      Level                  `json:"level"`
	Message    string                 `json:"message"`
	TraceID    string                 `json:"traceId,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	ReceivedAt time.Time              `json:"receivedAt,omitempty"`
}

// Validate enforces spec §4.1: required fields present, level in the enum.
// Producer-supplied RecordID/ReceivedAt are not validated — they are
// clobbered by the durable writer on persistence regardless.
func (r *LogRecord) Validate() error {
	var fields []string

	if r.Timestamp.IsZero() {
		fields = append(fields, "timestamp is required")
	}
	if strings.TrimSpace(r.ServiceID) == "" {
		fields = append(fields, "serviceId is required")
	}
	if r.Level == "" {
		fields = append(fields, "level is required")
	} else if !r.Level.Valid() {
		fields = append(fields, fmt.Sprintf("level %q is not one of DEBUG|INFO|WARNING|ERROR", r.Level))
	}
	if strings.TrimSpace(r.Message) == "" {
		fields = append(fields, "message is required")
	}

	return NewValidationError(fields...)
}

// MarshalMetadata serializes Metadata for storage as an opaque JSON blob
// (the authoritative store never interprets its contents).
func (r *LogRecord) MarshalMetadata() ([]byte, error) {
	if r.Metadata == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Metadata)
}

// MaxBatchSize is the default maximum batch the ingest endpoint accepts
// per spec §4.1 ("recommended ≥ 5,000").
const MaxBatchSize = 5000

// ValidateBatch validates each record and enforces the size cap. It
// returns the first validation error encountered describing which index
// failed, or nil if the whole batch is well-formed.
func ValidateBatch(records []LogRecord, maxSize int) error {
	if maxSize <= 0 {
		maxSize = MaxBatchSize
	}
	if len(records) > maxSize {
		return NewValidationError(fmt.Sprintf("batch size %d exceeds max %d", len(records), maxSize))
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return NewValidationError(fmt.Sprintf("record[%d]: %v", i, err))
		}
	}
	return nil
}

// Batch is an ordered sequence of LogRecord drawn from one queue
// partition, with that partition's highest committed offset attached
// (spec §3). It is the unit of transactional persistence and DLQ routing.
type Batch struct {
	Partition int
	Offset    int64
	Records   []LogRecord
}

// DLQEnvelope is the terminal resting place for a record the pipeline
// could not persist (spec §3, §4.6).
type DLQEnvelope struct {
	CorrelationID string    `json:"correlationId"`
	Record        LogRecord `json:"record"`
	ErrorKind     string    `json:"errorKind"`
	ErrorMessage  string    `json:"errorMessage"`
	OriginTopic   string    `json:"originTopic"`
	OriginPartition int     `json:"originPartition"`
	OriginOffset  int64     `json:"originOffset"`
	FailedAt      time.Time `json:"failedAt"`
}
