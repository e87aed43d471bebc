package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validRecord() LogRecord {
	return LogRecord{
		Timestamp: time.Now(),
		ServiceID: "svc-a",
		Level:     LevelInfo,
		Message:   "hello",
	}
}

func TestLogRecord_Validate_OK(t *testing.T) {
	r := validRecord()
	require.NoError(t, r.Validate())
}

func TestLogRecord_Validate_MissingFields(t *testing.T) {
	r := LogRecord{}
	err := r.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "timestamp is required")
	require.Contains(t, verr.Fields, "serviceId is required")
	require.Contains(t, verr.Fields, "level is required")
	require.Contains(t, verr.Fields, "message is required")
}

func TestLogRecord_Validate_InvalidLevel(t *testing.T) {
	r := validRecord()
	r.Level = Level("CRITICAL")
	err := r.Validate()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("warning")
	require.True(t, ok)
	require.Equal(t, LevelWarning, lvl)

	_, ok = ParseLevel("bogus")
	require.False(t, ok)
}

func TestValidateBatch_EmptyIsNoop(t *testing.T) {
	require.NoError(t, ValidateBatch(nil, 0))
}

func TestValidateBatch_SizeCapBoundary(t *testing.T) {
	records := make([]LogRecord, 5)
	for i := range records {
		records[i] = validRecord()
	}
	require.NoError(t, ValidateBatch(records, 5))
	require.Error(t, ValidateBatch(records, 4))
}

func TestValidateBatch_RejectsFirstInvalidRecord(t *testing.T) {
	records := []LogRecord{validRecord(), {}}
	err := ValidateBatch(records, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "record[1]")
}
