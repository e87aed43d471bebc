package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/model"
)

const insertLog = `
INSERT INTO logs (timestamp, service_id, level, message, trace_id, metadata, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// PostgresStore is the production Writer/FallbackQuerier, generalizing
// the teacher's OrderRepository from one-row-per-entity upserts to a
// single append-only logs table with batch insert.
type PostgresStore struct {
	db     *sql.DB
	logger logger.InterfaceLogger
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, log logger.InterfaceLogger) *PostgresStore {
	return &PostgresStore{db: db, logger: log}
}

// WriteBatch implements spec §4.4: atomic per batch, assigns recordId and
// receivedAt. A connection/serialization failure is classified
// TransientStoreError; a constraint violation (should be unreachable given
// ingest validation) is PermanentStoreError. Both route the whole batch to
// DLQ — the caller never sees a partially-written batch.
func (s *PostgresStore) WriteBatch(ctx context.Context, records []model.LogRecord) ([]model.LogRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, &model.TransientStoreError{Cause: fmt.Errorf("begin: %w", err)}
	}
	defer func() { _ = tx.Rollback() }() // no-op once committed

	stmt, err := tx.PrepareContext(ctx, insertLog)
	if err != nil {
		return nil, &model.TransientStoreError{Cause: fmt.Errorf("prepare: %w", err)}
	}
	defer func(stmt *sql.Stmt) {
		if err := stmt.Close(); err != nil {
			log.Printf("store: failed to close statement: %v", err)
		}
	}(stmt)

	receivedAt := time.Now().UTC()
	out := make([]model.LogRecord, len(records))
	copy(out, records)

	for i := range out {
		metadata, err := out[i].MarshalMetadata()
		if err != nil {
			return nil, &model.PermanentStoreError{Cause: fmt.Errorf("marshal metadata[%d]: %w", i, err)}
		}

		var id int64
		err = stmt.QueryRowContext(ctx,
			out[i].Timestamp, out[i].ServiceID, string(out[i].Level), out[i].Message,
			nullableString(out[i].TraceID), metadata, receivedAt,
		).Scan(&id)
		if err != nil {
			return nil, classifyWriteError(err)
		}

		out[i].RecordID = id
		out[i].ReceivedAt = receivedAt
	}

	if err := tx.Commit(); err != nil {
		return nil, &model.TransientStoreError{Cause: fmt.Errorf("commit: %w", err)}
	}
	return out, nil
}

func classifyWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23": // integrity_constraint_violation
			return &model.PermanentStoreError{Cause: err}
		}
	}
	return &model.TransientStoreError{Cause: err}
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
