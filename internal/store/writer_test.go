package store

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/mocks"
	"github.com/logstream/pipeline/internal/model"
)

func testRecord() model.LogRecord {
	return model.LogRecord{
		Timestamp: time.Now(),
		ServiceID: "svc-a",
		Level:     model.LevelInfo,
		Message:   "boom",
	}
}

func TestPostgresStore_WriteBatch_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgresStore(db, mocks.NewMockInterfaceLogger(ctrl))
	out, err := s.WriteBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestPostgresStore_WriteBatch_AssignsRecordIDAndReceivedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO logs")
	mock.ExpectQuery("INSERT INTO logs").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	s := NewPostgresStore(db, mocks.NewMockInterfaceLogger(ctrl))
	out, err := s.WriteBatch(context.Background(), []model.LogRecord{testRecord()})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(42), out[0].RecordID)
	require.False(t, out[0].ReceivedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_WriteBatch_TransientErrorOnConnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO logs")
	mock.ExpectQuery("INSERT INTO logs").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	s := NewPostgresStore(db, mocks.NewMockInterfaceLogger(ctrl))
	_, err = s.WriteBatch(context.Background(), []model.LogRecord{testRecord()})
	require.Error(t, err)

	var terr *model.TransientStoreError
	require.ErrorAs(t, err, &terr)
}

func TestPostgresStore_WriteBatch_PermanentErrorOnConstraintViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO logs")
	mock.ExpectQuery("INSERT INTO logs").WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	s := NewPostgresStore(db, mocks.NewMockInterfaceLogger(ctrl))
	_, err = s.WriteBatch(context.Background(), []model.LogRecord{testRecord()})
	require.Error(t, err)

	var perr *model.PermanentStoreError
	require.ErrorAs(t, err, &perr)
}

func TestNullableString(t *testing.T) {
	require.Nil(t, nullableString(""))
	require.Equal(t, "abc", nullableString("abc"))
}
