package store

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/mocks"
	"github.com/logstream/pipeline/internal/model"
)

func TestPostgresStore_Query_ReturnsPageScopedResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM logs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT id, timestamp").
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp", "service_id", "level", "message", "trace_id", "received_at"}).
			AddRow(int64(7), time.Now(), "svc-a", "ERROR", "boom", "", time.Now()))

	s := NewPostgresStore(db, mocks.NewMockInterfaceLogger(ctrl))
	svcID := "svc-a"
	result, err := s.Query(context.Background(), model.SearchRequest{ServiceID: &svcID, Size: 20})
	require.NoError(t, err)
	require.True(t, result.PageScoped)
	require.Equal(t, int64(1), result.TotalElements)
	require.Len(t, result.Logs, 1)
	require.Equal(t, int64(1), result.LevelCounts[model.LevelError])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildFallbackWhere_NoFilters(t *testing.T) {
	where, args := buildFallbackWhere(model.SearchRequest{})
	require.Empty(t, where)
	require.Empty(t, args)
}

func TestBuildFallbackWhere_CombinesFilters(t *testing.T) {
	svcID := "svc-a"
	traceID := "trace-1"
	where, args := buildFallbackWhere(model.SearchRequest{ServiceID: &svcID, TraceID: &traceID})
	require.Contains(t, where, "service_id = $1")
	require.Contains(t, where, "trace_id = $2")
	require.Len(t, args, 2)
}
