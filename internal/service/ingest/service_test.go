package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/mocks"
	"github.com/logstream/pipeline/internal/model"
)

func validRecord() model.LogRecord {
	return model.LogRecord{
		Timestamp: time.Now(),
		ServiceID: "svc-a",
		Level:     model.LevelInfo,
		Message:   "hello",
	}
}

func TestService_AcceptOne_ValidatesBeforePublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockIngestProducer(ctrl)
	m := mocks.NewMockIngestMetrics(ctrl)
	m.EXPECT().ObserveIngestAcceptLatency(gomock.Any()).AnyTimes()
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc := New(producer, m, 0)
	err := svc.AcceptOne(context.Background(), model.LogRecord{})
	require.Error(t, err)
}

func TestService_AcceptOne_PublishesValidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockIngestProducer(ctrl)
	m := mocks.NewMockIngestMetrics(ctrl)
	m.EXPECT().ObserveIngestAcceptLatency(gomock.Any()).AnyTimes()
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	svc := New(producer, m, 0)
	require.NoError(t, svc.AcceptOne(context.Background(), validRecord()))
}

func TestService_AcceptOne_PublishErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockIngestProducer(ctrl)
	m := mocks.NewMockIngestMetrics(ctrl)
	m.EXPECT().ObserveIngestAcceptLatency(gomock.Any()).AnyTimes()
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&model.PublishError{Cause: errors.New("broker down")})

	svc := New(producer, m, 0)
	err := svc.AcceptOne(context.Background(), validRecord())
	require.Error(t, err)
}

func TestService_AcceptBatch_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockIngestProducer(ctrl)
	m := mocks.NewMockIngestMetrics(ctrl)
	m.EXPECT().ObserveIngestAcceptLatency(gomock.Any()).AnyTimes()
	producer.EXPECT().PublishBatch(gomock.Any(), gomock.Any()).Times(0)

	svc := New(producer, m, 0)
	n, err := svc.AcceptBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestService_AcceptBatch_EnforcesSizeCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockIngestProducer(ctrl)
	m := mocks.NewMockIngestMetrics(ctrl)
	m.EXPECT().ObserveIngestAcceptLatency(gomock.Any()).AnyTimes()
	producer.EXPECT().PublishBatch(gomock.Any(), gomock.Any()).Times(0)

	svc := New(producer, m, 2)
	records := []model.LogRecord{validRecord(), validRecord(), validRecord()}
	_, err := svc.AcceptBatch(context.Background(), records)
	require.Error(t, err)
}

func TestService_AcceptBatch_PublishesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockIngestProducer(ctrl)
	m := mocks.NewMockIngestMetrics(ctrl)
	m.EXPECT().ObserveIngestAcceptLatency(gomock.Any()).AnyTimes()
	producer.EXPECT().PublishBatch(gomock.Any(), gomock.Any()).Return(nil)

	svc := New(producer, m, 0)
	records := []model.LogRecord{validRecord(), validRecord()}
	n, err := svc.AcceptBatch(context.Background(), records)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
