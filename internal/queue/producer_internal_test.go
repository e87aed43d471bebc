package queue

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	kafka "github.com/segmentio/kafka-go"

	"github.com/logstream/pipeline/internal/mocks"
)

func TestProducer_OnCompletion_SuccessIncrementsPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockInterfaceLogger(ctrl)
	metrics := mocks.NewMockQueueMetrics(ctrl)
	metrics.EXPECT().IncPublished(2)

	p := &Producer{log: log, metrics: metrics}
	p.onCompletion(make([]kafka.Message, 2), nil)
}

func TestProducer_OnCompletion_ErrorIncrementsFailedAndLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockInterfaceLogger(ctrl)
	log.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
	metrics := mocks.NewMockQueueMetrics(ctrl)
	metrics.EXPECT().IncPublishFailed(3)

	p := &Producer{log: log, metrics: metrics}
	p.onCompletion(make([]kafka.Message, 3), errors.New("broker unreachable"))
}
