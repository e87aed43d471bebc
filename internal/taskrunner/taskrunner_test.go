package taskrunner

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/logstream/pipeline/internal/mocks"
)

func TestRunner_Go_RunsTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockInterfaceLogger(ctrl)
	r := New(4, log)

	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	r.Go("test-task", func() error {
		defer wg.Done()
		ran = true
		return nil
	})

	wg.Wait()
	require.True(t, ran)
}

func TestRunner_Go_SwallowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockInterfaceLogger(ctrl)
	done := make(chan struct{})
	log.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(...interface{}) { close(done) })

	r := New(4, log)
	r.Go("failing-task", func() error { return errors.New("boom") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Errorf to be called")
	}
}

func TestRunner_Go_RecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockInterfaceLogger(ctrl)
	done := make(chan struct{})
	log.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(...interface{}) { close(done) })

	r := New(4, log)
	r.Go("panicking-task", func() error { panic("oops") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected panic to be recovered and logged")
	}
}
