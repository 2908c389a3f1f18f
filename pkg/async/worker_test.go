package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"makotools/pkg/logger"
)

func newTestWorker(t *testing.T) *Worker {
	t.Helper()
	return NewWorker(16, logger.NewLogger("error"))
}

func TestWorkerRunsSubmittedTask(t *testing.T) {
	w := newTestWorker(t)
	w.Start(2)

	done := make(chan struct{})
	w.Submit(Task{
		ID: "t1",
		Handler: func(context.Context) error {
			close(done)
			return nil
		},
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
	w.Stop()
}

func TestWorkerRetriesFailedTask(t *testing.T) {
	w := newTestWorker(t)
	w.Start(1)

	var attempts int32
	done := make(chan struct{})
	w.Submit(Task{
		ID: "t1",
		Handler: func(context.Context) error {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return errors.New("transient")
			}
			close(done)
			return nil
		},
		RetryMax: 2,
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("task never succeeded")
	}
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
	w.Stop()
}

func TestWorkerTimeoutCancelsHandlerContext(t *testing.T) {
	w := newTestWorker(t)
	w.Start(1)

	done := make(chan struct{})
	w.Submit(Task{
		ID: "t1",
		Handler: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				close(done)
				return nil
			case <-time.After(5 * time.Second):
				return errors.New("context never cancelled")
			}
		},
		Timeout: 50 * time.Millisecond,
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler context was never cancelled")
	}
	w.Stop()
}

func TestWorkerStopDrainsQueue(t *testing.T) {
	w := newTestWorker(t)
	w.Start(2)

	var ran int32
	for i := 0; i < 10; i++ {
		w.Submit(Task{
			Handler: func(context.Context) error {
				atomic.AddInt32(&ran, 1)
				return nil
			},
		})
	}

	w.Stop()
	if got := atomic.LoadInt32(&ran); got != 10 {
		t.Errorf("ran = %d tasks after Stop, want 10", got)
	}
}
