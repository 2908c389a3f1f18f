package async

import (
	"context"
	"sync"
	"time"

	"makotools/pkg/logger"
)

// Task is a unit of background work.
type Task struct {
	ID       string
	Handler  func(ctx context.Context) error
	Timeout  time.Duration
	RetryMax int
}

// Worker is a fixed-size pool draining a buffered task queue. It is used for
// fire-and-forget work such as mail delivery.
type Worker struct {
	taskQueue chan Task
	logger    *logger.Logger
	wg        sync.WaitGroup
}

// NewWorker creates a worker with the given queue capacity.
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		logger:    logger,
	}
}

// Start launches numWorkers goroutines draining the queue.
func (w *Worker) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.processTasks()
	}
}

// Stop closes the queue and waits for queued and in-flight tasks to finish.
func (w *Worker) Stop() {
	close(w.taskQueue)
	w.wg.Wait()
}

// Submit enqueues a task. A positive Timeout bounds the handler context; a
// failed handler is retried up to RetryMax times with linear backoff.
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}

func (w *Worker) processTasks() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.executeTask(task)
	}
}

func (w *Worker) executeTask(task Task) {
	ctx := context.Background()
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	var err error
	for attempt := 0; attempt <= task.RetryMax; attempt++ {
		if attempt > 0 {
			w.logger.Info("retrying task", "task_id", task.ID, "attempt", attempt)
			time.Sleep(time.Second * time.Duration(attempt))
		}

		err = task.Handler(ctx)
		if err == nil {
			return
		}

		w.logger.Error("task execution failed", "task_id", task.ID, "attempt", attempt, "error", err)
	}

	w.logger.Error("async task failed", "task_id", task.ID, "error", err)
}
