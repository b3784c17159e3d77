package workerpool

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrQueueFull = errors.New("worker pool queue is full")
	ErrClosed    = errors.New("worker pool is closed")
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	TryAddTask(task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines fed from a bounded
// queue.
type WorkerPool struct {
	name  string
	pool  chan Task
	mu    sync.RWMutex
	done  bool
	wg    sync.WaitGroup
	close sync.Once
}

func New(name string, workers, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	wp := &WorkerPool{name: name, pool: make(chan Task, queueSize)}

	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("task execution failed", zap.String("pool", wp.name), zap.Error(err))
		}
	}
}

// AddTask blocks until the task is queued or ctx is done.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.done {
		return ErrClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// TryAddTask queues the task only if there is room right now.
func (wp *WorkerPool) TryAddTask(task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.done {
		return ErrClosed
	}

	select {
	case wp.pool <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks, lets the queued ones finish and waits for the
// workers to exit.
func (wp *WorkerPool) Close() {
	wp.close.Do(func() {
		wp.mu.Lock()
		wp.done = true
		close(wp.pool)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
