// Package queue provides a bounded in-process job queue with a worker pool.
// Each job gets a fixed number of attempts with a per-attempt deadline;
// exhausting them hands the job to a terminal failure callback and drops it.
package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrQueueFull is returned when the queue buffer has no room left.
	// Enqueue never blocks the caller.
	ErrQueueFull = errors.New("job queue is full")

	// ErrQueueClosed is returned when enqueueing after shutdown started.
	ErrQueueClosed = errors.New("job queue is closed")
)

// Policy bounds how a job may run.
type Policy struct {
	// MaxAttempts is the total number of tries, the first included.
	MaxAttempts int

	// Timeout is the deadline for a single attempt.
	Timeout time.Duration

	// Workers is the number of concurrent consumers.
	Workers int

	// QueueSize is the buffer capacity for pending jobs.
	QueueSize int
}

// Handler processes one attempt of a job. A non-nil error triggers a retry
// until the attempt ceiling is reached.
type Handler[T any] func(ctx context.Context, payload T) error

// FailureHandler is invoked exactly once, after the final attempt has failed.
type FailureHandler[T any] func(ctx context.Context, payload T, cause error)

// Dispatcher fans queued jobs out to a fixed worker pool.
type Dispatcher[T any] struct {
	policy    Policy
	handle    Handler[T]
	onFailure FailureHandler[T]
	logger    *slog.Logger

	jobs chan T
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its worker pool immediately.
func NewDispatcher[T any](policy Policy, handle Handler[T], onFailure FailureHandler[T], logger *slog.Logger) *Dispatcher[T] {
	d := &Dispatcher[T]{
		policy:    policy,
		handle:    handle,
		onFailure: onFailure,
		logger:    logger,
		jobs:      make(chan T, policy.QueueSize),
	}

	for i := 0; i < policy.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Enqueue hands a job to the pool without blocking. A full buffer returns
// ErrQueueFull to the caller instead of applying backpressure.
func (d *Dispatcher[T]) Enqueue(payload T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrQueueClosed
	}

	select {
	case d.jobs <- payload:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops intake and waits for queued jobs to drain. Jobs already in the
// buffer still run to completion unless ctx expires first.
func (d *Dispatcher[T]) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return nil
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "job queue drain interrupted")
	}
}

func (d *Dispatcher[T]) worker() {
	defer d.wg.Done()

	for payload := range d.jobs {
		d.run(payload)
	}
}

// run executes every attempt for one job and, when all fail, invokes the
// terminal failure handler once.
func (d *Dispatcher[T]) run(payload T) {
	var lastErr error

	for attempt := 1; attempt <= d.policy.MaxAttempts; attempt++ {
		lastErr = d.attempt(payload)
		if lastErr == nil {
			return
		}

		d.logger.Warn("Job attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", d.policy.MaxAttempts),
			slog.Any("error", lastErr),
		)
	}

	d.onFailure(context.Background(), payload, lastErr)
}

func (d *Dispatcher[T]) attempt(payload T) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.policy.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("job handler panicked: %v", r)
		}
	}()

	return d.handle(ctx, payload)
}
