package usecase

import (
	"context"

	"github.com/google/uuid"
)

// WelcomeMailJob is the unit of deferred work executed by the mail queue.
// It snapshots the user identity at enqueue time; execution never goes back
// to the store.
type WelcomeMailJob struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// WelcomeMailUsecase executes welcome mail jobs. The queue infrastructure
// owns scheduling, the retry ceiling and per-attempt timeouts; this usecase
// owns the side effect and its outcome logging.
type WelcomeMailUsecase interface {
	// Execute performs one delivery attempt for the job.
	Execute(ctx context.Context, job *WelcomeMailJob) error

	// HandleFinalFailure records the terminal failure after the last
	// attempt; the job is discarded afterwards.
	HandleFinalFailure(ctx context.Context, job *WelcomeMailJob, jobErr error)
}
