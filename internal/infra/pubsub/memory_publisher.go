package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/lifecycle"
	"passage/internal/domain/service"
	"passage/internal/infra/queue"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memoryPublisher implements EventPublisher on the in-process job queue.
// Publish means enqueue; the dispatcher's worker pool drives the attempts
// inside the same process.
type memoryPublisher struct {
	dispatcher *queue.Dispatcher[*service.WelcomeMailEvent]
	logger     *slog.Logger
}

// NewMemoryPublisher creates a publisher backed by an in-process worker pool.
// The queue policy (attempts, per-attempt timeout, workers, buffer) comes
// from the welcome mail configuration.
func NewMemoryPublisher(policy queue.Policy, mailUsecase usecase.WelcomeMailUsecase, logger *slog.Logger) service.EventPublisher {
	p := &memoryPublisher{logger: logger}

	p.dispatcher = queue.NewDispatcher(policy,
		func(ctx context.Context, event *service.WelcomeMailEvent) error {
			return p.execute(ctx, event, mailUsecase)
		},
		func(ctx context.Context, event *service.WelcomeMailEvent, cause error) {
			job, err := eventToJob(event)
			if err != nil {
				logger.Error("Dropping malformed welcome mail event", slog.Any("error", err))

				return
			}
			mailUsecase.HandleFinalFailure(jobContext(ctx, event, logger), job, cause)
		},
		logger,
	)

	return p
}

// PublishWelcomeMail enqueues the event without blocking the request path.
func (p *memoryPublisher) PublishWelcomeMail(_ context.Context, event *service.WelcomeMailEvent) error {
	if err := p.dispatcher.Enqueue(event); err != nil {
		return errors.Wrap(err, "enqueue welcome mail event")
	}

	p.logger.Debug("[MemoryPubSub] Event enqueued",
		slog.String("user_id", event.UserID),
	)

	return nil
}

// Close drains queued jobs before shutdown.
func (p *memoryPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return p.dispatcher.Close(ctx)
}

func (p *memoryPublisher) execute(ctx context.Context, event *service.WelcomeMailEvent, mailUsecase usecase.WelcomeMailUsecase) error {
	job, err := eventToJob(event)
	if err != nil {
		// Malformed snapshots can never succeed; fail the attempt so the
		// terminal handler eventually records it.
		return err
	}

	return mailUsecase.Execute(jobContext(ctx, event, p.logger), job)
}

// eventToJob converts the wire snapshot into the job the usecase executes.
func eventToJob(event *service.WelcomeMailEvent) (*usecase.WelcomeMailJob, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid user id %q in welcome mail event", event.UserID)
	}

	return &usecase.WelcomeMailJob{
		UserID: userID,
		Email:  event.Email,
		Name:   event.Name,
	}, nil
}

// jobContext restores the originating request's tracing context so job logs
// correlate with the request that enqueued them.
func jobContext(ctx context.Context, event *service.WelcomeMailEvent, logger *slog.Logger) context.Context {
	if event.RequestID == "" {
		return ctx
	}

	ctx = deliverycontext.WithRequestID(ctx, event.RequestID)

	return deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", event.RequestID)))
}
