package impl

import (
	"context"
	"log/slog"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// welcomeMailService implements the WelcomeMailUsecase interface.
type welcomeMailService struct {
	sender service.MailSender
	logger *slog.Logger
}

// WelcomeMailServiceParams holds dependencies for welcomeMailService, injected by Fx.
type WelcomeMailServiceParams struct {
	fx.In

	Sender service.MailSender
	Logger *slog.Logger
}

// NewWelcomeMailService is the constructor for welcomeMailService.
func NewWelcomeMailService(params WelcomeMailServiceParams) usecase.WelcomeMailUsecase {
	return &welcomeMailService{
		sender: params.Sender,
		logger: params.Logger,
	}
}

func (srv *welcomeMailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Execute sends the welcome mail for one job. The job carries a snapshot of
// the user taken at enqueue time, so a concurrent profile edit or deletion
// cannot change what the mail says.
func (srv *welcomeMailService) Execute(ctx context.Context, job *usecase.WelcomeMailJob) error {
	user := &entity.User{
		ID:    job.UserID,
		Email: job.Email,
		Name:  job.Name,
	}

	if err := srv.sender.SendWelcome(ctx, user); err != nil {
		return errors.Wrap(err, "failed to send welcome mail")
	}

	srv.log(ctx).Info("Welcome email sent to user",
		slog.String("user_id", job.UserID.String()),
		slog.String("email", job.Email),
		slog.String("name", job.Name),
	)

	return nil
}

// HandleFinalFailure records that every delivery attempt for a job has been
// exhausted. The job is dropped afterwards; there is no dead-letter store.
func (srv *welcomeMailService) HandleFinalFailure(ctx context.Context, job *usecase.WelcomeMailJob, cause error) {
	srv.log(ctx).Error("Failed to send welcome email",
		slog.String("user_id", job.UserID.String()),
		slog.Any("error", cause),
	)
}
