// Package mail implements the outbound mail side of the welcome flow.
// No real provider is wired yet; the sender logs the delivery and sleeps
// for a configurable latency so the surrounding retry and timeout behavior
// can be exercised end to end.
package mail

import (
	"context"
	"log/slog"
	"time"

	"passage/config"
	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	"passage/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logSender is a MailSender that simulates delivery latency and logs the send.
type logSender struct {
	latency time.Duration
	logger  *slog.Logger
}

// LogSenderParams holds dependencies for logSender, injected by Fx.
type LogSenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(params LogSenderParams) service.MailSender {
	return &logSender{
		latency: params.Config.WelcomeMail.SimulatedLatency,
		logger:  params.Logger,
	}
}

// SendWelcome simulates composing and delivering the welcome mail.
// The sleep is cancellable so an attempt deadline cuts the send short
// instead of blocking a worker.
func (s *logSender) SendWelcome(ctx context.Context, user *entity.User) error {
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "welcome mail delivery interrupted")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Composed welcome mail",
		slog.String("to", user.Email),
		slog.String("name", user.Name),
	)

	return nil
}
