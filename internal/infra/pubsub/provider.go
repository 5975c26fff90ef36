// Package pubsub selects and builds the welcome mail event publisher.
package pubsub

import (
	"context"
	"log/slog"

	"passage/config"
	"passage/internal/domain/constants"
	"passage/internal/domain/service"
	"passage/internal/infra/queue"
	"passage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	MailUsecase usecase.WelcomeMailUsecase
}

// NewEventPublisher creates an EventPublisher based on configuration.
// An absent pubsub section falls back to the in-process queue so welcome
// mails still go out with zero external infrastructure.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var publisher service.EventPublisher
	var err error

	switch provider {
	case constants.PubSubProviderMemory:
		mailCfg := params.Config.WelcomeMail
		policy := queue.Policy{
			MaxAttempts: mailCfg.MaxAttempts,
			Timeout:     mailCfg.Timeout,
			Workers:     mailCfg.Workers,
			QueueSize:   mailCfg.QueueSize,
		}
		logger.Info("Using in-process queue for welcome mail",
			slog.Int("workers", policy.Workers),
			slog.Int("max_attempts", policy.MaxAttempts),
		)

		publisher = NewMemoryPublisher(policy, params.MailUsecase, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
