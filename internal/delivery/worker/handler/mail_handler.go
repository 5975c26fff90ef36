// Package handler processes Pub/Sub push deliveries for welcome mail events.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"passage/config"
	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/constants"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`

	// DeliveryAttempt is populated by Pub/Sub when the subscription has a
	// dead-letter policy; it counts this delivery, starting at 1.
	DeliveryAttempt int `json:"deliveryAttempt,omitempty"`
}

// MailHandler handles Pub/Sub push messages carrying welcome mail events.
type MailHandler struct {
	verifyPushAuth bool
	maxAttempts    int
	attemptTimeout time.Duration
	logger         *slog.Logger
	mailUsecase    usecase.WelcomeMailUsecase
}

// MailHandlerParams holds dependencies for the MailHandler
type MailHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	MailUsecase usecase.WelcomeMailUsecase
}

// NewMailHandler creates a new Pub/Sub push handler for welcome mail.
func NewMailHandler(params MailHandlerParams) *MailHandler {
	// Push auth only applies to real Google subscriptions outside develop.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &MailHandler{
		verifyPushAuth: verifyPushAuth,
		maxAttempts:    params.Config.WelcomeMail.MaxAttempts,
		attemptTimeout: params.Config.WelcomeMail.Timeout,
		logger:         params.Logger,
		mailUsecase:    params.MailUsecase,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// A 503 response asks Pub/Sub to redeliver; 200 acknowledges and discards.
// Once the delivery attempt count reaches the configured ceiling, the
// terminal failure handler runs and the message is acknowledged.
func (h *MailHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.WelcomeMailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse welcome mail event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	job, err := h.eventToJob(&event)
	if err != nil {
		// A snapshot that cannot be parsed will never succeed; ack it.
		reqLogger.Error("[Worker] Dropping malformed welcome mail event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	attempt := pushMsg.DeliveryAttempt
	if attempt <= 0 {
		attempt = 1
	}

	reqLogger.Info("[Worker] Processing welcome mail event",
		slog.String("user_id", event.UserID),
		slog.Int("delivery_attempt", attempt),
	)

	if err := h.process(ctx, job); err != nil {
		reqLogger.Error("[Worker] Failed to process welcome mail event",
			slog.String("user_id", event.UserID),
			slog.Int("delivery_attempt", attempt),
			slog.Any("error", err),
		)

		if attempt >= h.maxAttempts {
			h.mailUsecase.HandleFinalFailure(ctx, job, err)

			return c.NoContent(http.StatusOK)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// process runs one delivery attempt under the configured attempt timeout.
func (h *MailHandler) process(ctx context.Context, job *usecase.WelcomeMailJob) error {
	attemptCtx, cancel := context.WithTimeout(ctx, h.attemptTimeout)
	defer cancel()

	return h.mailUsecase.Execute(attemptCtx, job)
}

func (h *MailHandler) eventToJob(event *service.WelcomeMailEvent) (*usecase.WelcomeMailJob, error) {
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

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *MailHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.WelcomeMailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match this endpoint's URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
