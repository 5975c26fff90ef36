package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"passage/config"
	"passage/internal/domain/constants"
	"passage/internal/domain/service"
	mockUsecase "passage/internal/mocks/usecase"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testWorkerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.WelcomeMail = &config.WelcomeMailConfig{
		MaxAttempts: 3,
		Timeout:     60 * time.Second,
	}
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderLocal}

	return cfg
}

func newTestMailHandler(t *testing.T) (*MailHandler, *mockUsecase.MockWelcomeMailUsecase) {
	mailUsecase := mockUsecase.NewMockWelcomeMailUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewMailHandler(MailHandlerParams{
		Config:      testWorkerConfig(),
		Logger:      logger,
		MailUsecase: mailUsecase,
	})

	return h, mailUsecase
}

func pushBody(t *testing.T, event *service.WelcomeMailEvent, deliveryAttempt int) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{
		Subscription:    "projects/local/subscriptions/welcome-mail-sub",
		DeliveryAttempt: deliveryAttempt,
	}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = uuid.New().String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *MailHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func welcomeEvent() *service.WelcomeMailEvent {
	return &service.WelcomeMailEvent{
		RequestID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Email:     "new@example.com",
		Name:      "New User",
	}
}

func TestMailHandler_HandlePush_Success(t *testing.T) {
	h, mailUsecase := newTestMailHandler(t)
	event := welcomeEvent()

	mailUsecase.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("*usecase.WelcomeMailJob")).
		Run(func(_ context.Context, job *usecase.WelcomeMailJob) {
			assert.Equal(t, event.UserID, job.UserID.String())
			assert.Equal(t, event.Email, job.Email)
			assert.Equal(t, event.Name, job.Name)
		}).
		Return(nil)

	rec := doPush(h, pushBody(t, event, 1))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMailHandler_HandlePush_FailureRequestsRedelivery(t *testing.T) {
	h, mailUsecase := newTestMailHandler(t)

	mailUsecase.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("*usecase.WelcomeMailJob")).
		Return(errors.New("mail backend down"))

	rec := doPush(h, pushBody(t, welcomeEvent(), 1))

	// 503 asks Pub/Sub to redeliver; the terminal handler must not run yet.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMailHandler_HandlePush_FinalAttemptAcksAndRecordsFailure(t *testing.T) {
	h, mailUsecase := newTestMailHandler(t)
	event := welcomeEvent()
	cause := errors.New("mail backend down")

	mailUsecase.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("*usecase.WelcomeMailJob")).
		Return(cause)
	mailUsecase.EXPECT().
		HandleFinalFailure(mock.Anything, mock.AnythingOfType("*usecase.WelcomeMailJob"), mock.Anything).
		Run(func(_ context.Context, job *usecase.WelcomeMailJob, err error) {
			assert.Equal(t, event.UserID, job.UserID.String())
			assert.ErrorIs(t, err, cause)
		}).
		Return()

	rec := doPush(h, pushBody(t, event, 3))

	// The message is acknowledged so Pub/Sub stops redelivering it.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMailHandler_HandlePush_MissingAttemptCountsAsFirst(t *testing.T) {
	h, mailUsecase := newTestMailHandler(t)

	mailUsecase.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("*usecase.WelcomeMailJob")).
		Return(errors.New("mail backend down"))

	rec := doPush(h, pushBody(t, welcomeEvent(), 0))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMailHandler_HandlePush_MalformedBody(t *testing.T) {
	h, _ := newTestMailHandler(t)

	rec := doPush(h, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMailHandler_HandlePush_InvalidBase64(t *testing.T) {
	h, _ := newTestMailHandler(t)

	rec := doPush(h, `{"message":{"data":"%%%not-base64%%%"},"subscription":"s"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMailHandler_HandlePush_MalformedEventIsAcked(t *testing.T) {
	h, _ := newTestMailHandler(t)

	event := welcomeEvent()
	event.UserID = "not-a-uuid"

	rec := doPush(h, pushBody(t, event, 1))

	// An event that can never be processed is dropped with an ack.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewMailHandler_PushAuthOnlyForGoogleOutsideDevelop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailUsecase := mockUsecase.NewMockWelcomeMailUsecase(t)

	cfg := testWorkerConfig()
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub.Provider = constants.PubSubProviderGoogle

	h := NewMailHandler(MailHandlerParams{Config: cfg, Logger: logger, MailUsecase: mailUsecase})
	assert.True(t, h.verifyPushAuth)

	cfg = testWorkerConfig()
	cfg.PubSub.Provider = constants.PubSubProviderGoogle

	h = NewMailHandler(MailHandlerParams{Config: cfg, Logger: logger, MailUsecase: mailUsecase})
	assert.False(t, h.verifyPushAuth)
}

func TestMailHandler_HandlePush_RejectsUnauthenticatedGooglePush(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailUsecase := mockUsecase.NewMockWelcomeMailUsecase(t)

	cfg := testWorkerConfig()
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub.Provider = constants.PubSubProviderGoogle

	h := NewMailHandler(MailHandlerParams{Config: cfg, Logger: logger, MailUsecase: mailUsecase})

	rec := doPush(h, pushBody(t, welcomeEvent(), 1))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
