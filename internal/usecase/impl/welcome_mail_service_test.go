package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"passage/internal/domain/entity"
	mockSvc "passage/internal/mocks/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func welcomeMailJob() *usecase.WelcomeMailJob {
	return &usecase.WelcomeMailJob{
		UserID: uuid.New(),
		Email:  "new@example.com",
		Name:   "New User",
	}
}

func TestWelcomeMailService_Execute(t *testing.T) {
	sender := mockSvc.NewMockMailSender(t)
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	svc := NewWelcomeMailService(WelcomeMailServiceParams{Sender: sender, Logger: logger})

	ctx := context.Background()
	job := welcomeMailJob()

	sender.EXPECT().
		SendWelcome(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, job.UserID, user.ID)
			assert.Equal(t, job.Email, user.Email)
			assert.Equal(t, job.Name, user.Name)
		}).
		Return(nil)

	require.NoError(t, svc.Execute(ctx, job))

	var record map[string]any
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &record))
	assert.Equal(t, "Welcome email sent to user", record["msg"])
	assert.Equal(t, job.UserID.String(), record["user_id"])
	assert.Equal(t, job.Email, record["email"])
	assert.Equal(t, job.Name, record["name"])
}

func TestWelcomeMailService_Execute_SenderFailure(t *testing.T) {
	sender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewWelcomeMailService(WelcomeMailServiceParams{Sender: sender, Logger: logger})

	ctx := context.Background()
	sendErr := errors.New("smtp unreachable")

	sender.EXPECT().
		SendWelcome(ctx, mock.AnythingOfType("*entity.User")).
		Return(sendErr)

	err := svc.Execute(ctx, welcomeMailJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
}

func TestWelcomeMailService_HandleFinalFailure(t *testing.T) {
	sender := mockSvc.NewMockMailSender(t)
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	svc := NewWelcomeMailService(WelcomeMailServiceParams{Sender: sender, Logger: logger})

	job := welcomeMailJob()
	svc.HandleFinalFailure(context.Background(), job, errors.New("attempts exhausted"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &record))
	assert.Equal(t, "Failed to send welcome email", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, job.UserID.String(), record["user_id"])
	assert.Contains(t, record["error"], "attempts exhausted")
}

func TestWelcomeMailService_SkipsLogOnFailure(t *testing.T) {
	sender := mockSvc.NewMockMailSender(t)
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	svc := NewWelcomeMailService(WelcomeMailServiceParams{Sender: sender, Logger: logger})

	sender.EXPECT().
		SendWelcome(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(errors.New("boom"))

	_ = svc.Execute(context.Background(), welcomeMailJob())

	// The success line is only emitted after the sender succeeds.
	assert.Empty(t, logBuf.Bytes())
}
