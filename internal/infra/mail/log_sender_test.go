package mail

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"passage/config"
	"passage/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSender(latency time.Duration) *logSender {
	return &logSender{
		latency: latency,
		logger:  slog.Default(),
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Name:  "Test User",
	}
}

func TestLogSender_SendWelcome(t *testing.T) {
	sender := newTestSender(5 * time.Millisecond)

	err := sender.SendWelcome(context.Background(), testUser())
	assert.NoError(t, err)
}

func TestLogSender_SendWelcomeRespectsCancellation(t *testing.T) {
	sender := newTestSender(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := sender.SendWelcome(ctx, testUser())

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewLogSender_UsesConfiguredLatency(t *testing.T) {
	cfg := &config.Config{
		WelcomeMail: &config.WelcomeMailConfig{SimulatedLatency: 42 * time.Millisecond},
	}

	sender := NewLogSender(LogSenderParams{Config: cfg, Logger: slog.Default()})

	impl, ok := sender.(*logSender)
	assert.True(t, ok)
	assert.Equal(t, 42*time.Millisecond, impl.latency)
}
