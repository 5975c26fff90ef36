package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"passage/internal/domain/service"
	"passage/internal/infra/queue"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMailUsecase records executions and terminal failures for assertions.
type stubMailUsecase struct {
	mu        sync.Mutex
	executed  []*usecase.WelcomeMailJob
	failed    []*usecase.WelcomeMailJob
	executeFn func(ctx context.Context, job *usecase.WelcomeMailJob) error
}

func (s *stubMailUsecase) Execute(ctx context.Context, job *usecase.WelcomeMailJob) error {
	s.mu.Lock()
	s.executed = append(s.executed, job)
	s.mu.Unlock()

	if s.executeFn != nil {
		return s.executeFn(ctx, job)
	}

	return nil
}

func (s *stubMailUsecase) HandleFinalFailure(_ context.Context, job *usecase.WelcomeMailJob, _ error) {
	s.mu.Lock()
	s.failed = append(s.failed, job)
	s.mu.Unlock()
}

func testEvent() *service.WelcomeMailEvent {
	return &service.WelcomeMailEvent{
		RequestID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Email:     "new@example.com",
		Name:      "New User",
	}
}

func drainPolicy() queue.Policy {
	return queue.Policy{MaxAttempts: 3, Timeout: time.Second, Workers: 1, QueueSize: 4}
}

func TestMemoryPublisher_DeliversJob(t *testing.T) {
	stub := &stubMailUsecase{}
	publisher := NewMemoryPublisher(drainPolicy(), stub, slog.Default())

	event := testEvent()
	require.NoError(t, publisher.PublishWelcomeMail(context.Background(), event))
	require.NoError(t, publisher.Close())

	stub.mu.Lock()
	defer stub.mu.Unlock()
	require.Len(t, stub.executed, 1)
	assert.Equal(t, event.UserID, stub.executed[0].UserID.String())
	assert.Equal(t, event.Email, stub.executed[0].Email)
	assert.Equal(t, event.Name, stub.executed[0].Name)
	assert.Empty(t, stub.failed)
}

func TestMemoryPublisher_ExhaustedAttemptsReachTerminalHandler(t *testing.T) {
	stub := &stubMailUsecase{
		executeFn: func(_ context.Context, _ *usecase.WelcomeMailJob) error {
			return errors.New("smtp unavailable")
		},
	}
	publisher := NewMemoryPublisher(drainPolicy(), stub, slog.Default())

	require.NoError(t, publisher.PublishWelcomeMail(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Len(t, stub.executed, 3)
	assert.Len(t, stub.failed, 1)
}

func TestMemoryPublisher_MalformedUserIDNeverExecutes(t *testing.T) {
	stub := &stubMailUsecase{}
	publisher := NewMemoryPublisher(drainPolicy(), stub, slog.Default())

	event := testEvent()
	event.UserID = "not-a-uuid"
	require.NoError(t, publisher.PublishWelcomeMail(context.Background(), event))
	require.NoError(t, publisher.Close())

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Empty(t, stub.executed)
	assert.Empty(t, stub.failed, "malformed events are dropped, not surfaced as failures")
}
