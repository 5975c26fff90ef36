package service

import (
	"context"
)

// WelcomeMailEvent is the immutable snapshot a welcome mail job executes
// against. Jobs never re-read the user record; the snapshot fully describes
// the work.
type WelcomeMailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// EventPublisher enqueues welcome mail events for asynchronous processing.
// Publishing must not block the request path beyond handing the event to the
// queue.
type EventPublisher interface {
	// PublishWelcomeMail publishes a welcome mail event for async processing.
	PublishWelcomeMail(ctx context.Context, event *WelcomeMailEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
