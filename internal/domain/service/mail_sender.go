package service

import (
	"context"

	"passage/internal/domain/entity"
)

// MailSender performs the welcome mail side effect. The current
// implementation only simulates delivery; a real provider integration slots
// in behind this interface without touching the job contract.
type MailSender interface {
	// SendWelcome delivers the welcome mail for the given user. It must
	// honor ctx cancellation so an attempt can be aborted at its timeout.
	SendWelcome(ctx context.Context, user *entity.User) error
}
