package service

import (
	"context"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
)

// ContactNotifier hands a submitted contact off for out-of-band notification.
// Callers fire it asynchronously and must treat failures as non-fatal: a
// submission is complete once persisted, whether or not anyone gets notified.
type ContactNotifier interface {
	NotifySubmitted(ctx context.Context, c *contact.Contact) error
}

// Mailer delivers the owner-facing notification email. Implemented over SMTP;
// consumed by the notification worker.
type Mailer interface {
	SendContactNotification(ctx context.Context, c *contact.Contact) error
}
