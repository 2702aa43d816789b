package notification

import (
	"context"
	"log"
)

// EmailSender delivers guest-facing mail. The booking flow only needs
// fire-and-forget delivery; failures are retried by the dispatcher.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DevConsoleMailer writes outgoing mail to the process log instead of an
// SMTP relay. Used in development and tests.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) Send(_ context.Context, to, subject, body string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] to=%s subject=%q\n%s", to, subject, body)
	}
	return nil
}
