package noop

import (
	"context"

	"github.com/jukai9316/vapor/mail"
)

var _ mail.Mailer = (*Mailer)(nil)

// Mailer is a no-op mail.Mailer for tests and local development.
type Mailer struct{}

// NewMailer creates a new no-op Mailer.
func NewMailer() *Mailer {
	return &Mailer{}
}

// Send silently discards the email.
func (m *Mailer) Send(ctx context.Context, email mail.Email) error {
	_ = email // Discard
	return nil
}

// SendBatch applies the default per-element policy, discarding everything.
func (m *Mailer) SendBatch(ctx context.Context, emails []mail.Email) error {
	return mail.SendEach(ctx, m, emails)
}
