// Package unimplemented provides a null-object mail.Mailer that always
// fails, so an application without mail configuration fails loudly at send
// time instead of forcing every caller to nil-check a mailer reference.
package unimplemented

import (
	"context"

	"github.com/jukai9316/vapor/mail"
)

var _ mail.Mailer = (*Mailer)(nil)

// errNotConfigured is shared by every call so the diagnostic stays stable.
var errNotConfigured = &mail.UsageError{
	Identifier: "unimplemented",
	Reason:     "mailer has not been set up yet",
	PossibleCauses: []string{
		"the application was started without mail configuration",
		"the configured mailer was never registered and this placeholder was handed out instead",
	},
	SuggestedFixes: []string{
		"configure a real mailer, such as an SMTP mailer with provider credentials",
		"use smtp.SendGrid, smtp.Gmail, or smtp.Mailgun for well-known providers",
	},
}

// Mailer always fails with a structured diagnostic. It is stateless and
// never performs network I/O.
type Mailer struct{}

// NewMailer creates a new unconfigured Mailer.
func NewMailer() *Mailer {
	return &Mailer{}
}

// Send always fails; no delivery is ever attempted.
func (m *Mailer) Send(ctx context.Context, email mail.Email) error {
	return errNotConfigured
}

// SendBatch applies the default per-element policy, which fails on the first
// element.
func (m *Mailer) SendBatch(ctx context.Context, emails []mail.Email) error {
	return mail.SendEach(ctx, m, emails)
}
