// Package mail defines the transport-agnostic contract for sending email.
package mail

import "context"

// Mailer is the minimum capability a mail transport must provide.
//
// Send delivers a single email. SendBatch delivers an ordered batch;
// transports without a native batch operation implement it as
// mail.SendEach(ctx, m, emails), while transports that can share one
// session across the batch override it with their own semantics.
type Mailer interface {
	Send(ctx context.Context, email Email) error
	SendBatch(ctx context.Context, emails []Email) error
}

// SendEach is the default batch policy: it delivers emails one at a time,
// in input order, and stops at the first failure, returning that failure.
// The successful prefix is not reported; callers needing stronger
// guarantees must track progress themselves.
func SendEach(ctx context.Context, m Mailer, emails []Email) error {
	for _, email := range emails {
		if err := m.Send(ctx, email); err != nil {
			return err
		}
	}
	return nil
}

// Email represents an email message.
type Email struct {
	// Envelope
	From    Address
	To      []Address
	Cc      []Address
	Bcc     []Address
	Subject string

	// Headers
	Headers map[string]string

	// Body
	Body string // Plain text body
	HTML string // HTML body (optional)
}

// Address represents an email address.
type Address struct {
	Name    string // "John Doe"
	Address string // "john@example.com"
}

// Credentials authenticate against a mail server. They are forwarded to the
// transport on every send and must never be logged.
type Credentials struct {
	Username string // username, email, or API key name
	Password string // password, app password, or API key
}
