package smtp

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jukai9316/vapor/mail"
)

var _ mail.Mailer = (*Mailer)(nil)

// Mailer implements mail.Mailer over SMTP. Every call dials a fresh session
// and releases it before returning; no connection is retained between calls,
// so a single Mailer is safe for concurrent use.
type Mailer struct {
	cfg   Config
	creds mail.Credentials
	dial  Dialer
	log   *slog.Logger
}

// MailerOptions contains options for creating a Mailer.
type MailerOptions struct {
	// Dialer overrides how transport sessions are opened. Defaults to Dial.
	Dialer Dialer
	// Logger receives a debug line per delivery and an error line per
	// failure. Defaults to silent.
	Logger *slog.Logger
}

// NewMailer creates a new SMTP Mailer. It performs no I/O; cfg and creds are
// stored verbatim and validated, if at all, by the transport at send time.
func NewMailer(cfg Config, creds mail.Credentials, options *MailerOptions) *Mailer {
	m := &Mailer{
		cfg:   cfg,
		creds: creds,
		dial:  Dial,
	}
	if options != nil {
		if options.Dialer != nil {
			m.dial = options.Dialer
		}
		m.log = options.Logger
	}
	return m
}

// Send delivers one email over a fresh session.
func (m *Mailer) Send(ctx context.Context, email mail.Email) error {
	return m.deliver(ctx, "SMTP.Send", []mail.Email{email})
}

// SendBatch delivers the whole batch over one shared session. Partial-batch
// failure semantics are the transport's; this layer issues exactly one call.
func (m *Mailer) SendBatch(ctx context.Context, emails []mail.Email) error {
	if len(emails) == 0 {
		return nil
	}
	return m.deliver(ctx, "SMTP.SendBatch", emails)
}

// deliver dials, forwards, and propagates transport errors unmodified.
func (m *Mailer) deliver(ctx context.Context, op string, emails []mail.Email) error {
	ctx, span := tracer.Start(ctx, op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("smtp.host", m.cfg.Host),
		attribute.Int("smtp.port", m.cfg.Port),
		attribute.String("smtp.security", string(m.cfg.Security)),
		attribute.Int("smtp.message_count", len(emails)),
	)

	client, err := m.dial(ctx, m.cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to connect")
		m.logErr(ctx, "smtp connect failed", err)
		return err
	}
	defer func() {
		// The session is scoped to this call. A close failure after the
		// exchange finished is not actionable for the caller.
		_ = client.Close()
	}()

	if err := client.Send(m.creds, emails...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logErr(ctx, "smtp send failed", err)
		return err
	}

	span.SetStatus(codes.Ok, "")
	if m.log != nil {
		m.log.DebugContext(ctx, "smtp send ok",
			slog.String("host", m.cfg.Host),
			slog.Int("messages", len(emails)),
		)
	}
	return nil
}

func (m *Mailer) logErr(ctx context.Context, msg string, err error) {
	if m.log == nil {
		return
	}
	m.log.ErrorContext(ctx, msg,
		slog.String("host", m.cfg.Host),
		slog.String("error", err.Error()),
	)
}
