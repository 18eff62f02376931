package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"

	"github.com/pkg/errors"

	"github.com/jukai9316/vapor/mail"
)

// Client is one SMTP session. A Client is created per mailer call, owns its
// connection for the duration of that call, and is discarded afterward.
// Close must be called on every path once dialing succeeded.
type Client interface {
	// Send delivers each email over this session, authenticating with creds
	// before the first message when credentials are non-empty.
	Send(creds mail.Credentials, emails ...mail.Email) error
	io.Closer
}

// Dialer opens a Client bound to cfg.
type Dialer func(ctx context.Context, cfg Config) (Client, error)

// Dial is the default Dialer, backed by net/smtp.
func Dial(ctx context.Context, cfg Config) (Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var (
		conn net.Conn
		err  error
	)
	if cfg.Security == SecurityTLS {
		d := tls.Dialer{Config: cfg.tlsConfig()}
		conn, err = d.DialContext(ctx, "tcp", addr)
	} else {
		var d net.Dialer
		conn, err = d.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", addr)
	}

	c, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to open SMTP session")
	}

	if cfg.Security == SecurityStartTLS {
		if err := c.StartTLS(cfg.tlsConfig()); err != nil {
			_ = c.Close()
			return nil, errors.Wrap(err, "failed to start TLS")
		}
	}

	return &client{smtp: c, host: cfg.Host}, nil
}

// client drives one net/smtp session.
type client struct {
	smtp   *smtp.Client
	host   string
	authed bool
}

func (c *client) Send(creds mail.Credentials, emails ...mail.Email) error {
	if creds.Username != "" && !c.authed {
		auth := smtp.PlainAuth("", creds.Username, creds.Password, c.host)
		if err := c.smtp.Auth(auth); err != nil {
			return errors.Wrap(err, "failed to authenticate")
		}
		c.authed = true
	}

	for _, email := range emails {
		if err := c.submit(email); err != nil {
			return err
		}
	}
	return nil
}

// submit runs one MAIL/RCPT/DATA exchange on the session.
func (c *client) submit(email mail.Email) error {
	from := email.From.Address
	if from == "" {
		return errors.New("no from address specified")
	}

	recipients := recipientAddresses(email)
	if len(recipients) == 0 {
		return errors.New("no recipients specified")
	}

	if err := c.smtp.Mail(from); err != nil {
		return errors.Wrap(err, "failed to set sender")
	}
	for _, addr := range recipients {
		if err := c.smtp.Rcpt(addr); err != nil {
			return errors.Wrapf(err, "failed to set recipient: %s", addr)
		}
	}

	writer, err := c.smtp.Data()
	if err != nil {
		return errors.Wrap(err, "failed to get data writer")
	}
	if _, err := writer.Write(buildMessage(email)); err != nil {
		_ = writer.Close()
		return errors.Wrap(err, "failed to write message")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finish message")
	}

	return nil
}

// Close ends the session with QUIT, dropping the connection when the server
// does not acknowledge.
func (c *client) Close() error {
	if err := c.smtp.Quit(); err != nil {
		return c.smtp.Close()
	}
	return nil
}

func recipientAddresses(email mail.Email) []string {
	var result []string
	for _, group := range [][]mail.Address{email.To, email.Cc, email.Bcc} {
		for _, addr := range group {
			result = append(result, addr.Address)
		}
	}
	return result
}
