package smtp

import "github.com/jukai9316/vapor/mail"

// Well-known provider endpoints, all implicit TLS on port 465.
const (
	sendGridHost = "smtp.sendgrid.net"
	gmailHost    = "smtp.gmail.com"
	mailgunHost  = "smtp.mailgun.org"

	providerPort = 465
)

// SendGrid returns a Mailer preconfigured for SendGrid's SMTP endpoint.
func SendGrid(creds mail.Credentials, options *MailerOptions) *Mailer {
	return NewMailer(providerConfig(sendGridHost), creds, options)
}

// Gmail returns a Mailer preconfigured for Gmail's SMTP endpoint.
func Gmail(creds mail.Credentials, options *MailerOptions) *Mailer {
	return NewMailer(providerConfig(gmailHost), creds, options)
}

// Mailgun returns a Mailer preconfigured for Mailgun's SMTP endpoint.
func Mailgun(creds mail.Credentials, options *MailerOptions) *Mailer {
	return NewMailer(providerConfig(mailgunHost), creds, options)
}

func providerConfig(host string) Config {
	return Config{
		Host:     host,
		Port:     providerPort,
		Security: SecurityTLS,
	}
}
