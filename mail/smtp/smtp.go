// Package smtp provides a mail.Mailer backed by the SMTP protocol.
package smtp

import (
	"crypto/tls"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/jukai9316/vapor/mail"
)

// Security selects the encryption posture of the connection.
type Security string

const (
	// SecurityNone connects in plaintext.
	SecurityNone Security = "none"
	// SecurityTLS wraps the whole connection in TLS (SMTPS, typically port 465).
	SecurityTLS Security = "tls"
	// SecurityStartTLS connects in plaintext and upgrades via STARTTLS
	// (submission, typically port 587).
	SecurityStartTLS Security = "starttls"
)

// Config contains SMTP connection parameters.
type Config struct {
	Host     string   `envconfig:"SMTP_HOST" required:"true"`     // smtp.gmail.com
	Port     int      `envconfig:"SMTP_PORT" default:"465"`       // 465 for TLS, 587 for STARTTLS
	Security Security `envconfig:"SMTP_SECURITY" default:"tls"`   // none, tls, starttls
	Insecure bool     `envconfig:"SMTP_INSECURE" default:"false"` // skip certificate verification

	// TLSConfig overrides the TLS parameters used for SecurityTLS and
	// SecurityStartTLS. When nil, a config for Host is derived, honoring
	// Insecure.
	TLSConfig *tls.Config `ignored:"true"`
}

func (c Config) tlsConfig() *tls.Config {
	if c.TLSConfig != nil {
		return c.TLSConfig
	}
	return &tls.Config{
		ServerName:         c.Host,
		InsecureSkipVerify: c.Insecure, // #nosec G402 -- controlled by config, user's responsibility
	}
}

// envCredentials mirrors mail.Credentials for envconfig.
type envCredentials struct {
	Username string `envconfig:"SMTP_USER"`     // username or email
	Password string `envconfig:"SMTP_PASSWORD"` // password or app password
}

const defaultEnvFile = ".env"

// ConfigFromEnv loads connection parameters and credentials from SMTP_*
// environment variables, reading .env first when present.
func ConfigFromEnv() (Config, mail.Credentials, error) {
	// .env file is optional, failure is acceptable
	// nolint:errcheck
	_ = godotenv.Load(defaultEnvFile)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, mail.Credentials{}, errors.Wrap(err, "failed to envconfig.Process")
	}

	var creds envCredentials
	if err := envconfig.Process("", &creds); err != nil {
		return Config{}, mail.Credentials{}, errors.Wrap(err, "failed to envconfig.Process")
	}

	return cfg, mail.Credentials{Username: creds.Username, Password: creds.Password}, nil
}
