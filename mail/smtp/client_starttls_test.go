package smtp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jukai9316/vapor/mail"
)

// startStartTLSMiniSMTPServer greets in plaintext and upgrades on STARTTLS.
func startStartTLSMiniSMTPServer(t *testing.T) *miniSMTPServer {
	return serveMiniSMTP(t, plainListener(t), testTLSConfig(t))
}

func TestDial_StartTLSSend(t *testing.T) {
	server := startStartTLSMiniSMTPServer(t)

	cfg := Config{Host: "127.0.0.1", Port: server.port(), Security: SecurityStartTLS, Insecure: true}
	client, err := Dial(context.Background(), cfg)
	require.NoError(t, err)

	email := mail.Email{
		From:    mail.Address{Address: "sender@example.com"},
		To:      []mail.Address{{Address: "recipient@example.com"}},
		Subject: "Upgraded",
		Body:    "after STARTTLS",
	}
	require.NoError(t, client.Send(mail.Credentials{Username: "user", Password: "pass"}, email))
	require.NoError(t, client.Close())

	assert.True(t, server.wasUpgraded(), "session must have been upgraded before the exchange")

	messages, auths := server.collected()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Subject: Upgraded")
	require.Len(t, auths, 1)
}

func TestDial_StartTLSRefused(t *testing.T) {
	// Plain server answers 500 to STARTTLS; Dial must fail and release the
	// connection without handing out a client.
	server := startMiniSMTPServer(t)

	cfg := Config{Host: "127.0.0.1", Port: server.port(), Security: SecurityStartTLS, Insecure: true}
	client, err := Dial(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to start TLS")

	messages, _ := server.collected()
	assert.Empty(t, messages)
}
