package smtp

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jukai9316/vapor/mail"
)

// buildMessage renders the raw RFC 822 message.
func buildMessage(email mail.Email) []byte {
	var msg strings.Builder

	// Headers
	msg.WriteString(fmt.Sprintf("From: %s\r\n", formatAddress(email.From)))

	if len(email.To) > 0 {
		msg.WriteString(fmt.Sprintf("To: %s\r\n", formatAddressList(email.To)))
	}

	if len(email.Cc) > 0 {
		msg.WriteString(fmt.Sprintf("Cc: %s\r\n", formatAddressList(email.Cc)))
	}

	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	msg.WriteString(fmt.Sprintf("Message-ID: <%s@%s>\r\n", uuid.NewString(), messageIDHost(email.From)))

	// Add custom headers
	for k, v := range email.Headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}

	// Build body
	if email.HTML != "" {
		boundary := fmt.Sprintf("boundary_%s", uuid.NewString())
		msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%s\r\n", boundary))
		msg.WriteString("\r\n")

		// Plain text part
		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		msg.WriteString(email.Body)
		msg.WriteString("\r\n")

		// HTML part
		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		msg.WriteString(email.HTML)
		msg.WriteString("\r\n")

		msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		msg.WriteString(email.Body)
		msg.WriteString("\r\n")
	}

	return []byte(msg.String())
}

// formatAddress formats a single address. Display names containing RFC 5322
// specials become a quoted-string; plain names stay bare.
func formatAddress(addr mail.Address) string {
	if addr.Name != "" {
		name := addr.Name
		if strings.ContainsAny(name, `()<>[]:;@\,."`) {
			name = `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name) + `"`
		}
		return fmt.Sprintf("%s <%s>", name, addr.Address)
	}
	return addr.Address
}

// formatAddressList formats a list of addresses.
func formatAddressList(addrs []mail.Address) string {
	formatted := make([]string, len(addrs))
	for i, addr := range addrs {
		formatted[i] = formatAddress(addr)
	}
	return strings.Join(formatted, ", ")
}

// messageIDHost picks the domain for the Message-ID header.
func messageIDHost(from mail.Address) string {
	if i := strings.LastIndex(from.Address, "@"); i >= 0 && i < len(from.Address)-1 {
		return from.Address[i+1:]
	}
	return "localhost"
}
