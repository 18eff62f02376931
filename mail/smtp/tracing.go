package smtp

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("github.com/jukai9316/vapor/mail/smtp")
