package smtp_test

import (
	"context"
	"log"

	"github.com/jukai9316/vapor/mail"
	"github.com/jukai9316/vapor/mail/smtp"
)

func Example() {
	mailer := smtp.SendGrid(mail.Credentials{
		Username: "apikey",
		Password: "SG.xxxxxxxx",
	}, nil)

	email := mail.Email{
		From:    mail.Address{Name: "App", Address: "no-reply@example.com"},
		To:      []mail.Address{{Address: "user@example.com"}},
		Subject: "Welcome",
		Body:    "Thanks for signing up.",
	}

	if err := mailer.Send(context.Background(), email); err != nil {
		log.Printf("delivery not confirmed: %v", err)
	}
}

func Example_batch() {
	cfg := smtp.Config{
		Host:     "smtp.example.com",
		Port:     587,
		Security: smtp.SecurityStartTLS,
	}
	mailer := smtp.NewMailer(cfg, mail.Credentials{Username: "a", Password: "b"}, nil)

	batch := []mail.Email{
		{From: mail.Address{Address: "no-reply@example.com"}, To: []mail.Address{{Address: "one@example.com"}}, Subject: "Hi"},
		{From: mail.Address{Address: "no-reply@example.com"}, To: []mail.Address{{Address: "two@example.com"}}, Subject: "Hi"},
	}

	// The whole batch shares one SMTP session.
	if err := mailer.SendBatch(context.Background(), batch); err != nil {
		log.Printf("delivery not confirmed: %v", err)
	}
}
