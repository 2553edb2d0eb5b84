package notification

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a copy of a notification by email.
type Mailer interface {
	Send(toEmail, toName, subject, body string) error
}

type sendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridMailer builds a Mailer backed by the SendGrid v3 API.
func NewSendGridMailer(apiKey, fromEmail, fromName string) Mailer {
	return &sendGridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *sendGridMailer) Send(toEmail, toName, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send email via sendgrid failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

type noopMailer struct{}

// NewNoopMailer returns a Mailer that drops everything. Used when no
// SendGrid API key is configured, so in-app notifications still work.
func NewNoopMailer() Mailer {
	return noopMailer{}
}

func (noopMailer) Send(toEmail, toName, subject, body string) error {
	return nil
}
