package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailService defines the contract for sending domain-level emails.
// Sending is best-effort: callers log failures and never surface them to
// the API client.
type EmailService interface {
	SendEventCreated(ctx context.Context, to string, event *AgendaEvent) error
}
