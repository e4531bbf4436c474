package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agendahub/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService returns an EmailService backed by the given Mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

// SendEventCreated sends a short confirmation for a newly created event.
func (s *emailService) SendEventCreated(ctx context.Context, to string, event *domain.AgendaEvent) error {
	if event == nil {
		return fmt.Errorf("event is nil")
	}
	subject := fmt.Sprintf("Event scheduled: %s", event.Name)
	text := eventCreatedText(event)
	html := "<pre>" + text + "</pre>"
	if err := s.mailer.Send(to, subject, html, text); err != nil {
		return fmt.Errorf("send event confirmation: %w", err)
	}
	return nil
}

func eventCreatedText(event *domain.AgendaEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q has been added to the agenda.\n", event.Name)
	fmt.Fprintf(&b, "Starts: %s\n", event.StartTime.Format(time.RFC1123))
	if event.EndTime != nil {
		fmt.Fprintf(&b, "Ends: %s\n", event.EndTime.Format(time.RFC1123))
	}
	if event.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", event.Category.Name)
	}
	return b.String()
}
