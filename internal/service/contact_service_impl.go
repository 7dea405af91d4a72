package service

import (
	"context"
	"fmt"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/pkg/mail"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	sender    mail.Sender
	templates *mail.Templates
	from      string
	to        string
}

// NewContactService creates a ContactService that sends from and to the given
// fixed addresses.
func NewContactService(sender mail.Sender, templates *mail.Templates, from, to string) ContactService {
	return &contactServiceImpl{sender: sender, templates: templates, from: from, to: to}
}

// Submit renders the notification and sends it.
func (s *contactServiceImpl) Submit(ctx context.Context, sub model.ContactSubmission) (*mail.Result, error) {
	n, err := s.compose(sub.Trimmed())
	if err != nil {
		return nil, err
	}
	return s.sender.Send(ctx, n)
}

func (s *contactServiceImpl) compose(sub model.ContactSubmission) (mail.Notification, error) {
	data := map[string]any{
		"name":    sub.Name,
		"email":   sub.Email,
		"message": sub.Message,
	}
	html, err := s.templates.Render("contact.html", data)
	if err != nil {
		return mail.Notification{}, fmt.Errorf("compose contact email: %w", err)
	}
	text, err := s.templates.Render("contact.txt", data)
	if err != nil {
		return mail.Notification{}, fmt.Errorf("compose contact email: %w", err)
	}
	return mail.Notification{
		From:    s.from,
		To:      s.to,
		ReplyTo: sub.Email,
		Subject: "Contact Form: " + sub.Name,
		Text:    text,
		HTML:    html,
	}, nil
}
