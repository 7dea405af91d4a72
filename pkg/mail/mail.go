// Package mail sends transactional email through an external provider.
package mail

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when provider credentials are missing.
var ErrNotConfigured = errors.New("mail: provider not configured")

// Notification is a single outbound message.
type Notification struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Result is the provider's synchronous acknowledgment.
type Result struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Sender delivers a Notification. Implementations make exactly one delivery
// attempt per call.
type Sender interface {
	Send(ctx context.Context, n Notification) (*Result, error)
}
