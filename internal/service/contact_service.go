package service

import (
	"context"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/pkg/mail"
)

// ContactService relays contact form submissions to the site owners.
type ContactService interface {
	// Submit composes the notification email for a validated submission and
	// hands it to the mail provider. It makes exactly one delivery attempt and
	// returns the provider's acknowledgment.
	Submit(ctx context.Context, sub model.ContactSubmission) (*mail.Result, error)
}
