package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunConfig holds the Mailgun credentials.
type MailgunConfig struct {
	Domain string
	APIKey string
	// APIBase overrides the default US endpoint when set.
	APIBase string
}

// IsConfigured returns true if Mailgun is configured
func (c MailgunConfig) IsConfigured() bool {
	return c.Domain != "" && c.APIKey != ""
}

// MailgunSender sends emails via Mailgun API.
// This is a thin wrapper around the Mailgun SDK.
type MailgunSender struct {
	cfg     MailgunConfig
	log     *slog.Logger
	client  *mailgun.MailgunImpl
	timeout time.Duration
}

// NewMailgunSender creates a Mailgun sender. An unconfigured sender is still
// returned; every Send on it fails with ErrNotConfigured.
func NewMailgunSender(cfg MailgunConfig, log *slog.Logger) *MailgunSender {
	s := &MailgunSender{
		cfg:     cfg,
		log:     log.With(slog.String("component", "mail.mailgun")),
		timeout: 30 * time.Second,
	}
	if cfg.IsConfigured() {
		s.client = mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
		if cfg.APIBase != "" {
			s.client.SetAPIBase(cfg.APIBase)
		}
	}
	return s
}

// Send sends an email via Mailgun.
func (s *MailgunSender) Send(ctx context.Context, n Notification) (*Result, error) {
	if s.client == nil {
		s.log.Warn("mailgun is not configured, dropping message", slog.String("subject", n.Subject))
		return nil, ErrNotConfigured
	}

	message := s.client.NewMessage(n.From, n.Subject, n.Text, n.To)
	if n.HTML != "" {
		message.SetHtml(n.HTML)
	}
	if n.ReplyTo != "" {
		message.SetReplyTo(n.ReplyTo)
	}

	s.log.Debug("sending email",
		slog.String("to", n.To),
		slog.String("subject", n.Subject))

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, id, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send email",
			slog.String("to", n.To),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("email sent successfully",
		slog.String("to", n.To),
		slog.String("message_id", id))

	return &Result{ID: id, Message: resp}, nil
}
