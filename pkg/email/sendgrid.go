package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// SendGridConfig holds the configuration for SendGrid
type SendGridConfig struct {
	Key string
}

// SendGridSender implements Sender for SendGrid
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
	logger *logging.Logger
}

// NewSendGridSender builds a SendGrid sender
func NewSendGridSender(cfg Config, logger *logging.Logger) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(cfg.SendGrid.Key),
		from:   mail.NewEmail(cfg.FromName, cfg.From),
		logger: logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validateMessage(msg); err != nil {
		return "", err
	}

	m := mail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}
	if msg.Text != "" {
		m.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return "", fmt.Errorf("sendgrid: send: %w", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("sendgrid: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}

	var id string
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}
	s.logger.Debug("email sent", "provider", ProviderSendGrid, "id", id, "subject", msg.Subject)
	return id, nil
}

func validateSendGridConfig(cfg Config) error {
	if cfg.SendGrid.Key == "" || cfg.From == "" {
		return errors.New("email: invalid SendGrid configuration")
	}
	return nil
}
