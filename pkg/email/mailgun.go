package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// MailgunConfig holds the configuration for Mailgun.
// APIBase selects the region endpoint, e.g. mailgun.APIBaseEU.
type MailgunConfig struct {
	Key     string
	Domain  string
	APIBase string
}

// MailgunSender implements Sender for Mailgun
type MailgunSender struct {
	mg     *mailgun.MailgunImpl
	from   string
	logger *logging.Logger
}

// NewMailgunSender builds a Mailgun sender
func NewMailgunSender(cfg Config, logger *logging.Logger) *MailgunSender {
	mg := mailgun.NewMailgun(cfg.Mailgun.Domain, cfg.Mailgun.Key)
	if cfg.Mailgun.APIBase != "" {
		mg.SetAPIBase(cfg.Mailgun.APIBase)
	}

	from := cfg.From
	if cfg.FromName != "" {
		from = (&mail.Address{Name: cfg.FromName, Address: cfg.From}).String()
	}

	return &MailgunSender{mg: mg, from: from, logger: logger}
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validateMessage(msg); err != nil {
		return "", err
	}

	m := s.mg.NewMessage(s.from, msg.Subject, msg.Text, msg.To...)
	if msg.HTML != "" {
		m.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		m.SetReplyTo(msg.ReplyTo)
	}

	_, id, err := s.mg.Send(ctx, m)
	if err != nil {
		return "", fmt.Errorf("mailgun: send: %w", err)
	}

	s.logger.Debug("email sent", "provider", ProviderMailgun, "id", id, "subject", msg.Subject)
	return id, nil
}

func validateMailgunConfig(cfg Config) error {
	if cfg.Mailgun.Key == "" || cfg.Mailgun.Domain == "" || cfg.From == "" {
		return errors.New("email: invalid Mailgun configuration")
	}
	return nil
}
