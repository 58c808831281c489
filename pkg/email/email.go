// Package email sends transactional messages through a configured provider.
package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

const (
	ProviderSendGrid = "sendgrid"
	ProviderMailgun  = "mailgun"
	ProviderLog      = "log"
)

// Message is one outbound email
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers messages and returns the provider's message id
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Config selects and configures a provider
type Config struct {
	Provider string
	From     string
	FromName string
	SendGrid SendGridConfig
	Mailgun  MailgunConfig
}

// NewSender returns the Sender named by cfg.Provider.
// An empty provider selects the log sender.
func NewSender(cfg Config, logger *logging.Logger) (Sender, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderSendGrid:
		if err := validateSendGridConfig(cfg); err != nil {
			return nil, err
		}
		return NewSendGridSender(cfg, logger), nil
	case ProviderMailgun:
		if err := validateMailgunConfig(cfg); err != nil {
			return nil, err
		}
		return NewMailgunSender(cfg, logger), nil
	case ProviderLog, "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", cfg.Provider)
	}
}

func validateMessage(msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("email: message has no recipients")
	}
	if msg.Subject == "" {
		return errors.New("email: message has no subject")
	}
	return nil
}
