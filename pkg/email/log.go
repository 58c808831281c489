package email

import (
	"context"

	"github.com/google/uuid"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// LogSender records messages in the log instead of delivering them
type LogSender struct {
	logger *logging.Logger
}

// NewLogSender builds a LogSender
func NewLogSender(logger *logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) (string, error) {
	if err := validateMessage(msg); err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.logger.Info("email not delivered (log provider)",
		"id", id,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
	)
	return id, nil
}
