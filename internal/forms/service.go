package forms

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/email"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// CaptchaVerifier checks a human-verification token with its provider
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// Recorder keeps a copy of accepted submissions, e.g. in a spreadsheet
type Recorder interface {
	Record(ctx context.Context, s Submission) error
}

// Submission is an accepted form on its way to the team
type Submission struct {
	Reference   string
	Kind        Kind
	Region      domain.Region
	SubmittedAt time.Time
	Form        Form
}

// Receipt confirms delivery
type Receipt struct {
	Reference string
	MessageID string
}

// Option configures Service
type Option func(*Service)

// WithVerifier enables provider-side CAPTCHA verification
func WithVerifier(v CaptchaVerifier) Option {
	return func(s *Service) {
		s.verifier = v
	}
}

// WithRecorder keeps a copy of every delivered submission
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithLogger sets the service logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithBreakerSettings overrides the delivery circuit breaker
func WithBreakerSettings(st gobreaker.Settings) Option {
	return func(s *Service) {
		s.breaker = gobreaker.NewCircuitBreaker(st)
	}
}

// Service validates submissions and forwards them by email
type Service struct {
	sender   email.Sender
	to       []string
	verifier CaptchaVerifier
	recorder Recorder
	breaker  *gobreaker.CircuitBreaker
	logger   *logging.Logger
	clock    func() time.Time
}

// NewService builds a Service delivering to the team inbox at to
func NewService(sender email.Sender, to []string, opts ...Option) (*Service, error) {
	if sender == nil {
		return nil, fmt.Errorf("forms: email sender is required")
	}
	if len(to) == 0 {
		return nil, fmt.Errorf("forms: at least one recipient is required")
	}

	s := &Service{
		sender:  sender,
		to:      append([]string(nil), to...),
		breaker: gobreaker.NewCircuitBreaker(DefaultBreakerSettings()),
		logger:  logging.NewNop(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DefaultBreakerSettings trips after five consecutive delivery failures
func DefaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "email",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// Submit validates form, checks its CAPTCHA token and delivers it.
// On ErrDeliveryFailed the caller should offer a retry, never a success page.
func (s *Service) Submit(ctx context.Context, region domain.Region, form Form, remoteIP string) (Receipt, error) {
	if err := Validate(form); err != nil {
		return Receipt{}, err
	}

	token := strings.TrimSpace(form.Captcha())
	if token == "" {
		return Receipt{}, ErrCaptchaRequired
	}
	if s.verifier != nil {
		if err := s.verifier.Verify(ctx, token, remoteIP); err != nil {
			s.logger.Warn("captcha verification failed", "kind", form.Kind(), "err", err)
			return Receipt{}, fmt.Errorf("%w: %v", ErrCaptchaRejected, err)
		}
	}

	sub := Submission{
		Reference:   uuid.NewString(),
		Kind:        form.Kind(),
		Region:      region,
		SubmittedAt: s.clock().UTC(),
		Form:        form,
	}

	res, err := s.breaker.Execute(func() (any, error) {
		return s.sender.Send(ctx, s.message(sub))
	})
	if err != nil {
		s.logger.Error("form delivery failed",
			"kind", sub.Kind,
			"region", region,
			"reference", sub.Reference,
			"breaker", s.breaker.State().String(),
			"err", err,
		)
		return Receipt{}, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, sub); err != nil {
			s.logger.Warn("submission not recorded", "reference", sub.Reference, "err", err)
		}
	}

	s.logger.Info("form delivered", "kind", sub.Kind, "region", region, "reference", sub.Reference)
	return Receipt{Reference: sub.Reference, MessageID: res.(string)}, nil
}

// IsRetryable reports whether err leaves the form for the visitor to resubmit as-is
func IsRetryable(err error) bool {
	return errors.Is(err, ErrDeliveryFailed)
}

func (s *Service) message(sub Submission) email.Message {
	var text, body strings.Builder

	fmt.Fprintf(&text, "Reference: %s\nRegion: %s\nSubmitted: %s\n\n", sub.Reference, sub.Region, sub.SubmittedAt.Format(time.RFC3339))
	fmt.Fprintf(&body, "<p><strong>Reference:</strong> %s<br><strong>Region:</strong> %s</p><table>", sub.Reference, sub.Region)

	for _, l := range sub.Form.Lines() {
		if l.Value == "" {
			continue
		}
		fmt.Fprintf(&text, "%s: %s\n", l.Label, l.Value)
		fmt.Fprintf(&body, "<tr><th align=\"left\">%s</th><td>%s</td></tr>", html.EscapeString(l.Label), html.EscapeString(l.Value))
	}
	body.WriteString("</table>")

	return email.Message{
		To:      s.to,
		ReplyTo: sub.Form.ReplyTo(),
		Subject: fmt.Sprintf("[%s] %s", strings.ToUpper(string(sub.Region)), sub.Form.Subject()),
		Text:    text.String(),
		HTML:    body.String(),
	}
}
