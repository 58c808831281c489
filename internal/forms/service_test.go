package forms_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/forms"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/email"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, msg)
	return "msg-1", nil
}

type stubVerifier struct{ err error }

func (v stubVerifier) Verify(context.Context, string, string) error { return v.err }

type memoryRecorder struct {
	subs []forms.Submission
	err  error
}

func (r *memoryRecorder) Record(_ context.Context, s forms.Submission) error {
	r.subs = append(r.subs, s)
	return r.err
}

func validContact() forms.ContactForm {
	return forms.ContactForm{
		Name:         "Priya Shah",
		Email:        "priya@example.nhs.uk",
		Message:      "We need bank nurses for winter pressures.",
		CaptchaToken: "token",
	}
}

func newService(t *testing.T, sender email.Sender, opts ...forms.Option) *forms.Service {
	t.Helper()
	s, err := forms.NewService(sender, []string{"team@flexzo.ai"}, opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return s
}

// ── Happy path ─────────────────────────────────────────────────────────────

func TestSubmit_DeliversAndRecords(t *testing.T) {
	sender := &recordingSender{}
	rec := &memoryRecorder{}
	s := newService(t, sender, forms.WithRecorder(rec), forms.WithClock(func() time.Time {
		return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	}))

	receipt, err := s.Submit(context.Background(), domain.RegionUK, validContact(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if receipt.Reference == "" || receipt.MessageID != "msg-1" {
		t.Errorf("receipt = %+v", receipt)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.ReplyTo != "priya@example.nhs.uk" || msg.To[0] != "team@flexzo.ai" {
		t.Errorf("message routing = to %v reply %q", msg.To, msg.ReplyTo)
	}
	if !strings.HasPrefix(msg.Subject, "[UK] Enquiry from Priya Shah") {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, receipt.Reference) || !strings.Contains(msg.Text, "winter pressures") {
		t.Errorf("text body missing reference or message:\n%s", msg.Text)
	}

	if len(rec.subs) != 1 || rec.subs[0].Reference != receipt.Reference {
		t.Errorf("recorded = %+v", rec.subs)
	}
}

func TestSubmit_RecorderFailureDoesNotFailSubmission(t *testing.T) {
	s := newService(t, &recordingSender{}, forms.WithRecorder(&memoryRecorder{err: errors.New("quota")}))
	if _, err := s.Submit(context.Background(), domain.RegionUS, validContact(), ""); err != nil {
		t.Errorf("Submit: %v", err)
	}
}

// ── Validation and CAPTCHA ─────────────────────────────────────────────────

func TestSubmit_Validation(t *testing.T) {
	sender := &recordingSender{}
	s := newService(t, sender)

	form := validContact()
	form.Email = "not-an-email"
	form.Message = ""

	_, err := s.Submit(context.Background(), domain.RegionUK, form, "")
	if !errors.Is(err, forms.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	var verr *forms.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err is %T, want *ValidationError", err)
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Errorf("fields = %v, want email", verr.Fields)
	}
	if _, ok := verr.Fields["message"]; !ok {
		t.Errorf("fields = %v, want message", verr.Fields)
	}
	if len(sender.sent) != 0 {
		t.Error("invalid form was sent")
	}
}

func TestSubmit_CaptchaGate(t *testing.T) {
	sender := &recordingSender{}

	form := validContact()
	form.CaptchaToken = "  "
	_, err := newService(t, sender).Submit(context.Background(), domain.RegionUK, form, "")
	if !errors.Is(err, forms.ErrCaptchaRequired) {
		t.Errorf("empty token err = %v, want ErrCaptchaRequired", err)
	}

	rejecting := newService(t, sender, forms.WithVerifier(stubVerifier{err: errors.New("timeout-or-duplicate")}))
	_, err = rejecting.Submit(context.Background(), domain.RegionUK, validContact(), "")
	if !errors.Is(err, forms.ErrCaptchaRejected) {
		t.Errorf("rejected token err = %v, want ErrCaptchaRejected", err)
	}

	if len(sender.sent) != 0 {
		t.Error("unverified form was sent")
	}
}

// ── Delivery failure ───────────────────────────────────────────────────────

func TestSubmit_DeliveryFailureIsRetryable(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp 421")}
	rec := &memoryRecorder{}
	s := newService(t, sender, forms.WithRecorder(rec))

	_, err := s.Submit(context.Background(), domain.RegionUK, validContact(), "")
	if !errors.Is(err, forms.ErrDeliveryFailed) || !forms.IsRetryable(err) {
		t.Fatalf("err = %v, want retryable ErrDeliveryFailed", err)
	}
	if len(rec.subs) != 0 {
		t.Error("failed delivery was recorded")
	}

	sender.err = nil
	if _, err := s.Submit(context.Background(), domain.RegionUK, validContact(), ""); err != nil {
		t.Errorf("retry after recovery: %v", err)
	}
}

func TestSubmit_OpenBreakerFailsFast(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	s := newService(t, sender, forms.WithBreakerSettings(gobreaker.Settings{
		Name:    "test",
		Timeout: time.Hour,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 1
		},
	}))

	_, _ = s.Submit(context.Background(), domain.RegionUK, validContact(), "")
	sender.err = nil

	_, err := s.Submit(context.Background(), domain.RegionUK, validContact(), "")
	if !errors.Is(err, gobreaker.ErrOpenState) || !errors.Is(err, forms.ErrDeliveryFailed) {
		t.Errorf("err = %v, want open breaker wrapped in ErrDeliveryFailed", err)
	}
}

// ── Forms ──────────────────────────────────────────────────────────────────

func TestForms_ValidateEachKind(t *testing.T) {
	cases := []struct {
		name    string
		form    forms.Form
		invalid []string
	}{
		{"demo ok", forms.DemoForm{Name: "A", Email: "a@b.co", Organisation: "Trust", WorkforceSize: "51-250"}, nil},
		{"demo bad size", forms.DemoForm{Name: "A", Email: "a@b.co", Organisation: "Trust", WorkforceSize: "lots"}, []string{"workforce_size"}},
		{"demo missing org", forms.DemoForm{Name: "A", Email: "a@b.co"}, []string{"organisation"}},
		{"application ok", forms.ApplicationForm{JobID: "UK-1", Name: "A", Email: "a@b.co", Phone: "07700 900123"}, nil},
		{"application missing phone", forms.ApplicationForm{JobID: "UK-1", Name: "A", Email: "a@b.co"}, []string{"phone"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := forms.Validate(c.form)
			if len(c.invalid) == 0 {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			var verr *forms.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			for _, f := range c.invalid {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("fields = %v, want %s", verr.Fields, f)
				}
			}
		})
	}
}

func TestTrim(t *testing.T) {
	got := forms.Trim(forms.ContactForm{Name: "  Sam ", Email: " sam@example.com"})
	if got.Name != "Sam" || got.Email != "sam@example.com" {
		t.Errorf("Trim = %+v", got)
	}
}
