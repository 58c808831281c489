package email

import (
	"context"
	"testing"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

func TestNewSenderSelectsProvider(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{"default log", Config{}, "log", false},
		{"log", Config{Provider: "log"}, "log", false},
		{"sendgrid", Config{Provider: "SendGrid", From: "jobs@flexzo.ai", SendGrid: SendGridConfig{Key: "SG.x"}}, "sendgrid", false},
		{"sendgrid missing key", Config{Provider: "sendgrid", From: "jobs@flexzo.ai"}, "", true},
		{"mailgun", Config{Provider: "mailgun", From: "jobs@flexzo.ai", Mailgun: MailgunConfig{Key: "k", Domain: "mg.flexzo.ai"}}, "mailgun", false},
		{"mailgun missing domain", Config{Provider: "mailgun", From: "jobs@flexzo.ai", Mailgun: MailgunConfig{Key: "k"}}, "", true},
		{"unknown", Config{Provider: "pigeon"}, "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := NewSender(c.cfg, logging.NewNop())
			if c.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSender: %v", err)
			}

			var got string
			switch s.(type) {
			case *LogSender:
				got = "log"
			case *SendGridSender:
				got = "sendgrid"
			case *MailgunSender:
				got = "mailgun"
			}
			if got != c.want {
				t.Errorf("sender = %T, want %s", s, c.want)
			}
		})
	}
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(logging.NewNop())

	id, err := s.Send(context.Background(), Message{To: []string{"ops@flexzo.ai"}, Subject: "Contact"})
	if err != nil || id == "" {
		t.Errorf("Send = %q, %v", id, err)
	}

	if _, err := s.Send(context.Background(), Message{Subject: "Contact"}); err == nil {
		t.Error("expected error without recipients")
	}
	if _, err := s.Send(context.Background(), Message{To: []string{"ops@flexzo.ai"}}); err == nil {
		t.Error("expected error without subject")
	}
}
