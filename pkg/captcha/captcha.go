// Package captcha verifies human-verification tokens against a siteverify endpoint
// (reCAPTCHA, hCaptcha and Turnstile share the same protocol).
package captcha

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const defaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// ErrRejected is returned when the provider refuses the token
var ErrRejected = errors.New("captcha: token rejected")

// Config defines the verification endpoint
type Config struct {
	Secret     string
	VerifyURL  string
	HTTPClient *retryablehttp.Client
}

// Verifier checks tokens with the provider
type Verifier struct {
	secret     string
	verifyURL  string
	httpClient *retryablehttp.Client
}

// NewVerifier builds a Verifier
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("captcha: secret is required")
	}
	if cfg.HTTPClient == nil {
		return nil, fmt.Errorf("captcha: http client is required")
	}
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}
	return &Verifier{secret: cfg.Secret, verifyURL: verifyURL, httpClient: cfg.HTTPClient}, nil
}

// Verify reports nil when the provider accepts token
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("captcha: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("captcha: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("captcha: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("captcha: verify error (%d)", resp.StatusCode)
	}

	result := gjson.ParseBytes(body)
	if result.Get("success").Bool() {
		return nil
	}

	codes := make([]string, 0)
	for _, c := range result.Get("error-codes").Array() {
		codes = append(codes, c.String())
	}
	return fmt.Errorf("%w: %s", ErrRejected, strings.Join(codes, ","))
}
