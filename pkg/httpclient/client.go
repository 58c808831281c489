// Package httpclient builds the retrying HTTP clients shared by outbound integrations.
package httpclient

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

const (
	defaultRetryMax = 3
	defaultTimeout  = 10 * time.Second
)

// Config defines retry and timeout policy
type Config struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
	Logger       *logging.Logger
}

// New returns a retrying client. Logging goes through logger at debug level
// for attempts; a nil logger silences retryablehttp entirely.
func New(cfg Config) *retryablehttp.Client {
	c := retryablehttp.NewClient()

	c.RetryMax = defaultRetryMax
	if cfg.RetryMax > 0 {
		c.RetryMax = cfg.RetryMax
	}
	if cfg.RetryWaitMin > 0 {
		c.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		c.RetryWaitMax = cfg.RetryWaitMax
	}

	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	c.HTTPClient = &http.Client{Timeout: timeout}

	if cfg.Logger != nil {
		c.Logger = retryablehttp.LeveledLogger(cfg.Logger)
	} else {
		c.Logger = nil
	}

	return c
}

// Standard adapts New to a plain *http.Client for libraries that take one
func Standard(cfg Config) *http.Client {
	return New(cfg).StandardClient()
}
