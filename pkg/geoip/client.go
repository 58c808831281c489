// Package geoip looks up the country of an IP address over an HTTP geolocation API.
package geoip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const (
	defaultURLTemplate  = "https://ipapi.co/{ip}/json/"
	defaultCountryField = "country_code"
)

// ErrNotRoutable is returned for loopback, private and otherwise local addresses
var ErrNotRoutable = errors.New("geoip: address is not publicly routable")

// Config defines the lookup endpoint.
// URLTemplate must contain the "{ip}" placeholder; CountryField is a gjson
// path to the ISO country code in the response body.
type Config struct {
	URLTemplate  string
	CountryField string
	HTTPClient   *retryablehttp.Client
}

// Client resolves IP addresses to ISO 3166-1 alpha-2 country codes
type Client struct {
	urlTemplate  string
	countryField string
	httpClient   *retryablehttp.Client
}

// NewClient builds a lookup client
func NewClient(cfg Config) (*Client, error) {
	tmpl := cfg.URLTemplate
	if tmpl == "" {
		tmpl = defaultURLTemplate
	}
	if !strings.Contains(tmpl, "{ip}") {
		return nil, fmt.Errorf("geoip: url template %q has no {ip} placeholder", tmpl)
	}

	field := cfg.CountryField
	if field == "" {
		field = defaultCountryField
	}

	if cfg.HTTPClient == nil {
		return nil, fmt.Errorf("geoip: http client is required")
	}

	return &Client{urlTemplate: tmpl, countryField: field, httpClient: cfg.HTTPClient}, nil
}

// Country returns the upper-case country code for ip
func (c *Client) Country(ctx context.Context, ip string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return "", fmt.Errorf("geoip: parse %q: %w", ip, err)
	}
	addr = addr.Unmap()
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return "", ErrNotRoutable
	}

	u := strings.ReplaceAll(c.urlTemplate, "{ip}", addr.String())
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("geoip: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geoip: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("geoip: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("geoip: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	country := gjson.GetBytes(body, c.countryField).String()
	if country == "" {
		return "", fmt.Errorf("geoip: no %s in response", c.countryField)
	}

	return strings.ToUpper(country), nil
}
