package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	jobdomain "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

const maxDocumentBytes = 16 << 20

// Provider fetches regional dataset documents from <baseURL>/<region>.json
type Provider struct {
	baseURL string
	client  *retryablehttp.Client
}

// NewProvider builds a remote provider
func NewProvider(baseURL string, client *retryablehttp.Client) (*Provider, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("remote provider: base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("remote provider: parse base url: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("remote provider: http client is required")
	}
	return &Provider{baseURL: baseURL, client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "remote"
}

// FetchRaw downloads and decodes the region's document
func (p *Provider) FetchRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error) {
	u := p.baseURL + "/" + url.PathEscape(string(region)) + ".json"

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("remote provider: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote provider: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("remote provider: %s returned %d: %s", u, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("remote provider: read body: %w", err)
	}

	return jobdomain.DecodeDocument(data)
}

var _ jobdomain.DatasetSource = (*Provider)(nil)
