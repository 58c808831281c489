package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.adzuna.com"
	defaultCountry  = "gb"
	defaultPageSize = 50
)

// NewClient instantiates an Adzuna API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required")
	}

	country := cfg.Country
	if country == "" {
		country = defaultCountry
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		country:    strings.ToLower(country),
		baseURL:    baseURL,
		httpClient: httpClient,
		pageSize:   pageSize,
	}, nil
}

// SearchJobs queries Adzuna with keyword/location/category filters.
// Postings are returned in the order Adzuna ranks them.
func (c *Client) SearchJobs(ctx context.Context, query string, params SearchParams) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("adzuna: client is nil")
	}

	u, err := c.buildSearchURL(query, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("adzuna: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload jobSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("adzuna: decode response: %w", err)
	}

	jobs := make([]Job, 0, len(payload.Results))
	for _, posting := range payload.Results {
		if posting.ID == "" {
			continue
		}
		jobs = append(jobs, mapPosting(posting))
	}

	return jobs, nil
}

func (c *Client) buildSearchURL(query string, params SearchParams) (string, error) {
	if query == "" && params.Category == "" {
		return "", fmt.Errorf("adzuna: query or category is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("adzuna: parse base url: %w", err)
	}

	country := c.country
	if params.Country != "" {
		country = strings.ToLower(params.Country)
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}

	u.Path = path.Join(u.Path, "v1", "api", "jobs", country, "search", fmt.Sprint(page))

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("results_per_page", fmt.Sprint(c.pageSize))
	values.Set("content-type", "application/json")

	if query != "" {
		values.Set("what", query)
	}
	if params.Location != "" {
		values.Set("where", params.Location)
	}
	if params.Category != "" {
		values.Set("category", params.Category)
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func mapPosting(posting jobPosting) Job {
	job := Job{
		ID:           posting.ID,
		Title:        strings.TrimSpace(posting.Title),
		CompanyName:  strings.TrimSpace(posting.Company.DisplayName),
		Location:     posting.Location.DisplayName,
		Area:         posting.Location.Area,
		URL:          posting.RedirectURL,
		Description:  posting.Description,
		Category:     posting.Category.Label,
		ContractTime: posting.ContractTime,
		ContractType: posting.ContractType,
		SalaryMin:    posting.SalaryMin,
		SalaryMax:    posting.SalaryMax,
	}

	if posting.Created != "" {
		if ts, err := time.Parse(time.RFC3339, posting.Created); err == nil {
			job.PostedAt = ts
		}
	}

	return job
}
