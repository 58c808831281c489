package adzuna

import (
	"net/http"
	"time"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	Country    string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// SearchParams describe a job search request.
// Country overrides the client's default country (e.g. "gb", "us").
// Category is an Adzuna category tag such as "healthcare-nursing-jobs".
type SearchParams struct {
	Country  string
	Location string
	Category string
	Page     int
}

type jobSearchResponse struct {
	Count   int          `json:"count"`
	Results []jobPosting `json:"results"`
	Mean    float64      `json:"mean"`
}

type jobPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      companySummary  `json:"company"`
	Location     locationSummary `json:"location"`
	Description  string          `json:"description"`
	Created      string          `json:"created"`
	RedirectURL  string          `json:"redirect_url"`
	ContractTime string          `json:"contract_time"`
	ContractType string          `json:"contract_type"`
	Category     struct {
		Label string `json:"label"`
		Tag   string `json:"tag"`
	} `json:"category"`
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`
}

type companySummary struct {
	DisplayName string `json:"display_name"`
}

type locationSummary struct {
	DisplayName string   `json:"display_name"`
	Area        []string `json:"area"`
}

// Job represents a normalized Adzuna job posting.
type Job struct {
	ID           string
	Title        string
	CompanyName  string
	Location     string
	Area         []string
	URL          string
	Description  string
	Category     string
	ContractTime string
	ContractType string
	PostedAt     time.Time
	SalaryMin    float64
	SalaryMax    float64
}
