package adzuna

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	jobdomain "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/adzuna"
)

// HealthcareCategory is the Adzuna category tag for healthcare and nursing postings
const HealthcareCategory = "healthcare-nursing-jobs"

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Provider implements job.DatasetSource using Adzuna API
type Provider struct {
	client searchClient
	query  string
}

// NewProvider builds an Adzuna provider. query narrows the healthcare category; it may be empty.
func NewProvider(client searchClient, query string) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client, query: strings.TrimSpace(query)}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// FetchRaw queries Adzuna for the region's country and maps postings to raw records
func (p *Provider) FetchRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	postings, err := p.client.SearchJobs(ctx, p.query, adzuna.SearchParams{
		Country:  CountryFor(region),
		Category: HealthcareCategory,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.RawRecord, 0, len(postings))
	for _, j := range postings {
		out = append(out, toRawRecord(region, j))
	}
	return out, nil
}

// CountryFor maps a region onto Adzuna's country path segment
func CountryFor(region domain.Region) string {
	return strings.ToLower(region.Country())
}

func toRawRecord(region domain.Region, j adzuna.Job) domain.RawRecord {
	rec := domain.RawRecord{
		ID:           "adzuna-" + j.ID,
		Title:        j.Title,
		Organisation: j.CompanyName,
		Specialism:   optional(j.Category),
		ShiftPattern: optional(contractTimeLabel(j.ContractTime)),
		Rate:         optional(formatSalary(region, j.SalaryMin, j.SalaryMax)),
		Description:  optional(strings.TrimSpace(j.Description)),
		Region:       optional(areaLabel(j)),
	}
	if !j.PostedAt.IsZero() {
		rec.StartDate = optional(j.PostedAt.Format("2006-01-02"))
	}
	return rec
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func contractTimeLabel(v string) string {
	switch strings.ToLower(v) {
	case "full_time":
		return "Full time"
	case "part_time":
		return "Part time"
	default:
		return ""
	}
}

// areaLabel picks the second Adzuna area level (county/state), falling back to the display name
func areaLabel(j adzuna.Job) string {
	if len(j.Area) > 1 {
		return j.Area[1]
	}
	return j.Location
}

func formatSalary(region domain.Region, lo, hi float64) string {
	if lo <= 0 && hi <= 0 {
		return ""
	}

	symbol, tag := "£", language.BritishEnglish
	if region == domain.RegionUS {
		symbol, tag = "$", language.AmericanEnglish
	}
	p := message.NewPrinter(tag)

	amount := func(v float64) string {
		return symbol + p.Sprintf("%d", int64(math.Round(v)))
	}

	switch {
	case lo <= 0:
		return amount(hi)
	case hi <= lo:
		return amount(lo)
	default:
		return amount(lo) + " - " + amount(hi)
	}
}

var _ jobdomain.DatasetSource = (*Provider)(nil)
