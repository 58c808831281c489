package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	jobdomain "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

const listSeparator = ";"

// valuesReader describes the subset of the Sheets client used by the provider
type valuesReader interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}

// Provider reads curated jobs from a spreadsheet with one tab per region.
// The first row of each tab is a header naming the job columns.
type Provider struct {
	client        valuesReader
	spreadsheetID string
}

// NewProvider builds a sheets provider
func NewProvider(client valuesReader, spreadsheetID string) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("sheets provider: client is required")
	}
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("sheets provider: spreadsheet id is required")
	}
	return &Provider{client: client, spreadsheetID: spreadsheetID}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "sheets"
}

// TabName is the sheet tab holding region's jobs, e.g. "UK"
func TabName(region domain.Region) string {
	return strings.ToUpper(string(region))
}

// FetchStatic reads the region's tab; rows without an id or title are skipped
func (p *Provider) FetchStatic(ctx context.Context, region domain.Region) ([]domain.Job, error) {
	rows, err := p.client.GetValues(ctx, p.spreadsheetID, TabName(region)+"!A:Z")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Job{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = columnKey(cellString(cell))
	}

	jobs := make([]domain.Job, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for i, cell := range row {
			if i < len(header) && header[i] != "" {
				fields[header[i]] = strings.TrimSpace(cellString(cell))
			}
		}
		if fields["id"] == "" || fields["title"] == "" {
			continue
		}
		jobs = append(jobs, jobFromFields(fields))
	}

	return jobs, nil
}

func jobFromFields(f map[string]string) domain.Job {
	return domain.Job{
		ID:               f["id"],
		Title:            f["title"],
		Organisation:     f["organisation"],
		Location:         orDefault(f["location"], jobdomain.NotSpecified),
		Salary:           orDefault(f["salary"], jobdomain.CompetitiveRate),
		PostedDate:       orDefault(f["posted_date"], domain.OpenDate),
		ClosingDate:      orDefault(f["closing_date"], domain.OpenDate),
		ContractType:     orDefault(f["contract_type"], jobdomain.NotSpecified),
		WorkingPattern:   orDefault(f["working_pattern"], jobdomain.NotSpecified),
		Band:             f["band"],
		Speciality:       f["speciality"],
		Region:           f["region"],
		Description:      f["description"],
		Responsibilities: splitList(f["responsibilities"]),
		Requirements:     splitList(f["requirements"]),
		Benefits:         splitList(f["benefits"]),
	}
}

// columnKey turns a header such as "Posted Date" into "posted_date"
func columnKey(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	if h == "organization" {
		return "organisation"
	}
	return h
}

func cellString(cell any) string {
	if s, ok := cell.(string); ok {
		return s
	}
	if cell == nil {
		return ""
	}
	return fmt.Sprint(cell)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	out := []string{}
	for _, item := range strings.Split(v, listSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var _ jobdomain.SupplementSource = (*Provider)(nil)
