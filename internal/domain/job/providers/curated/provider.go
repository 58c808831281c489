package curated

import (
	"context"
	"slices"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	jobdomain "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

// Provider serves hand-authored jobs compiled into the binary
type Provider struct {
	jobs map[domain.Region][]domain.Job
}

// NewProvider builds a curated provider over jobs; nil selects the built-in listings
func NewProvider(jobs map[domain.Region][]domain.Job) *Provider {
	if jobs == nil {
		jobs = builtin
	}
	return &Provider{jobs: jobs}
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "curated"
}

// FetchStatic returns a copy of the region's curated jobs in authored order
func (p *Provider) FetchStatic(_ context.Context, region domain.Region) ([]domain.Job, error) {
	return slices.Clone(p.jobs[region]), nil
}

var _ jobdomain.SupplementSource = (*Provider)(nil)

var builtin = map[domain.Region][]domain.Job{
	domain.RegionUK: {
		{
			ID:             "flexzo-uk-bank-rn",
			Title:          "Bank Staff Nurse",
			Organisation:   "Flexzo Workforce Partners",
			Location:       "Birmingham",
			Salary:         "£22.50 an hour",
			PostedDate:     "2024-03-04",
			ClosingDate:    domain.OpenDate,
			ContractType:   "Bank",
			WorkingPattern: "Flexible shifts",
			Band:           "Band 5",
			Speciality:     "General Medicine",
			Region:         "West Midlands",
			Description:    "Pick up bank shifts across partner NHS Trust wards through the Flexzo app.",
			Responsibilities: []string{
				"Deliver safe, compassionate ward care",
				"Complete handovers and documentation",
			},
			Requirements: []string{"NMC registration", "Six months post-registration experience"},
			Benefits:     []string{"Weekly pay", "Choose your own shifts", "NHS pension eligible"},
		},
		{
			ID:             "flexzo-uk-locum-gp",
			Title:          "Locum GP",
			Organisation:   "Flexzo Primary Care Network",
			Location:       "Manchester",
			Salary:         "£95 per hour",
			PostedDate:     "2024-02-19",
			ClosingDate:    "2024-06-30",
			ContractType:   "Locum",
			WorkingPattern: "Sessional",
			Speciality:     "General Practice",
			Region:         "North West",
			Description:    "Sessional locum cover for practices across Greater Manchester.",
			Responsibilities: []string{
				"Face-to-face and telephone consultations",
				"Prescription and results review",
			},
			Requirements: []string{"GMC registration with licence to practise", "On the National Performers List"},
			Benefits:     []string{"Same-week payment", "Indemnity support"},
		},
	},
	domain.RegionUS: {
		{
			ID:             "flexzo-us-per-diem-rn",
			Title:          "Per Diem Registered Nurse",
			Organisation:   "Flexzo Staffing",
			Location:       "Phoenix, AZ",
			Salary:         "$55 an hour",
			PostedDate:     "2024-03-06",
			ClosingDate:    domain.OpenDate,
			ContractType:   "Per Diem",
			WorkingPattern: "12-hour shifts",
			Speciality:     "Med-Surg",
			Region:         "Arizona",
			Description:    "Flexible per diem shifts at partner health systems across the Phoenix metro.",
			Responsibilities: []string{
				"Provide direct patient care on med-surg units",
				"Coordinate with charge nurses and physicians",
			},
			Requirements: []string{"Active Arizona or compact RN license", "BLS certification"},
			Benefits:     []string{"Daily pay available", "Self-scheduling"},
		},
	},
}
