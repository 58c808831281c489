package domain

import (
	"time"

	"github.com/gosimple/slug"
)

// OpenDate is rendered in place of a missing or sentinel-valued date
const OpenDate = "Open"

// RawRecord is an upstream job record as it arrives in a regional dataset.
// Optional scalars are nil when absent; nil lists mean the field was absent.
type RawRecord struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Organisation     string   `json:"organisation"`
	Grade            *string  `json:"grade"`
	Specialism       *string  `json:"specialism"`
	ShiftPattern     *string  `json:"shift_pattern"`
	Rate             *string  `json:"rate"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	Description      *string  `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Region           *string  `json:"region"`
}

// Job is the canonical job entity used by search and rendering
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Organisation     string   `json:"organisation"`
	Location         string   `json:"location"`
	Salary           string   `json:"salary"`
	PostedDate       string   `json:"posted_date"`
	ClosingDate      string   `json:"closing_date"`
	ContractType     string   `json:"contract_type"`
	WorkingPattern   string   `json:"working_pattern"`
	Band             string   `json:"band,omitempty"`
	Speciality       string   `json:"speciality,omitempty"`
	Region           string   `json:"region,omitempty"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Benefits         []string `json:"benefits"`
}

// Slug renders a URL-friendly title fragment for detail links
func (j Job) Slug() string {
	return slug.Make(j.Title)
}

// SearchResult wraps one evaluation of a SearchState against a catalog
type SearchResult struct {
	Region      Region      `json:"region"`
	State       SearchState `json:"state"`
	Jobs        []Job       `json:"jobs"`
	Total       int         `json:"total"`
	GeneratedAt time.Time   `json:"generated_at"`
}
