package job

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

const (
	// NotATime is the literal the upstream export writes for an empty date
	NotATime = "NaT"

	NotSpecified    = "Not specified"
	CompetitiveRate = "Competitive"
)

// rawRecordSchema is the minimal shape every upstream record must satisfy
// before it may become a Job.
const rawRecordSchema = `{
	"type": "object",
	"required": ["id", "title", "organisation"],
	"properties": {
		"id":               { "type": "string", "pattern": "\\S" },
		"title":            { "type": "string", "pattern": "\\S" },
		"organisation":     { "type": "string", "pattern": "\\S" },
		"grade":            { "type": ["string", "null"] },
		"specialism":       { "type": ["string", "null"] },
		"shift_pattern":    { "type": ["string", "null"] },
		"rate":             { "type": ["string", "null"] },
		"start_date":       { "type": ["string", "null"] },
		"end_date":         { "type": ["string", "null"] },
		"description":      { "type": ["string", "null"] },
		"region":           { "type": ["string", "null"] },
		"responsibilities": { "type": ["array", "null"], "items": { "type": "string" } },
		"requirements":     { "type": ["array", "null"], "items": { "type": "string" } }
	}
}`

var recordSchema = mustCompileSchema(rawRecordSchema)

func mustCompileSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("job: compile raw record schema: %v", err))
	}
	return schema
}

// Rejection describes an upstream record quarantined by NormalizeAll
type Rejection struct {
	Index int
	ID    string
	Err   error
}

// Normalize maps one RawRecord onto the canonical Job.
// It is deterministic: the same record always yields an identical Job.
func Normalize(raw domain.RawRecord) (domain.Job, error) {
	if err := Validate(raw); err != nil {
		return domain.Job{}, err
	}

	return domain.Job{
		ID:               raw.ID,
		Title:            raw.Title,
		Organisation:     raw.Organisation,
		Location:         NotSpecified,
		Salary:           valueOr(raw.Rate, CompetitiveRate),
		PostedDate:       dateOrOpen(raw.StartDate),
		ClosingDate:      dateOrOpen(raw.EndDate),
		ContractType:     NotSpecified,
		WorkingPattern:   valueOr(raw.ShiftPattern, NotSpecified),
		Band:             valueOr(raw.Grade, ""),
		Speciality:       valueOr(raw.Specialism, ""),
		Region:           valueOr(raw.Region, ""),
		Description:      valueOr(raw.Description, ""),
		Responsibilities: cloneList(raw.Responsibilities),
		Requirements:     cloneList(raw.Requirements),
		Benefits:         []string{},
	}, nil
}

// NormalizeAll normalizes records in order, quarantining the malformed ones
func NormalizeAll(raws []domain.RawRecord) ([]domain.Job, []Rejection) {
	jobs := make([]domain.Job, 0, len(raws))
	var rejected []Rejection

	for i, raw := range raws {
		j, err := Normalize(raw)
		if err != nil {
			rejected = append(rejected, Rejection{Index: i, ID: raw.ID, Err: err})
			continue
		}
		jobs = append(jobs, j)
	}

	return jobs, rejected
}

// Validate checks the structurally required fields of a record
func Validate(raw domain.RawRecord) error {
	res, err := recordSchema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformedRecord, strings.Join(msgs, "; "))
}

func dateOrOpen(v *string) string {
	if v == nil {
		return domain.OpenDate
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" || strings.EqualFold(trimmed, NotATime) {
		return domain.OpenDate
	}
	return *v
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
