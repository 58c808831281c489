package job_test

import (
	"errors"
	"testing"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

func TestDecodeDocument_TopLevelArray(t *testing.T) {
	doc := []byte(`[
		{"id": "1", "title": "Staff Nurse", "organisation": "Trust A", "rate": "£35,000", "end_date": "NaT"},
		{"id": 2, "title": "Paramedic", "organization": "Ambulance Service", "rate": 18.5, "start_date": null}
	]`)

	records, err := job.DecodeDocument(doc)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	first := records[0]
	if first.ID != "1" || first.Title != "Staff Nurse" || first.Organisation != "Trust A" {
		t.Errorf("first record = %+v", first)
	}
	if first.EndDate == nil || *first.EndDate != "NaT" {
		t.Errorf("EndDate = %v, want NaT kept for the normalizer", first.EndDate)
	}

	second := records[1]
	if second.ID != "2" {
		t.Errorf("numeric id coerced to %q, want \"2\"", second.ID)
	}
	if second.Organisation != "Ambulance Service" {
		t.Errorf("organization spelling not accepted: %q", second.Organisation)
	}
	if second.Rate == nil || *second.Rate != "18.5" {
		t.Errorf("Rate = %v, want \"18.5\"", second.Rate)
	}
	if second.StartDate != nil {
		t.Errorf("null start_date should be absent, got %q", *second.StartDate)
	}
}

func TestDecodeDocument_JobsEnvelope(t *testing.T) {
	doc := []byte(`{"generated": "2024-05-01", "jobs": [
		{"id": "a", "title": "GP", "organisation": "Practice", "requirements": "GMC registration"}
	]}`)

	records, err := job.DecodeDocument(doc)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if got := records[0].Requirements; len(got) != 1 || got[0] != "GMC registration" {
		t.Errorf("lone string list = %v, want one item", got)
	}
}

func TestDecodeDocument_NonObjectEntryKeepsPosition(t *testing.T) {
	doc := []byte(`[{"id": "a", "title": "GP", "organisation": "Practice"}, 42]`)

	records, err := job.DecodeDocument(doc)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	jobs, rejected := job.NormalizeAll(records)
	if len(jobs) != 1 {
		t.Errorf("len(jobs) = %d, want 1", len(jobs))
	}
	if len(rejected) != 1 || rejected[0].Index != 1 {
		t.Errorf("rejected = %+v, want index 1", rejected)
	}
}

func TestDecodeDocument_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"jobs": [`,
		"object no jobs": `{"items": []}`,
		"scalar":         `"jobs"`,
		"jobs not array": `{"jobs": {"id": "1"}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := job.DecodeDocument([]byte(doc))
			if !errors.Is(err, job.ErrInvalidDocument) {
				t.Errorf("err = %v, want ErrInvalidDocument", err)
			}
		})
	}
}
