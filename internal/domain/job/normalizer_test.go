package job_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

func strp(s string) *string { return &s }

func fullRecord() domain.RawRecord {
	return domain.RawRecord{
		ID:               "FLX-1001",
		Title:            "Staff Nurse",
		Organisation:     "Leeds Teaching Hospitals NHS Trust",
		Grade:            strp("Band 5"),
		Specialism:       strp("Acute Medicine"),
		ShiftPattern:     strp("Nights"),
		Rate:             strp("£18.50 an hour"),
		StartDate:        strp("2024-03-01"),
		EndDate:          strp("NaT"),
		Description:      strp("Cover on a busy acute medical ward."),
		Responsibilities: []string{"Administer medication", "Handover"},
		Requirements:     nil,
		Region:           strp("Yorkshire"),
	}
}

// ── Field mapping ──────────────────────────────────────────────────────────

func TestNormalize_MapsFields(t *testing.T) {
	got, err := job.Normalize(fullRecord())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := domain.Job{
		ID:               "FLX-1001",
		Title:            "Staff Nurse",
		Organisation:     "Leeds Teaching Hospitals NHS Trust",
		Location:         "Not specified",
		Salary:           "£18.50 an hour",
		PostedDate:       "2024-03-01",
		ClosingDate:      "Open",
		ContractType:     "Not specified",
		WorkingPattern:   "Nights",
		Band:             "Band 5",
		Speciality:       "Acute Medicine",
		Region:           "Yorkshire",
		Description:      "Cover on a busy acute medical ward.",
		Responsibilities: []string{"Administer medication", "Handover"},
		Requirements:     []string{},
		Benefits:         []string{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize =\n%+v\nwant\n%+v", got, want)
	}
}

func TestNormalize_DateSentinels(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want string
	}{
		{"absent", nil, "Open"},
		{"empty", strp(""), "Open"},
		{"blank", strp("   "), "Open"},
		{"not-a-time", strp("NaT"), "Open"},
		{"not-a-time lowercase", strp("nat"), "Open"},
		{"iso date", strp("2024-01-01"), "2024-01-01"},
		{"free text passes through", strp("ASAP"), "ASAP"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := fullRecord()
			raw.StartDate = c.in
			raw.EndDate = c.in
			got, err := job.Normalize(raw)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got.PostedDate != c.want || got.ClosingDate != c.want {
				t.Errorf("dates = (%q, %q), want %q", got.PostedDate, got.ClosingDate, c.want)
			}
		})
	}
}

func TestNormalize_MinimalRecordUsesDefaults(t *testing.T) {
	got, err := job.Normalize(domain.RawRecord{ID: "7", Title: "Healthcare Assistant", Organisation: "Flexzo"})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Salary != "Competitive" {
		t.Errorf("Salary = %q, want Competitive", got.Salary)
	}
	if got.WorkingPattern != "Not specified" || got.Location != "Not specified" {
		t.Errorf("defaults not applied: pattern=%q location=%q", got.WorkingPattern, got.Location)
	}
	if got.Responsibilities == nil || got.Requirements == nil || got.Benefits == nil {
		t.Error("list fields must be empty, not nil")
	}
	if got.Band != "" || got.Speciality != "" || got.Region != "" {
		t.Errorf("optional fields should stay empty, got band=%q speciality=%q region=%q", got.Band, got.Speciality, got.Region)
	}
}

// ── Determinism ────────────────────────────────────────────────────────────

func TestNormalize_Deterministic(t *testing.T) {
	raw := fullRecord()
	a, errA := job.Normalize(raw)
	b, errB := job.Normalize(raw)
	if errA != nil || errB != nil {
		t.Fatalf("Normalize errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Normalize is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestNormalize_DoesNotAliasRecordLists(t *testing.T) {
	raw := fullRecord()
	got, err := job.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	raw.Responsibilities[0] = "changed upstream"
	if got.Responsibilities[0] != "Administer medication" {
		t.Error("Job shares its responsibilities slice with the RawRecord")
	}
}

// ── Malformed records ──────────────────────────────────────────────────────

func TestNormalize_RejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]domain.RawRecord{
		"no id":           {Title: "Nurse", Organisation: "Trust"},
		"no title":        {ID: "1", Organisation: "Trust"},
		"no organisation": {ID: "1", Title: "Nurse"},
		"blank title":     {ID: "1", Title: "   ", Organisation: "Trust"},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := job.Normalize(raw)
			if !errors.Is(err, job.ErrMalformedRecord) {
				t.Fatalf("err = %v, want ErrMalformedRecord", err)
			}
			if !reflect.DeepEqual(got, domain.Job{}) {
				t.Errorf("malformed record produced a job: %+v", got)
			}
		})
	}
}

func TestNormalizeAll_QuarantinesAndKeepsOrder(t *testing.T) {
	raws := []domain.RawRecord{
		{ID: "a", Title: "Nurse A", Organisation: "Trust"},
		{ID: "b", Organisation: "Trust"},
		{ID: "c", Title: "Nurse C", Organisation: "Trust"},
	}
	jobs, rejected := job.NormalizeAll(raws)

	if len(jobs) != 2 || jobs[0].ID != "a" || jobs[1].ID != "c" {
		t.Errorf("jobs = %+v, want a then c", jobs)
	}
	if len(rejected) != 1 || rejected[0].Index != 1 || rejected[0].ID != "b" {
		t.Errorf("rejected = %+v, want index 1 id b", rejected)
	}
}
