package domain_test

import (
	"net/url"
	"testing"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

func TestParseRegion(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Region
		ok   bool
	}{
		{"uk", domain.RegionUK, true},
		{"US", domain.RegionUS, true},
		{" uk ", domain.RegionUK, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := domain.ParseRegion(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseRegion(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRegionForCountry(t *testing.T) {
	if r, ok := domain.RegionForCountry("gb"); !ok || r != domain.RegionUK {
		t.Errorf("RegionForCountry(gb) = (%q, %v)", r, ok)
	}
	if r, ok := domain.RegionForCountry("US"); !ok || r != domain.RegionUS {
		t.Errorf("RegionForCountry(US) = (%q, %v)", r, ok)
	}
	if _, ok := domain.RegionForCountry("DE"); ok {
		t.Error("RegionForCountry(DE) should not map to a served region")
	}
}

func TestSearchStateFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("role", " nurse ")
	q.Set("location", "Leeds")
	q.Set("salary_min", "25,000")
	q.Set("salary_max", "abc")
	q.Set("distance", "-4")
	q.Set("sort", "SALARY-HIGH")

	got := domain.SearchStateFromQuery(q)
	want := domain.SearchState{
		Role:      "nurse",
		Location:  "Leeds",
		SalaryMin: 25000,
		Sort:      domain.SortSalaryHigh,
	}
	if got != want {
		t.Errorf("SearchStateFromQuery = %+v, want %+v", got, want)
	}
}

func TestSearchStateQueryRoundTrip(t *testing.T) {
	state := domain.SearchState{Role: "midwife", Category: "Band 6", SalaryMax: 40000, Sort: domain.SortNewest}
	if got := domain.SearchStateFromQuery(state.Query()); got != state {
		t.Errorf("round trip = %+v, want %+v", got, state)
	}
}

func TestParseSortKeyDefaultsToRelevance(t *testing.T) {
	for _, s := range []string{"", "alphabetical", "random"} {
		if got := domain.ParseSortKey(s); got != domain.SortRelevance {
			t.Errorf("ParseSortKey(%q) = %q, want relevance", s, got)
		}
	}
}

func TestJobSlug(t *testing.T) {
	j := domain.Job{Title: "Staff Nurse (Band 5)"}
	if got := j.Slug(); got != "staff-nurse-band-5" {
		t.Errorf("Slug() = %q", got)
	}
}
