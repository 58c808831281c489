package locale_test

import (
	"testing"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
)

func TestDefault_Substitutions(t *testing.T) {
	e := locale.Default()

	cases := []struct {
		region domain.Region
		in     string
		want   string
	}{
		{domain.RegionUS, "NHS Trust", "Health System"},
		{domain.RegionUK, "NHS Trust", "NHS Trust"},
		{domain.RegionUS, "A&E", "Emergency Department"},
		{domain.RegionUS, "Postcode", "ZIP Code"},
		{domain.RegionUS, "nhs trust", "nhs trust"},
		{domain.RegionUS, "Contact us", "Contact us"},
		{domain.RegionUS, "", ""},
		{domain.Region("fr"), "NHS Trust", "NHS Trust"},
	}
	for _, c := range cases {
		t.Run(string(c.region)+"/"+c.in, func(t *testing.T) {
			if got := e.T(c.region, c.in); got != c.want {
				t.Errorf("T(%s, %q) = %q, want %q", c.region, c.in, got, c.want)
			}
		})
	}
}

func TestNew_CopiesDictionary(t *testing.T) {
	dict := locale.Dictionary{domain.RegionUS: {"Mum": "Mom"}}
	e := locale.New(dict)

	dict[domain.RegionUS]["Mum"] = "Mother"
	dict[domain.RegionUK] = map[string]string{"Mom": "Mum"}

	if got := e.T(domain.RegionUS, "Mum"); got != "Mom" {
		t.Errorf("T(us, Mum) = %q after caller mutation, want Mom", got)
	}
	if got := e.T(domain.RegionUK, "Mom"); got != "Mom" {
		t.Errorf("T(uk, Mom) = %q, want passthrough", got)
	}
}

func TestFor_BindsRegion(t *testing.T) {
	t9n := locale.Default().For(domain.RegionUS)
	if got := t9n("Healthcare Assistant"); got != "Certified Nursing Assistant" {
		t.Errorf("bound T = %q", got)
	}
}

func TestEntries_Sorted(t *testing.T) {
	e := locale.New(locale.Dictionary{domain.RegionUS: {"b": "2", "a": "1"}})
	got := e.Entries(domain.RegionUS)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Entries = %v, want [a b]", got)
	}
	if got := e.Entries(domain.RegionUK); len(got) != 0 {
		t.Errorf("Entries(uk) = %v, want empty", got)
	}
}
