// Package locale swaps region-specific wording into shared page copy.
package locale

import (
	"maps"
	"slices"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// Dictionary maps, per region, an exact source string to its regional form
type Dictionary map[domain.Region]map[string]string

// Engine performs exact-match substitutions. It is immutable and safe for concurrent use.
type Engine struct {
	dict Dictionary
}

// New builds an Engine from a copy of dict
func New(dict Dictionary) *Engine {
	own := make(Dictionary, len(dict))
	for region, entries := range dict {
		own[region] = maps.Clone(entries)
	}
	return &Engine{dict: own}
}

// Default returns the Engine carrying the built-in vocabulary.
// Source copy is written for the uk audience, so uk has no entries.
func Default() *Engine {
	return New(defaultDictionary)
}

// T returns the regional form of text, or text unchanged when none is defined
func (e *Engine) T(region domain.Region, text string) string {
	if v, ok := e.dict[region][text]; ok {
		return v
	}
	return text
}

// For binds the engine to region, for use inside views
func (e *Engine) For(region domain.Region) func(string) string {
	return func(text string) string {
		return e.T(region, text)
	}
}

// Entries lists the source strings with a substitution for region, sorted
func (e *Engine) Entries(region domain.Region) []string {
	return slices.Sorted(maps.Keys(e.dict[region]))
}

var defaultDictionary = Dictionary{
	domain.RegionUK: {},
	domain.RegionUS: {
		"NHS Trust":                       "Health System",
		"NHS Trusts":                      "Health Systems",
		"NHS":                             "Healthcare",
		"A&E":                             "Emergency Department",
		"Healthcare Assistant":            "Certified Nursing Assistant",
		"Healthcare Assistants":           "Certified Nursing Assistants",
		"Locum":                           "Per Diem",
		"Bank Staff":                      "Per Diem Staff",
		"Band":                            "Grade",
		"Postcode":                        "ZIP Code",
		"Mobile number":                   "Cell phone number",
		"Theatre":                         "Operating Room",
		"Ward":                            "Unit",
		"Organisation":                    "Organization",
		"Speciality":                      "Specialty",
		"Salary (£)":                      "Salary ($)",
		"Minimum salary (£)":              "Minimum salary ($)",
		"Maximum salary (£)":              "Maximum salary ($)",
		"Find NHS jobs":                   "Find healthcare jobs",
		"Workforce solutions for the NHS": "Workforce solutions for health systems",
		"Book a demo with our NHS team":   "Book a demo with our healthcare team",
		"Flexible shifts across NHS Trusts near you": "Flexible shifts across health systems near you",
		"Enquiry":      "Inquiry",
		"Send enquiry": "Send inquiry",
	},
}
