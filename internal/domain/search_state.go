package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// SortKey selects the single ordering applied to a result set
type SortKey string

const (
	SortRelevance   SortKey = "relevance"
	SortNewest      SortKey = "newest"
	SortClosingSoon SortKey = "closing-soon"
	SortSalaryHigh  SortKey = "salary-high"
	SortSalaryLow   SortKey = "salary-low"
)

// CategoryAll is the wildcard category that matches every job
const CategoryAll = "All"

// ParseSortKey returns the matching key, defaulting to relevance
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNewest, SortClosingSoon, SortSalaryHigh, SortSalaryLow:
		return k
	default:
		return SortRelevance
	}
}

// SearchState is the transient query/filter/sort configuration of one search
type SearchState struct {
	Role        string  `json:"role,omitempty"`
	Location    string  `json:"location,omitempty"`
	Category    string  `json:"category,omitempty"`
	SalaryMin   float64 `json:"salary_min,omitempty"`
	SalaryMax   float64 `json:"salary_max,omitempty"` // 0 means unbounded
	MaxDistance float64 `json:"max_distance,omitempty"`
	Sort        SortKey `json:"sort,omitempty"`
}

// IsWildcardCategory reports whether the category filter is inactive
func (s SearchState) IsWildcardCategory() bool {
	c := strings.TrimSpace(s.Category)
	return c == "" || strings.EqualFold(c, CategoryAll)
}

// SearchStateFromQuery rebuilds a SearchState from deep-link query parameters.
// Malformed numbers fall back to their defaults.
func SearchStateFromQuery(q url.Values) SearchState {
	return SearchState{
		Role:        strings.TrimSpace(q.Get("role")),
		Location:    strings.TrimSpace(q.Get("location")),
		Category:    strings.TrimSpace(q.Get("category")),
		SalaryMin:   parseNonNegative(q.Get("salary_min")),
		SalaryMax:   parseNonNegative(q.Get("salary_max")),
		MaxDistance: parseNonNegative(q.Get("distance")),
		Sort:        ParseSortKey(q.Get("sort")),
	}
}

// Query encodes the non-default fields back into query parameters
func (s SearchState) Query() url.Values {
	q := url.Values{}
	if s.Role != "" {
		q.Set("role", s.Role)
	}
	if s.Location != "" {
		q.Set("location", s.Location)
	}
	if !s.IsWildcardCategory() {
		q.Set("category", s.Category)
	}
	if s.SalaryMin > 0 {
		q.Set("salary_min", strconv.FormatFloat(s.SalaryMin, 'f', -1, 64))
	}
	if s.SalaryMax > 0 {
		q.Set("salary_max", strconv.FormatFloat(s.SalaryMax, 'f', -1, 64))
	}
	if s.MaxDistance > 0 {
		q.Set("distance", strconv.FormatFloat(s.MaxDistance, 'f', -1, 64))
	}
	if s.Sort != "" && s.Sort != SortRelevance {
		q.Set("sort", string(s.Sort))
	}
	return q
}

func parseNonNegative(v string) float64 {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
