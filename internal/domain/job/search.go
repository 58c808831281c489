package job

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Search evaluates state against catalog and returns the ordered matches.
// It is pure: catalog is never modified and the result is a fresh slice.
func Search(catalog []domain.Job, state domain.SearchState) []domain.Job {
	f := newFilter(state)

	out := make([]domain.Job, 0, len(catalog))
	for _, j := range catalog {
		if f.match(j) {
			out = append(out, j)
		}
	}

	sortJobs(out, state.Sort, f.role)
	return out
}

type filter struct {
	role      string
	location  string
	category  string
	salaryMin float64
	salaryMax float64
}

func newFilter(state domain.SearchState) filter {
	f := filter{
		role:      strings.ToLower(strings.TrimSpace(state.Role)),
		location:  strings.ToLower(strings.TrimSpace(state.Location)),
		salaryMin: state.SalaryMin,
		salaryMax: state.SalaryMax,
	}
	if !state.IsWildcardCategory() {
		f.category = strings.ToLower(strings.TrimSpace(state.Category))
	}
	return f
}

func (f filter) match(j domain.Job) bool {
	return f.matchRole(j) && f.matchLocation(j) && f.matchCategory(j) && f.matchSalary(j)
}

func (f filter) matchRole(j domain.Job) bool {
	if f.role == "" {
		return true
	}
	return containsFold(j.Title, f.role) ||
		containsFold(j.Organisation, f.role) ||
		containsFold(j.Description, f.role)
}

func (f filter) matchLocation(j domain.Job) bool {
	return f.location == "" || containsFold(j.Location, f.location)
}

func (f filter) matchCategory(j domain.Job) bool {
	return f.category == "" || containsFold(j.Title, f.category)
}

// matchSalary never excludes a job whose salary carries no figure
func (f filter) matchSalary(j domain.Job) bool {
	if f.salaryMin <= 0 && f.salaryMax <= 0 {
		return true
	}
	v, ok := ParseSalary(j.Salary)
	if !ok {
		return true
	}
	if f.salaryMin > 0 && v < f.salaryMin {
		return false
	}
	if f.salaryMax > 0 && v > f.salaryMax {
		return false
	}
	return true
}

// containsFold reports whether needle (already lower-cased) occurs in s
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

type sortEntry struct {
	job    domain.Job
	when   time.Time
	dated  bool
	salary float64
	titled bool
}

func sortJobs(jobs []domain.Job, key domain.SortKey, role string) {
	if len(jobs) < 2 {
		return
	}

	var compare func(a, b sortEntry) int
	entries := make([]sortEntry, len(jobs))

	switch key {
	case domain.SortNewest:
		for i, j := range jobs {
			entries[i] = sortEntry{job: j}
			entries[i].when, entries[i].dated = ParseDate(j.PostedDate)
		}
		compare = func(a, b sortEntry) int { return compareDates(a, b, true) }
	case domain.SortClosingSoon:
		for i, j := range jobs {
			entries[i] = sortEntry{job: j}
			entries[i].when, entries[i].dated = ParseDate(j.ClosingDate)
		}
		compare = func(a, b sortEntry) int { return compareDates(a, b, false) }
	case domain.SortSalaryHigh, domain.SortSalaryLow:
		for i, j := range jobs {
			v, _ := ParseSalary(j.Salary)
			entries[i] = sortEntry{job: j, salary: v}
		}
		if key == domain.SortSalaryHigh {
			compare = func(a, b sortEntry) int { return cmp.Compare(b.salary, a.salary) }
		} else {
			compare = func(a, b sortEntry) int { return cmp.Compare(a.salary, b.salary) }
		}
	default:
		if role == "" {
			return
		}
		for i, j := range jobs {
			entries[i] = sortEntry{job: j, titled: containsFold(j.Title, role)}
		}
		compare = func(a, b sortEntry) int {
			switch {
			case a.titled == b.titled:
				return 0
			case a.titled:
				return -1
			default:
				return 1
			}
		}
	}

	slices.SortStableFunc(entries, compare)
	for i := range entries {
		jobs[i] = entries[i].job
	}
}

// compareDates orders dated entries first; undated ("Open") keep catalog order at the end
func compareDates(a, b sortEntry, desc bool) int {
	switch {
	case !a.dated && !b.dated:
		return 0
	case !a.dated:
		return 1
	case !b.dated:
		return -1
	case desc:
		return b.when.Compare(a.when)
	default:
		return a.when.Compare(b.when)
	}
}

// ParseDate reads a display date; "Open" and unknown formats report false
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.OpenDate {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
