package job

import (
	"regexp"
	"strconv"
	"strings"
)

// HoursPerYear annualizes hourly rates: 40 hours a week, 52 weeks a year
const HoursPerYear = 2080

var (
	salaryFigure = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)
	hourlyMarker = []string{"hour", "/hr", "p/h", "per hr"}
)

// ParseSalary extracts the comparison figure from a free-text salary.
// The first number wins; hourly rates are annualized. ok is false when the
// text carries no number at all (e.g. "Competitive").
func ParseSalary(s string) (float64, bool) {
	m := salaryFigure.FindString(s)
	if m == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}

	if isHourly(s) {
		v *= HoursPerYear
	}
	return v, true
}

func isHourly(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range hourlyMarker {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
