package domain

import "strings"

// Region partitions every region-scoped artifact: datasets, catalogs and copy
type Region string

const (
	RegionUK Region = "uk"
	RegionUS Region = "us"
)

var supportedRegions = []Region{RegionUK, RegionUS}

// Regions lists the supported regions in a fixed order
func Regions() []Region {
	out := make([]Region, len(supportedRegions))
	copy(out, supportedRegions)
	return out
}

// ParseRegion matches s case-insensitively against the supported regions
func ParseRegion(s string) (Region, bool) {
	candidate := Region(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range supportedRegions {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

// Country returns the ISO 3166 alpha-2 code served by the region
func (r Region) Country() string {
	switch r {
	case RegionUK:
		return "GB"
	case RegionUS:
		return "US"
	default:
		return ""
	}
}

// RegionForCountry maps an ISO country code onto a served region
func RegionForCountry(code string) (Region, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "GB", "UK", "IE", "IM", "JE", "GG":
		return RegionUK, true
	case "US", "PR", "GU", "VI", "AS", "MP":
		return RegionUS, true
	default:
		return "", false
	}
}

func (r Region) String() string {
	return string(r)
}
