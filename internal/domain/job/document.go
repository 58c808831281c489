package job

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// DecodeDocument parses a regional dataset document into raw records.
// The document is a top-level array or an object carrying a "jobs" array.
// Loosely-typed values are coerced: numbers become strings, null becomes
// absent, and a lone string where a list is expected becomes a one-item list.
// Entries that are not objects are kept as empty records so the Normalizer
// rejects them with their position intact.
func DecodeDocument(data []byte) ([]domain.RawRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidDocument)
	}

	doc := gjson.ParseBytes(data)
	list := doc
	if doc.IsObject() {
		list = doc.Get("jobs")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: no record array", ErrInvalidDocument)
	}

	entries := list.Array()
	records := make([]domain.RawRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, decodeRecord(e))
	}

	return records, nil
}

func decodeRecord(e gjson.Result) domain.RawRecord {
	if !e.IsObject() {
		return domain.RawRecord{}
	}

	return domain.RawRecord{
		ID:               scalar(e.Get("id")),
		Title:            scalar(e.Get("title")),
		Organisation:     firstScalar(e, "organisation", "organization"),
		Grade:            optional(e.Get("grade")),
		Specialism:       optional(e.Get("specialism")),
		ShiftPattern:     optional(e.Get("shift_pattern")),
		Rate:             optional(e.Get("rate")),
		StartDate:        optional(e.Get("start_date")),
		EndDate:          optional(e.Get("end_date")),
		Description:      optional(e.Get("description")),
		Responsibilities: list(e.Get("responsibilities")),
		Requirements:     list(e.Get("requirements")),
		Region:           optional(e.Get("region")),
	}
}

func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.String, gjson.Number:
		return r.String()
	default:
		return ""
	}
}

func firstScalar(e gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := scalar(e.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func optional(r gjson.Result) *string {
	switch r.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		v := r.String()
		return &v
	default:
		return nil
	}
}

func list(r gjson.Result) []string {
	switch {
	case r.IsArray():
		items := r.Array()
		out := make([]string, 0, len(items))
		for _, item := range items {
			if v := scalar(item); v != "" {
				out = append(out, v)
			}
		}
		return out
	case r.Type == gjson.String:
		return []string{r.String()}
	default:
		return nil
	}
}
