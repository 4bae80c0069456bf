package valueobjects

import (
	"encoding/json"
	"strings"
)

// StringList is the single parsing contract for the JSON-array text columns
// (specialties, platforms, languages, sample URLs, ...). Every reader of such
// a column must go through ParseStringList so the fallback rules stay
// identical everywhere:
//
//   - JSON array of strings  -> the array, order preserved
//   - any other non-empty text -> a one-element list holding the raw text
//   - empty/null/whitespace    -> an empty list
//
// Parsing never fails.

// ParseStringList decodes a JSON-array text column.
func ParseStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err == nil {
		if values == nil {
			return []string{}
		}
		return values
	}

	return []string{raw}
}

// EncodeStringList serializes a list for storage as a JSON-array text column.
// A nil or empty list is stored as "[]" so it round-trips to an empty list.
func EncodeStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}

	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}
