package valueobjects

import (
	"reflect"
	"testing"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "json array",
			raw:      `["أزياء","إعلانات تجارية"]`,
			expected: []string{"أزياء", "إعلانات تجارية"},
		},
		{
			name:     "empty json array",
			raw:      "[]",
			expected: []string{},
		},
		{
			name:     "bare string becomes one element",
			raw:      "instagram",
			expected: []string{"instagram"},
		},
		{
			name:     "empty string",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: []string{},
		},
		{
			name:     "literal null",
			raw:      "null",
			expected: []string{},
		},
		{
			name:     "malformed json falls back to raw text",
			raw:      `["broken`,
			expected: []string{`["broken`},
		},
		{
			name:     "json array of numbers is not a string list",
			raw:      "[1,2,3]",
			expected: []string{"[1,2,3]"},
		},
		{
			name:     "order preserved",
			raw:      `["c","a","b"]`,
			expected: []string{"c", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStringList(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseStringList(%q) = %#v, want %#v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParseStringListNeverNil(t *testing.T) {
	for _, raw := range []string{"", "null", "[]", "x", `["a"]`} {
		if ParseStringList(raw) == nil {
			t.Errorf("ParseStringList(%q) returned nil", raw)
		}
	}
}

func TestEncodeStringList(t *testing.T) {
	if got := EncodeStringList(nil); got != "[]" {
		t.Errorf("EncodeStringList(nil) = %q, want []", got)
	}
	if got := EncodeStringList([]string{}); got != "[]" {
		t.Errorf("EncodeStringList(empty) = %q, want []", got)
	}
	if got := EncodeStringList([]string{"a", "b"}); got != `["a","b"]` {
		t.Errorf(`EncodeStringList(["a","b"]) = %q`, got)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	lists := [][]string{
		{},
		{"instagram"},
		{"العربية", "الإنجليزية"},
		{"a", "b", "c"},
	}

	for _, list := range lists {
		got := ParseStringList(EncodeStringList(list))
		if !reflect.DeepEqual(got, list) {
			t.Errorf("round trip of %#v produced %#v", list, got)
		}
	}
}
