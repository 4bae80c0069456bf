package vimeo

import (
	"strings"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantID   string
		wantOK   bool
	}{
		{
			name:   "bare numeric id",
			input:  "1140916294",
			wantID: "1140916294",
			wantOK: true,
		},
		{
			name:   "canonical url with query suffix",
			input:  "https://vimeo.com/1140916294?share=copy",
			wantID: "1140916294",
			wantOK: true,
		},
		{
			name:   "player url",
			input:  "https://player.vimeo.com/video/1140916294",
			wantID: "1140916294",
			wantOK: true,
		},
		{
			name:   "canonical url without scheme",
			input:  "vimeo.com/987654321",
			wantID: "987654321",
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			input:  "  1140916294  ",
			wantID: "1140916294",
			wantOK: true,
		},
		{
			name:   "not a url",
			input:  "not a url",
			wantOK: false,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:   "vimeo url without id",
			input:  "https://vimeo.com/channels/staffpicks",
			wantOK: false,
		},
		{
			name:   "unrelated video host",
			input:  "https://youtube.com/watch?v=123456",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, id, tt.wantID)
			}
		})
	}
}

func TestEmbedURL(t *testing.T) {
	inputs := []string{
		"1140916294",
		"https://vimeo.com/1140916294?share=copy",
		"https://player.vimeo.com/video/1140916294",
	}

	for _, input := range inputs {
		embed := EmbedURL(input)
		if !strings.Contains(embed, "/video/1140916294") {
			t.Errorf("EmbedURL(%q) = %q, want it to contain /video/1140916294", input, embed)
		}
		if !strings.HasPrefix(embed, "https://player.vimeo.com/video/") {
			t.Errorf("EmbedURL(%q) = %q, want player prefix", input, embed)
		}
	}

	// all accepted forms of the same video normalize identically
	first := EmbedURL(inputs[0])
	for _, input := range inputs[1:] {
		if EmbedURL(input) != first {
			t.Errorf("EmbedURL(%q) != EmbedURL(%q)", input, inputs[0])
		}
	}

	if embed := EmbedURL("not a url"); embed != "" {
		t.Errorf("EmbedURL(\"not a url\") = %q, want empty string", embed)
	}
}

func TestIsValidURL(t *testing.T) {
	if !IsValidURL("https://vimeo.com/1140916294") {
		t.Error("expected canonical url to be valid")
	}
	if IsValidURL("not a url") {
		t.Error("expected garbage input to be invalid")
	}

	// IsValidURL and EmbedURL share one parser; they must agree
	for _, input := range []string{"1140916294", "vimeo.com/abc", "", "video/42 without host"} {
		if IsValidURL(input) != (EmbedURL(input) != "") {
			t.Errorf("IsValidURL(%q) disagrees with EmbedURL", input)
		}
	}
}
