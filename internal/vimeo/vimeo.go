// Package vimeo normalizes the video references admins paste into the
// dashboard. Accepted forms:
//
//   - 1140916294 (bare numeric id)
//   - https://vimeo.com/1140916294?share=copy (canonical URL, any query suffix)
//   - https://player.vimeo.com/video/1140916294 (player URL)
package vimeo

import (
	"log/slog"
	"regexp"
	"strings"
)

// embedTemplate pins the player parameters disabling branding and
// autopause so embedded previews behave consistently across pages.
const embedTemplate = "https://player.vimeo.com/video/%ID%?h=&badge=0&autopause=0&player_id=0&app_id=58479"

var (
	digitsOnly  = regexp.MustCompile(`^\d+$`)
	canonicalID = regexp.MustCompile(`vimeo\.com/(\d+)`)
	playerID    = regexp.MustCompile(`video/(\d+)`)
)

// ExtractVideoID pulls the numeric video id out of any accepted form.
// Both EmbedURL and IsValidURL go through this single parser so the two
// predicates can never drift apart.
func ExtractVideoID(url string) (string, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", false
	}

	if digitsOnly.MatchString(url) {
		return url, true
	}

	if strings.Contains(url, "vimeo.com") {
		if m := canonicalID.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
		if m := playerID.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}

	return "", false
}

// EmbedURL converts any accepted video reference into the canonical embed
// URL. It returns "" when no id can be extracted; callers must treat ""
// as "no embeddable content", never as a valid URL.
func EmbedURL(url string) string {
	id, ok := ExtractVideoID(url)
	if !ok {
		slog.Warn("could not extract vimeo video id", "url", url)
		return ""
	}

	return strings.Replace(embedTemplate, "%ID%", id, 1)
}

// IsValidURL reports whether EmbedURL would succeed for the reference.
func IsValidURL(url string) bool {
	_, ok := ExtractVideoID(url)
	return ok
}
