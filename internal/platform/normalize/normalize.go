// Package normalize derives canonical identifiers and typed values from the
// free-text fields found in match-record exports. Every function is pure; the
// ingestion loaders rely on Slugify being stable so that differently cased
// occurrences of the same name collapse to one entity key.
package normalize

import (
	"strings"
	"time"
)

const (
	// UnknownSlug is the sentinel identifier for empty or placeholder names.
	UnknownSlug = "unknown"

	// UnknownName is the display-name placeholder stored alongside UnknownSlug.
	UnknownName = "Unknown"
)

// Slugify lowercases a display name and replaces spaces with underscores.
// Empty input maps to UnknownSlug.
func Slugify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownSlug
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// DisplayName trims a free-text name, substituting the UnknownName
// placeholder when nothing is left.
func DisplayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownName
	}
	return name
}

// CoerceInt parses a non-negative integer count, defaulting to zero.
func CoerceInt(s string) int {
	return CoerceIntDefault(s, 0)
}

// CoerceIntDefault returns the parsed value when s is composed entirely of
// digits, otherwise def. Signs and decimals are out of contract: source data
// carries non-negative counts, and anything else defaults silently.
func CoerceIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// dateLayouts are tried in order; exports disagree on date formatting.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04",
	"2006/01/02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// CoerceDate attempts a best-effort parse of a date string. The second return
// is false when no layout matches; callers store an absent date rather than
// failing the row.
func CoerceDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
