// Package answer normalizes free-text quiz answers so that user input
// can be compared against the stored correct answer regardless of case,
// whitespace, and the order of comma-separated parts.
package answer

import (
	"slices"
	"strings"
)

// Canonicalize converts a raw answer string into its comparable form:
// the string is split on commas, each part is trimmed and lowercased,
// empty parts are dropped, and the remainder is sorted lexicographically.
// Duplicate parts are kept as separate entries, so "a, a, b" does not
// reduce to "a, b". An empty or whitespace-only input yields an empty
// (non-nil) slice.
func Canonicalize(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Matches reports whether two raw answers are equivalent after
// canonicalization. The comparison is order-independent for the caller
// because Canonicalize sorts, but it is an exact sequence comparison:
// same length, same entries, duplicates included.
func Matches(userRaw, correctRaw string) bool {
	return slices.Equal(Canonicalize(userRaw), Canonicalize(correctRaw))
}

// FormatDisplay cleans up an answer for human-facing output: parts are
// trimmed and rejoined with ", ", empty parts are dropped, and case is
// preserved.
func FormatDisplay(raw string) string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}
