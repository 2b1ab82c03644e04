// Package allowlist normalizes allow-list entries for case-insensitive comparison.
package allowlist

import (
	"strings"

	"github.com/samber/lo"
)

// Normalize trims every entry, drops the ones left empty, removes strip matches
// when strip is non-nil and lowercases the result. Input order is preserved and
// the returned slice is never nil.
func Normalize(entries []Entry, strip *Pattern) []string {
	return lo.FilterMap(entries, func(e Entry, _ int) (string, bool) {
		s := strings.TrimSpace(e.String())
		if s == "" {
			return "", false
		}
		if strip != nil {
			s = strip.Strip(s)
		}
		return strings.ToLower(s), true
	})
}

// NormalizeStrings is Normalize for plain string input.
func NormalizeStrings(values []string, strip *Pattern) []string {
	return Normalize(Strings(values), strip)
}

// NormalizeValues is Normalize for loosely typed input such as decoded config.
func NormalizeValues(values []any, strip *Pattern) []string {
	return Normalize(Values(values), strip)
}
