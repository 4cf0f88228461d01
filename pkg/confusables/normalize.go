package confusables

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizedForm is what a normalizing pipeline turns r into: NFKC followed by
// full Unicode lowercasing.
func NormalizedForm(r rune) string {
	return NormalizeString(string(r))
}

// NormalizeString applies NFKC and lowercasing to s.
func NormalizeString(s string) string {
	return cases.Lower(language.Und).String(norm.NFKC.String(s))
}

// isPermissiveIdentifier reports whether s would pass a plain [a-z0-9-]+ check.
func isPermissiveIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsCanonical(r) && r != '-' {
			return false
		}
	}
	return true
}

// singleCanonical returns the rune of s when s is exactly one a-z/0-9 rune.
func singleCanonical(s string) (rune, bool) {
	rs := []rune(s)
	if len(rs) != 1 || !IsCanonical(rs[0]) {
		return 0, false
	}
	return rs[0], true
}
