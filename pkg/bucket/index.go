// Package bucket inverts the full confusable map into per-letter candidate
// lists used to build substitution attacks.
package bucket

import (
	"slices"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/sortkey"
)

// ASCIILookalikes seeds plain ASCII members so an attack can still substitute
// a character when no non-ASCII glyph is on file for it.
var ASCIILookalikes = map[rune][]rune{
	'0': {'o'},
	'1': {'l', 'i'},
	'3': {'e'},
	'5': {'s'},
	'8': {'b'},
	'a': {'4'},
	'b': {'8'},
	'e': {'3'},
	'g': {'9'},
	'i': {'1', 'l'},
	'l': {'1', 'i'},
	'o': {'0'},
	's': {'5'},
	'z': {'2'},
}

// Index maps a canonical letter or digit to its confusable sources.
type Index struct {
	buckets map[rune][]rune
}

// Build inverts full and merges in the ASCII extras. Each bucket is ordered
// non-ASCII first, then by code point, then by collation. Self-mappings are
// dropped.
func Build(full *confusables.Map, asciiExtras map[rune][]rune) *Index {
	sets := make(map[rune]map[rune]struct{})
	add := func(canonical, member rune) {
		if canonical == member {
			return
		}
		if sets[canonical] == nil {
			sets[canonical] = make(map[rune]struct{})
		}
		sets[canonical][member] = struct{}{}
	}
	for _, e := range full.Entries() {
		add(e.Target, e.Source)
	}
	for canonical, members := range asciiExtras {
		for _, m := range members {
			add(canonical, m)
		}
	}

	// Distinct runes never tie on code point; collation stays as the last key
	// of the documented order.
	col := collate.New(language.Und)
	order := sortkey.Comparator(
		sortkey.By("ascii", isASCII, sortkey.Ascending),
		sortkey.By("codepoint", func(r rune) rune { return r }, sortkey.Ascending),
		sortkey.Func("collation", func(a, b rune) int { return col.CompareString(string(a), string(b)) }, sortkey.Ascending),
	)

	idx := &Index{buckets: make(map[rune][]rune, len(sets))}
	for canonical, set := range sets {
		members := make([]rune, 0, len(set))
		for m := range set {
			members = append(members, m)
		}
		slices.SortFunc(members, order)
		idx.buckets[canonical] = members
	}
	return idx
}

// isASCII sorts non-ASCII runes (0) ahead of ASCII ones (1).
func isASCII(r rune) int {
	if r <= unicode.MaxASCII {
		return 1
	}
	return 0
}

// Members returns the ordered bucket for canonical.
func (idx *Index) Members(canonical rune) []rune {
	return idx.buckets[canonical]
}

// Lookup returns the first member of canonical's bucket that is not in
// exclude, restricted to non-ASCII members when nonASCIIOnly is set. The
// second result is false when nothing qualifies.
func (idx *Index) Lookup(canonical rune, nonASCIIOnly bool, exclude map[rune]bool) (rune, bool) {
	for _, m := range idx.buckets[unicode.ToLower(canonical)] {
		if nonASCIIOnly && m <= unicode.MaxASCII {
			continue
		}
		if exclude[m] {
			continue
		}
		return m, true
	}
	return 0, false
}
