package confusables

import (
	"fmt"
	"sort"
)

// Entry maps one non-ASCII source code point to the ASCII letter or digit it
// is mistaken for.
type Entry struct {
	Source  rune
	Target  rune
	Comment string
}

// Codepoint returns the U+XXXX label of the source.
func (e Entry) Codepoint() string {
	return Label(e.Source)
}

// Label formats r the way the Unicode data files do.
func Label(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// IsCanonical reports whether r is a valid canonical target: a-z or 0-9.
func IsCanonical(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// Map is a set of entries keyed by source code point. The first entry added for
// a source wins; later ones are reported as duplicates.
type Map struct {
	entries map[rune]Entry
}

func NewMap() *Map {
	return &Map{entries: make(map[rune]Entry)}
}

// Add stores e unless its source is already present. It returns false for
// duplicates.
func (m *Map) Add(e Entry) bool {
	if _, ok := m.entries[e.Source]; ok {
		return false
	}
	m.entries[e.Source] = e
	return true
}

func (m *Map) Get(source rune) (Entry, bool) {
	e, ok := m.entries[source]
	return e, ok
}

func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns every entry in ascending source order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}
