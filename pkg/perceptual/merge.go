package perceptual

import (
	"slices"
	"strings"

	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/sortkey"
)

// Provenance says where a pairing comes from.
type Provenance string

const (
	Authoritative Provenance = "authoritative"
	Novel         Provenance = "novel"
)

// rank orders provenances; lower ranks take precedence.
func (p Provenance) rank() int {
	if p == Authoritative {
		return 0
	}
	return 1
}

// Claim is either an Authoritative pairing backed by the confusables table or
// a Novel pairing backed only by a similarity measurement.
type Claim struct {
	Provenance Provenance
	Source     string
	Target     string
	Similarity float64
	Codepoint  string
}

// AuthoritativeClaim builds the claim for a full-map entry. The measured
// score is used when one exists for the pair, otherwise 1.0.
func AuthoritativeClaim(e confusables.Entry, edge *ScoredEdge) Claim {
	c := Claim{
		Provenance: Authoritative,
		Source:     string(e.Source),
		Target:     string(e.Target),
		Similarity: 1.0,
		Codepoint:  e.Codepoint(),
	}
	if edge != nil {
		if edge.Similarity != nil {
			c.Similarity = *edge.Similarity
		}
		if edge.Codepoint != "" {
			c.Codepoint = edge.Codepoint
		}
	}
	return c
}

// NovelClaim builds the claim for a measured edge the table does not list.
// It returns false when the target is not exactly one Latin letter or digit.
func NovelClaim(edge ScoredEdge) (Claim, bool) {
	target := strings.ToLower(edge.Target)
	rs := []rune(target)
	if len(rs) != 1 || !confusables.IsCanonical(rs[0]) {
		return Claim{}, false
	}
	c := Claim{
		Provenance: Novel,
		Source:     edge.Source,
		Target:     target,
		Codepoint:  edge.Codepoint,
	}
	if edge.Similarity != nil {
		c.Similarity = *edge.Similarity
	}
	if c.Codepoint == "" {
		c.Codepoint = codepointLabel(edge.Source)
	}
	return c, true
}

// claimKey identifies one retained pairing. An authoritative and a novel claim
// on the same pair are both kept; the ranking puts the authoritative one first.
type claimKey struct {
	source     string
	target     string
	provenance Provenance
}

// precedence decides which of two claims sharing a key survives: the lower
// provenance rank wins, and on a tie the held claim stays.
func precedence(held, incoming Claim) Claim {
	if incoming.Provenance.rank() < held.Provenance.rank() {
		return incoming
	}
	return held
}

// RankedEntry is one candidate Latin reading of a source character.
type RankedEntry struct {
	Latin       string     `json:"latin"`
	Similarity  float64    `json:"similarity"`
	Provenance  Provenance `json:"provenance"`
	Script      string     `json:"script"`
	Codepoint   string     `json:"codepoint"`
	WidthRatio  *float64   `json:"width_ratio"`
	HeightRatio *float64   `json:"height_ratio"`
}

// Meta summarizes a lookup table.
type Meta struct {
	TotalPairs      int `json:"total_pairs"`
	DistinctSources int `json:"distinct_sources"`
	Authoritative   int `json:"authoritative"`
	Novel           int `json:"novel"`
}

// Lookup maps a source character to its ranked Latin readings.
type Lookup struct {
	Meta    Meta                     `json:"meta"`
	Entries map[string][]RankedEntry `json:"entries"`
}

var rankedOrder = sortkey.Comparator(
	sortkey.By("similarity", func(e RankedEntry) float64 { return e.Similarity }, sortkey.Descending),
	sortkey.By("provenance", func(e RankedEntry) int { return e.Provenance.rank() }, sortkey.Ascending),
	sortkey.By("latin", func(e RankedEntry) string { return e.Latin }, sortkey.Ascending),
	sortkey.By("script", func(e RankedEntry) string { return e.Script }, sortkey.Ascending),
)

// Merge combines the full map with measured edges. Size ratios are attached
// from diags when present; diags may be nil.
func Merge(full *confusables.Map, edges []ScoredEdge, diags Diagnostics) Lookup {
	index := make(map[pairKey]*ScoredEdge, len(edges))
	for i := range edges {
		key := pairKey{edges[i].Source, strings.ToLower(edges[i].Target)}
		if _, ok := index[key]; !ok {
			index[key] = &edges[i]
		}
	}

	var order []claimKey
	claims := make(map[claimKey]Claim)
	submit := func(c Claim) {
		key := claimKey{c.Source, c.Target, c.Provenance}
		if held, ok := claims[key]; ok {
			claims[key] = precedence(held, c)
			return
		}
		claims[key] = c
		order = append(order, key)
	}

	for _, e := range full.Entries() {
		submit(AuthoritativeClaim(e, index[pairKey{string(e.Source), string(e.Target)}]))
	}
	for _, edge := range edges {
		if edge.InConfusables {
			continue
		}
		if c, ok := NovelClaim(edge); ok {
			submit(c)
		}
	}

	out := Lookup{Entries: make(map[string][]RankedEntry)}
	for _, key := range order {
		c := claims[key]
		entry := RankedEntry{
			Latin:      c.Target,
			Similarity: c.Similarity,
			Provenance: c.Provenance,
			Script:     scriptOf(c.Source),
			Codepoint:  c.Codepoint,
		}
		if r, ok := diags.Get(c.Source, c.Target); ok {
			w, h := r.Width, r.Height
			entry.WidthRatio, entry.HeightRatio = &w, &h
		}
		out.Entries[c.Source] = append(out.Entries[c.Source], entry)

		out.Meta.TotalPairs++
		if c.Provenance == Authoritative {
			out.Meta.Authoritative++
		} else {
			out.Meta.Novel++
		}
	}
	for source := range out.Entries {
		slices.SortStableFunc(out.Entries[source], rankedOrder)
	}
	out.Meta.DistinctSources = len(out.Entries)
	return out
}

func codepointLabel(s string) string {
	labels := make([]string, 0, 1)
	for _, r := range s {
		labels = append(labels, confusables.Label(r))
	}
	return strings.Join(labels, " ")
}
