package perceptual

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

func ptr(f float64) *float64 { return &f }

func fullMap(entries ...confusables.Entry) *confusables.Map {
	m := confusables.NewMap()
	for _, e := range entries {
		m.Add(e)
	}
	return m
}

func TestMergeProvenanceAndOrder(t *testing.T) {
	full := fullMap(
		confusables.Entry{Source: 0x0430, Target: 'a'},
		confusables.Entry{Source: 0x0251, Target: 'a'},
	)
	edges := []ScoredEdge{
		{Source: "а", Target: "a", Similarity: ptr(0.97), InConfusables: true},
		{Source: "а", Target: "A", Similarity: ptr(0.5), InConfusables: true},
		{Source: "а", Target: "o", Similarity: ptr(0.97)},
		{Source: "а", Target: "ae", Similarity: ptr(0.99)},
		{Source: "ɑ", Target: "a", Similarity: ptr(0.8)},
		{Source: "ʋ", Target: "u"},
	}
	diags := Diagnostics{pairKey{"а", "a"}: {Width: 1.01, Height: 0.99}}

	got := Merge(full, edges, diags)

	want := []RankedEntry{
		{Latin: "a", Similarity: 0.97, Provenance: Authoritative, Script: "Cyrillic", Codepoint: "U+0430", WidthRatio: ptr(1.01), HeightRatio: ptr(0.99)},
		{Latin: "o", Similarity: 0.97, Provenance: Novel, Script: "Cyrillic", Codepoint: "U+0430"},
	}
	if diff := cmp.Diff(want, got.Entries["а"]); diff != "" {
		t.Fatalf("unexpected entries for а (-want +got):\n%s", diff)
	}

	// The measured ɑ→a edge scores the table entry and, not being flagged as
	// implied by the table, is also kept as its own novel entry.
	alpha := got.Entries["ɑ"]
	wantAlpha := []RankedEntry{
		{Latin: "a", Similarity: 0.8, Provenance: Authoritative, Script: "Latin", Codepoint: "U+0251"},
		{Latin: "a", Similarity: 0.8, Provenance: Novel, Script: "Latin", Codepoint: "U+0251"},
	}
	if diff := cmp.Diff(wantAlpha, alpha); diff != "" {
		t.Fatalf("unexpected entries for ɑ (-want +got):\n%s", diff)
	}

	upsilon := got.Entries["ʋ"]
	if len(upsilon) != 1 || upsilon[0].Similarity != 0 || upsilon[0].Provenance != Novel {
		t.Fatalf("unexpected entries for ʋ: %+v", upsilon)
	}

	wantMeta := Meta{TotalPairs: 5, DistinctSources: 3, Authoritative: 2, Novel: 3}
	if got.Meta != wantMeta {
		t.Fatalf("expected meta %+v, got %+v", wantMeta, got.Meta)
	}
}

func TestMergeTieBreaksByProvenanceThenLetter(t *testing.T) {
	full := fullMap(confusables.Entry{Source: 0x0441, Target: 'c'})
	edges := []ScoredEdge{
		{Source: "с", Target: "c", Similarity: ptr(0.9), InConfusables: true},
		{Source: "с", Target: "o", Similarity: ptr(0.9)},
		{Source: "с", Target: "e", Similarity: ptr(0.9)},
	}
	got := Merge(full, edges, nil).Entries["с"]
	var letters []string
	for _, e := range got {
		letters = append(letters, e.Latin)
	}
	if diff := cmp.Diff([]string{"c", "e", "o"}, letters); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestMergeUnscoredBaselineDefaultsToOne(t *testing.T) {
	full := fullMap(confusables.Entry{Source: 0x03BF, Target: 'o'})
	got := Merge(full, nil, nil).Entries["\u03bf"]
	if len(got) != 1 || got[0].Similarity != 1.0 || got[0].Script != "Greek" {
		t.Fatalf("unexpected entries for ο: %+v", got)
	}
}

func TestMergeKeepsBothProvenancesForOnePair(t *testing.T) {
	full := fullMap(confusables.Entry{Source: 0x0430, Target: 'a'})
	edges := []ScoredEdge{
		{Source: "\u0430", Target: "a", Similarity: ptr(0.6)},
		{Source: "\u0430", Target: "A", Similarity: ptr(0.3)},
	}
	got := Merge(full, edges, nil)

	want := []RankedEntry{
		{Latin: "a", Similarity: 0.6, Provenance: Authoritative, Script: "Cyrillic", Codepoint: "U+0430"},
		{Latin: "a", Similarity: 0.6, Provenance: Novel, Script: "Cyrillic", Codepoint: "U+0430"},
	}
	if diff := cmp.Diff(want, got.Entries["\u0430"]); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	wantMeta := Meta{TotalPairs: 2, DistinctSources: 1, Authoritative: 1, Novel: 1}
	if got.Meta != wantMeta {
		t.Fatalf("expected meta %+v, got %+v", wantMeta, got.Meta)
	}
}

func TestPrecedence(t *testing.T) {
	auth := Claim{Provenance: Authoritative, Similarity: 0.1}
	novel := Claim{Provenance: Novel, Similarity: 0.9}
	if precedence(auth, novel) != auth {
		t.Fatalf("expected held authoritative claim to win")
	}
	if precedence(novel, auth) != auth {
		t.Fatalf("expected incoming authoritative claim to win")
	}
	other := Claim{Provenance: Novel, Similarity: 0.2}
	if precedence(novel, other) != novel {
		t.Fatalf("expected held claim to win a tie")
	}
}

func TestWeights(t *testing.T) {
	w := Weights([]ScoredEdge{
		{Source: "а", Target: "a", Similarity: ptr(0.97), Cost: ptr(0.1), GlyphReuse: true, InConfusables: true},
		{Source: "а", Target: "a", Similarity: ptr(0.1)},
		{Source: "о", Target: "0"},
	})
	want := map[string]map[string]Weight{
		"а": {"a": {Score: 0.97, Cost: ptr(0.1), GlyphReuse: true, InTable: true}},
		"о": {"0": {}},
	}
	if diff := cmp.Diff(want, w); diff != "" {
		t.Fatalf("unexpected weights (-want +got):\n%s", diff)
	}
}
