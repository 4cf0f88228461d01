package confusables

import "testing"

func TestMergeSupplementalKeepsAuthoritative(t *testing.T) {
	res := Resolve([]Entry{{Source: 0x043A, Target: 'k', Comment: "table"}})
	MergeSupplemental(&res, []Entry{
		{Source: 0x043A, Target: 'x', Comment: "curated"},
		{Source: 0x1D0B, Target: 'k', Comment: "curated"},
	})

	e, _ := res.Full.Get(0x043A)
	if e.Comment != "table" || e.Target != 'k' {
		t.Fatalf("expected authoritative entry to survive, got %#v", e)
	}
	if res.Stats.SupplementalAdded != 1 {
		t.Fatalf("expected 1 supplemental entry, got %d", res.Stats.SupplementalAdded)
	}
	if _, ok := res.Filtered.Get(0x1D0B); !ok {
		t.Fatalf("expected small capital K in filtered map")
	}
}

func TestMergeSupplementalSkipsNormalized(t *testing.T) {
	res := Resolve(nil)
	// FULLWIDTH LATIN SMALL LETTER A normalizes to a.
	MergeSupplemental(&res, []Entry{{Source: 0xFF41, Target: 'a'}})
	if _, ok := res.Full.Get(0xFF41); !ok {
		t.Fatalf("expected entry in full map")
	}
	if _, ok := res.Filtered.Get(0xFF41); ok {
		t.Fatalf("expected entry to be kept out of filtered map")
	}
}

func TestSupplementalListIsWellFormed(t *testing.T) {
	seen := map[rune]bool{}
	for _, e := range Supplemental {
		if seen[e.Source] {
			t.Fatalf("duplicate supplemental source %s", e.Codepoint())
		}
		seen[e.Source] = true
		if !IsCanonical(e.Target) {
			t.Fatalf("%s has non canonical target %q", e.Codepoint(), e.Target)
		}
		if Classify(e) != Keep {
			t.Fatalf("%s is already resolved by normalization", e.Codepoint())
		}
	}
}

func TestGroupByBlock(t *testing.T) {
	groups := GroupByBlock([]Entry{
		{Source: 0x0391, Target: 'a'},
		{Source: 0x03BF, Target: 'o'},
		{Source: 0x0430, Target: 'a'},
		{Source: 0x1D41F, Target: 'f'},
	})
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d: %#v", len(groups), groups)
	}
	if groups[0].Block != "Greek and Coptic" || len(groups[0].Entries) != 2 {
		t.Fatalf("unexpected first group %#v", groups[0])
	}
	if groups[2].Block != "Mathematical Alphanumeric Symbols" {
		t.Fatalf("unexpected last block %q", groups[2].Block)
	}
	if got := BlockOf(0x0870); got != "U+0800..U+087F" {
		t.Fatalf("unexpected fallback block %q", got)
	}
}
