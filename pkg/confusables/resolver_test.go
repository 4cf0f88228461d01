package confusables

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  Verdict
	}{
		{"cyrillic stays", Entry{Source: 0x0430, Target: 'a'}, Keep},
		{"greek capital stays", Entry{Source: 0x0391, Target: 'a'}, Keep},
		{"small roman fifty is redundant", Entry{Source: 0x217C, Target: 'l'}, Redundant},
		{"long s conflicts", Entry{Source: 0x017F, Target: 'f'}, Conflict},
		{"roman one conflicts", Entry{Source: 0x2160, Target: 'l'}, Conflict},
		{"ligature is handled", Entry{Source: 0xFB00, Target: 'f'}, Handled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.entry); got != tc.want {
				t.Fatalf("expected %v, got %v (form %q)", tc.want, got, NormalizedForm(tc.entry.Source))
			}
		})
	}
}

func TestResolveNormalizationConflict(t *testing.T) {
	// MATHEMATICAL BOLD SMALL F normalizes to "f" while the table says "s".
	res := Resolve([]Entry{{Source: 0x1D41F, Target: 's'}})

	full, ok := res.Full.Get(0x1D41F)
	if !ok || full.Target != 's' {
		t.Fatalf("expected full entry with target s, got %#v (present=%v)", full, ok)
	}
	if _, ok := res.Filtered.Get(0x1D41F); ok {
		t.Fatalf("expected conflicting entry to be absent from filtered map")
	}
	if res.Stats.Conflicts != 1 {
		t.Fatalf("expected 1 conflict, got %d", res.Stats.Conflicts)
	}
}

func TestResolveFirstSeenWins(t *testing.T) {
	res := Resolve([]Entry{
		{Source: 0x0430, Target: 'a'},
		{Source: 0x0430, Target: 'o'},
	})
	e, _ := res.Full.Get(0x0430)
	if e.Target != 'a' {
		t.Fatalf("expected first target a, got %c", e.Target)
	}
	if res.Stats.Duplicates != 1 {
		t.Fatalf("expected 1 duplicate, got %d", res.Stats.Duplicates)
	}
	if f, _ := res.Filtered.Get(0x0430); f.Target != 'a' {
		t.Fatalf("expected filtered target a, got %c", f.Target)
	}
}

func TestFilteredInvariants(t *testing.T) {
	candidates := []Entry{
		{Source: 0x0430, Target: 'a'},
		{Source: 0x0391, Target: 'a'},
		{Source: 0x03BF, Target: 'o'},
		{Source: 0x217C, Target: 'l'},
		{Source: 0x017F, Target: 'f'},
		{Source: 0x2160, Target: 'l'},
		{Source: 0xFB00, Target: 'f'},
		{Source: 0xFF41, Target: 'a'},
		{Source: 0x1D41F, Target: 's'},
	}
	res := Resolve(candidates)
	MergeSupplemental(&res, Supplemental)

	if res.Full.Len() != len(candidates)+len(Supplemental) {
		t.Fatalf("expected full map to keep every candidate, got %d", res.Full.Len())
	}

	for _, e := range res.Filtered.Entries() {
		full, ok := res.Full.Get(e.Source)
		if !ok || full.Target != e.Target {
			t.Fatalf("filtered entry %s not mirrored in full map", e.Codepoint())
		}
		form := NormalizedForm(e.Source)
		if form == string(e.Target) {
			t.Fatalf("%s: normalized form equals target", e.Codepoint())
		}
		if _, ok := singleCanonical(form); ok {
			t.Fatalf("%s: normalized form %q is a letter or digit", e.Codepoint(), form)
		}
		if isPermissiveIdentifier(form) {
			t.Fatalf("%s: normalized form %q passes a permissive check", e.Codepoint(), form)
		}
	}
}
