package bucket

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

func testIndex() *Index {
	full := confusables.NewMap()
	for _, e := range []confusables.Entry{
		{Source: 0x0430, Target: 'a'},
		{Source: 0x0251, Target: 'a'},
		{Source: 0x1D41A, Target: 'a'},
		{Source: 0x043E, Target: 'o'},
		{Source: 0x03BF, Target: 'o'},
	} {
		full.Add(e)
	}
	return Build(full, map[rune][]rune{'o': {'0', 'o'}, 'l': {'1'}})
}

func TestBuildOrder(t *testing.T) {
	idx := testIndex()
	if diff := cmp.Diff([]rune{0x0251, 0x0430, 0x1D41A}, idx.Members('a')); diff != "" {
		t.Fatalf("unexpected a bucket (-want +got):\n%s", diff)
	}
	// Non-ASCII first, the self-mapping o→o dropped.
	if diff := cmp.Diff([]rune{0x03BF, 0x043E, '0'}, idx.Members('o')); diff != "" {
		t.Fatalf("unexpected o bucket (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	idx := testIndex()

	if r, ok := idx.Lookup('a', true, nil); !ok || r != 0x0251 {
		t.Fatalf("expected U+0251, got %U (ok=%v)", r, ok)
	}
	if r, ok := idx.Lookup('A', true, map[rune]bool{0x0251: true}); !ok || r != 0x0430 {
		t.Fatalf("expected U+0430 after exclusion, got %U (ok=%v)", r, ok)
	}
	if _, ok := idx.Lookup('l', true, nil); ok {
		t.Fatalf("expected no non-ASCII member for l")
	}
	if r, ok := idx.Lookup('l', false, nil); !ok || r != '1' {
		t.Fatalf("expected ASCII fallback 1, got %q (ok=%v)", r, ok)
	}
	if _, ok := idx.Lookup('q', false, nil); ok {
		t.Fatalf("expected empty bucket for q")
	}
}
