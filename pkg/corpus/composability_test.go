package corpus

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

func TestParseTriples(t *testing.T) {
	got, err := ParseTriples([]byte(`[{"char": "ſ", "tr39": "f", "nfkc": "s"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Triple{{Char: "ſ", TR39: "f", NFKC: "s"}}, got); diff != "" {
		t.Fatalf("unexpected triples (-want +got):\n%s", diff)
	}
	if _, err := ParseTriples([]byte(`{"char": "ſ"}`)); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestDeriveTriples(t *testing.T) {
	full := confusables.NewMap()
	full.Add(confusables.Entry{Source: 0x017F, Target: 'f'})
	full.Add(confusables.Entry{Source: 0x0430, Target: 'a'})

	got := DeriveTriples(full)
	want := []Triple{{Char: "ſ", TR39: "f", NFKC: "s"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected triples (-want +got):\n%s", diff)
	}
}

func TestNormalizeProtected(t *testing.T) {
	got := NormalizeProtected([]string{"Admin", "paypal.com", "https://login.example.co.uk/path", "admin", " ", "root"})
	want := []string{"admin", "paypal", "example", "root"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected identifiers (-want +got):\n%s", diff)
	}
}
