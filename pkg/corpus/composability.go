package corpus

import (
	"errors"
	"fmt"

	tr39 "github.com/ergochat/confusables"
	"github.com/tidwall/gjson"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

var ErrMalformedInput = errors.New("malformed corpus input")

// Triple pairs a character with what a TR39 skeleton check and an NFKC
// normalization each turn it into.
type Triple struct {
	Char string
	TR39 string
	NFKC string
}

// ParseTriples reads a JSON array of {"char", "tr39", "nfkc"} records.
func ParseTriples(data []byte) ([]Triple, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: composability file is not valid JSON", ErrMalformedInput)
	}
	list := gjson.ParseBytes(data)
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: composability file must be an array", ErrMalformedInput)
	}
	var out []Triple
	for i, rec := range list.Array() {
		if !rec.IsObject() {
			return nil, fmt.Errorf("%w: composability record %d is not an object", ErrMalformedInput, i)
		}
		out = append(out, Triple{
			Char: rec.Get("char").String(),
			TR39: rec.Get("tr39").String(),
			NFKC: rec.Get("nfkc").String(),
		})
	}
	return out, nil
}

// DeriveTriples predicts both outputs for every full-map source. Only
// characters where both predictions land on an ASCII identifier string are
// kept, since those are the ones a normalize-then-compare validator and a
// skeleton-compare validator can disagree on.
func DeriveTriples(full *confusables.Map) []Triple {
	var out []Triple
	for _, e := range full.Entries() {
		ch := string(e.Source)
		t := Triple{
			Char: ch,
			TR39: confusables.NormalizeString(tr39.Skeleton(ch)),
			NFKC: confusables.NormalizeString(ch),
		}
		if !asciiIdentifier(t.TR39) || !asciiIdentifier(t.NFKC) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func asciiIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !confusables.IsCanonical(r) {
			return false
		}
	}
	return true
}
