// Package perceptual merges the full confusable map with independently
// measured glyph similarity scores into a ranked lookup table.
package perceptual

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

var ErrMalformedInput = errors.New("malformed perceptual input")

// scoreFields are tried in order; the first one present is the similarity.
var scoreFields = []string{"similarity", "ssim", "score"}

// ScoredEdge is one measured (source, target) glyph pair.
type ScoredEdge struct {
	Source        string
	Target        string
	Similarity    *float64
	Cost          *float64
	GlyphReuse    bool
	XIDContinue   bool
	IDNAPValid    bool
	TR39Allowed   bool
	InConfusables bool
	Codepoint     string
}

// ParseEdges reads the score file. The container is either a top level array
// or an object with an "edges" array.
func ParseEdges(data []byte) ([]ScoredEdge, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: score file is not valid JSON", ErrMalformedInput)
	}
	list := gjson.ParseBytes(data)
	if list.IsObject() {
		list = list.Get("edges")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of edges", ErrMalformedInput)
	}

	var edges []ScoredEdge
	for i, rec := range list.Array() {
		if !rec.IsObject() {
			return nil, fmt.Errorf("%w: edge %d is not an object", ErrMalformedInput, i)
		}
		e := ScoredEdge{
			Source:        rec.Get("source").String(),
			Target:        rec.Get("target").String(),
			GlyphReuse:    rec.Get("glyph_reuse").Bool(),
			XIDContinue:   rec.Get("xid_continue").Bool(),
			IDNAPValid:    rec.Get("idna_pvalid").Bool(),
			TR39Allowed:   rec.Get("tr39_allowed").Bool(),
			InConfusables: rec.Get("in_confusables").Bool(),
			Codepoint:     rec.Get("codepoint").String(),
		}
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("%w: edge %d lacks source or target", ErrMalformedInput, i)
		}

		for _, field := range scoreFields {
			v, err := number(rec, field)
			if err != nil {
				return nil, fmt.Errorf("%w: edge %d: %v", ErrMalformedInput, i, err)
			}
			if v != nil {
				s := clampScore(*v)
				e.Similarity = &s
				break
			}
		}
		cost, err := number(rec, "cost")
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrMalformedInput, i, err)
		}
		e.Cost = cost

		edges = append(edges, e)
	}
	return edges, nil
}

// number returns nil for an absent or null field and an error for a
// non-numeric one.
func number(rec gjson.Result, field string) (*float64, error) {
	v := rec.Get(field)
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if v.Type != gjson.Number {
		return nil, fmt.Errorf("field %q is not numeric: %s", field, v.Raw)
	}
	f := v.Float()
	return &f, nil
}

// clampScore bounds a score to [0,1] and rounds it to four decimals.
func clampScore(v float64) float64 {
	v = math.Max(0, math.Min(1, v))
	return math.Round(v*10000) / 10000
}
