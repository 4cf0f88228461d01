package perceptual

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Ratio is the rendered size of a source glyph relative to its target.
type Ratio struct {
	Width  float64
	Height float64
}

type pairKey struct {
	source, target string
}

// Diagnostics holds size ratios keyed by exact (source, target). A nil
// Diagnostics is valid and yields no ratios.
type Diagnostics map[pairKey]Ratio

// Get returns the ratio recorded for the pair.
func (d Diagnostics) Get(source, target string) (Ratio, bool) {
	r, ok := d[pairKey{source, target}]
	return r, ok
}

// ParseDiagnostics reads {"flagged": [...], "clean": [...]}. When a pair shows
// up more than once the record with the larger width ratio is kept.
func ParseDiagnostics(data []byte) (Diagnostics, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: diagnostics file is not valid JSON", ErrMalformedInput)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: diagnostics must be an object", ErrMalformedInput)
	}

	d := make(Diagnostics)
	for _, group := range []string{"flagged", "clean"} {
		list := root.Get(group)
		if !list.Exists() {
			continue
		}
		if !list.IsArray() {
			return nil, fmt.Errorf("%w: diagnostics group %q is not an array", ErrMalformedInput, group)
		}
		for i, rec := range list.Array() {
			source, target := rec.Get("source").String(), rec.Get("target").String()
			if source == "" || target == "" {
				continue
			}
			w, err := number(rec, "width_ratio")
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", ErrMalformedInput, group, i, err)
			}
			h, err := number(rec, "height_ratio")
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", ErrMalformedInput, group, i, err)
			}
			if w == nil || h == nil {
				continue
			}
			key := pairKey{source, target}
			if prev, ok := d[key]; ok && prev.Width >= *w {
				continue
			}
			d[key] = Ratio{Width: *w, Height: *h}
		}
	}
	return d, nil
}
