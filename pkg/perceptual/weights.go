package perceptual

// Weight is the compact per-pair record. Booleans are only serialized when
// true to keep the table small.
type Weight struct {
	Score       float64  `json:"s"`
	Cost        *float64 `json:"c,omitempty"`
	GlyphReuse  bool     `json:"g,omitempty"`
	XIDContinue bool     `json:"x,omitempty"`
	IDNAPValid  bool     `json:"i,omitempty"`
	TR39Allowed bool     `json:"t,omitempty"`
	InTable     bool     `json:"a,omitempty"`
}

// Weights indexes every measured edge by source then target. The first edge
// seen for a pair wins.
func Weights(edges []ScoredEdge) map[string]map[string]Weight {
	out := make(map[string]map[string]Weight)
	for _, e := range edges {
		targets, ok := out[e.Source]
		if !ok {
			targets = make(map[string]Weight)
			out[e.Source] = targets
		}
		if _, ok := targets[e.Target]; ok {
			continue
		}
		w := Weight{
			Cost:        e.Cost,
			GlyphReuse:  e.GlyphReuse,
			XIDContinue: e.XIDContinue,
			IDNAPValid:  e.IDNAPValid,
			TR39Allowed: e.TR39Allowed,
			InTable:     e.InConfusables,
		}
		if e.Similarity != nil {
			w.Score = *e.Similarity
		}
		targets[e.Target] = w
	}
	return out
}
