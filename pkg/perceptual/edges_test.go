package perceptual

import (
	"errors"
	"testing"
)

func TestParseEdges(t *testing.T) {
	data := []byte(`{"edges": [
		{"source": "а", "target": "a", "similarity": 1.7, "cost": 0.05, "in_confusables": true, "codepoint": "U+0430"},
		{"source": "ɑ", "target": "A", "ssim": 0.912345, "xid_continue": true},
		{"source": "ꓲ", "target": "l", "score": -0.2},
		{"source": "ʋ", "target": "v"}
	]}`)

	edges, err := ParseEdges(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	if *edges[0].Similarity != 1 {
		t.Fatalf("expected similarity clamped to 1, got %v", *edges[0].Similarity)
	}
	if edges[0].Cost == nil || *edges[0].Cost != 0.05 || !edges[0].InConfusables {
		t.Fatalf("unexpected first edge %+v", edges[0])
	}
	if *edges[1].Similarity != 0.9123 {
		t.Fatalf("expected ssim fallback rounded to 0.9123, got %v", *edges[1].Similarity)
	}
	if *edges[2].Similarity != 0 {
		t.Fatalf("expected negative score clamped to 0, got %v", *edges[2].Similarity)
	}
	if edges[3].Similarity != nil {
		t.Fatalf("expected unscored edge, got %v", *edges[3].Similarity)
	}
}

func TestParseEdgesTopLevelArray(t *testing.T) {
	edges, err := ParseEdges([]byte(`[{"source": "о", "target": "o", "similarity": 0.99}]`))
	if err != nil || len(edges) != 1 {
		t.Fatalf("expected one edge, got %d (%v)", len(edges), err)
	}
}

func TestParseEdgesMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"edges": [`,
		"wrong container": `{"pairs": []}`,
		"scalar":          `42`,
		"string score":    `[{"source": "о", "target": "o", "similarity": "high"}]`,
		"missing target":  `[{"source": "о"}]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseEdges([]byte(data)); !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestParseDiagnosticsKeepsWidestRatio(t *testing.T) {
	data := []byte(`{
		"flagged": [{"source": "а", "target": "a", "width_ratio": 1.02, "height_ratio": 0.98}],
		"clean": [
			{"source": "а", "target": "a", "width_ratio": 1.10, "height_ratio": 1.0},
			{"source": "о", "target": "o", "width_ratio": 0.9, "height_ratio": 0.95}
		]
	}`)
	d, err := ParseDiagnostics(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := d.Get("а", "a")
	if !ok || r.Width != 1.10 || r.Height != 1.0 {
		t.Fatalf("expected widest ratio for а, got %+v (present=%v)", r, ok)
	}
	if _, ok := d.Get("о", "o"); !ok {
		t.Fatalf("expected ratio for о")
	}
}
