package export

import (
	"github.com/sw33tLie/lookalike/pkg/perceptual"
)

// LookupJSON renders the merged perceptual lookup. Map keys are emitted in
// sorted order.
func LookupJSON(l perceptual.Lookup) ([]byte, error) {
	if l.Entries == nil {
		l.Entries = map[string][]perceptual.RankedEntry{}
	}
	return marshal(l)
}

// WeightsJSON renders the compact weight table.
func WeightsJSON(w map[string]map[string]perceptual.Weight) ([]byte, error) {
	if w == nil {
		w = map[string]map[string]perceptual.Weight{}
	}
	return marshal(w)
}
