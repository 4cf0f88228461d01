// Package corpus synthesizes the labeled homoglyph benchmark: malicious
// identifiers built against a protected-name list plus benign controls.
package corpus

import (
	"fmt"
	"strings"
)

const (
	LabelMalicious = "malicious"
	LabelBenign    = "benign"
)

const (
	CategoryDivergence       = "nfkc-tr39-divergence"
	CategoryConfusableSingle = "confusable-single"
	CategoryMixedScript      = "mixed-script-confusable"
	CategoryChain            = "confusable-chain"
	CategoryInvisible        = "invisible-default-ignorable"
	CategoryBidi             = "invisible-bidi-control"
	CategoryCombining        = "combining-mark-evasion"
	CategoryASCIILookalike   = "ascii-lookalike"
)

const (
	ThreatComposability  = "composability"
	ThreatConfusable     = "confusable"
	ThreatInvisible      = "invisible"
	ThreatBidi           = "bidi"
	ThreatCombiningMark  = "combining-mark"
	ThreatASCIILookalike = "ascii-lookalike"
	ThreatControl        = "control"
)

// Row is one labeled benchmark vector.
type Row struct {
	ID              string `json:"id"`
	Identifier      string `json:"identifier"`
	Label           string `json:"label"`
	ProtectedTarget string `json:"protected_target"`
	Category        string `json:"category"`
	ThreatClass     string `json:"threat_class"`
	Notes           string `json:"notes"`
}

type rowKey struct {
	identifier, label, target, category string
}

func (r Row) key() rowKey {
	return rowKey{r.Identifier, r.Label, r.ProtectedTarget, r.Category}
}

// BuildStats counts rows that did not make it into the corpus.
type BuildStats struct {
	Added      int
	Duplicates int
	Rejected   int
}

// Builder accumulates rows in emission order. Passes receive it explicitly.
type Builder struct {
	rows  []Row
	seen  map[rowKey]struct{}
	stats BuildStats
}

func NewBuilder() *Builder {
	return &Builder{seen: make(map[rowKey]struct{})}
}

// Add validates r, drops it if its (identifier, label, target, category) key
// was already emitted, and otherwise assigns the next sequential ID.
func (b *Builder) Add(r Row) bool {
	if strings.TrimSpace(r.Identifier) == "" || strings.TrimSpace(r.ProtectedTarget) == "" ||
		r.Category == "" || (r.Label != LabelMalicious && r.Label != LabelBenign) {
		b.stats.Rejected++
		return false
	}
	key := r.key()
	if _, ok := b.seen[key]; ok {
		b.stats.Duplicates++
		return false
	}
	b.seen[key] = struct{}{}
	b.stats.Added++
	r.ID = fmt.Sprintf("BV-%05d", b.stats.Added)
	b.rows = append(b.rows, r)
	return true
}

// Rows returns a copy of the accumulated rows.
func (b *Builder) Rows() []Row {
	return append([]Row(nil), b.rows...)
}

func (b *Builder) Len() int {
	return len(b.rows)
}

func (b *Builder) Stats() BuildStats {
	return b.stats
}
