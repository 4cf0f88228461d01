package corpus

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/runenames"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

// Substituter picks a confusable replacement for a canonical character.
type Substituter interface {
	Lookup(canonical rune, nonASCIIOnly bool, exclude map[rune]bool) (rune, bool)
}

// ComposabilityPass emits one row per triple whose TR39 and NFKC predictions
// disagree. The TR39 prediction is the protected target.
func ComposabilityPass(b *Builder, triples []Triple) {
	for _, t := range triples {
		if t.TR39 == t.NFKC {
			continue
		}
		b.Add(Row{
			Identifier:      t.Char,
			Label:           LabelMalicious,
			ProtectedTarget: t.TR39,
			Category:        CategoryDivergence,
			ThreatClass:     ThreatComposability,
			Notes:           fmt.Sprintf("%s tr39=%q nfkc=%q", codepoints(t.Char), t.TR39, t.NFKC),
		})
	}
}

type substitution struct {
	pos  int
	orig rune
	sub  rune
}

func (s substitution) String() string {
	return fmt.Sprintf("pos=%d orig=%c sub=%s (%s)", s.pos, s.orig, confusables.Label(s.sub), runeName(s.sub))
}

// StructuralPass builds substitution, invisible, bidi and combining-mark
// attacks against every protected identifier.
func StructuralPass(b *Builder, idx Substituter, targets []string, marks Marks) {
	for _, target := range targets {
		rs := []rune(target)
		if len(rs) == 0 {
			continue
		}

		subs := pickSubstitutions(idx, rs)
		for _, s := range subs {
			category := CategoryMixedScript
			if s.sub <= unicode.MaxASCII {
				category = CategoryConfusableSingle
			}
			addSubstituted(b, target, rs, category, s)
		}
		if len(subs) >= 2 {
			addSubstituted(b, target, rs, CategoryChain, subs[0], subs[1])
		}

		mid := clampIndex(len(rs)/2, len(rs))
		for _, m := range firstN(marks.Invisible, MaxPerClass) {
			addInsertion(b, target, rs, mid, m, CategoryInvisible, ThreatInvisible)
		}
		for _, m := range firstN(marks.Bidi, MaxPerClass) {
			addInsertion(b, target, rs, mid, m, CategoryBidi, ThreatBidi)
		}

		at := clampIndex(combiningIndex(rs), len(rs))
		for _, m := range firstN(marks.Combining, MaxPerClass) {
			addInsertion(b, target, rs, at, m, CategoryCombining, ThreatCombiningMark)
		}
	}
}

// pickSubstitutions scans left to right and collects up to MaxSubstitutions
// replacements, preferring non-ASCII glyphs and never reusing one.
func pickSubstitutions(idx Substituter, rs []rune) []substitution {
	var subs []substitution
	used := make(map[rune]bool)
	for i, c := range rs {
		if len(subs) == MaxSubstitutions {
			break
		}
		if !confusables.IsCanonical(unicode.ToLower(c)) {
			continue
		}
		sub, ok := idx.Lookup(c, true, used)
		if !ok {
			sub, ok = idx.Lookup(c, false, used)
		}
		if !ok {
			continue
		}
		used[sub] = true
		subs = append(subs, substitution{pos: i, orig: c, sub: sub})
	}
	return subs
}

func addSubstituted(b *Builder, target string, rs []rune, category string, subs ...substitution) {
	out := append([]rune(nil), rs...)
	notes := make([]string, 0, len(subs)+1)
	for _, s := range subs {
		out[s.pos] = s.sub
		notes = append(notes, s.String())
	}
	identifier := string(out)
	if category != CategoryConfusableSingle {
		if p, err := idna.Punycode.ToASCII(identifier); err == nil && p != identifier {
			notes = append(notes, "punycode="+p)
		}
	}
	b.Add(Row{
		Identifier:      identifier,
		Label:           LabelMalicious,
		ProtectedTarget: target,
		Category:        category,
		ThreatClass:     ThreatConfusable,
		Notes:           strings.Join(notes, "; "),
	})
}

func addInsertion(b *Builder, target string, rs []rune, at int, mark rune, category, threat string) {
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:at]...)
	out = append(out, mark)
	out = append(out, rs[at:]...)
	b.Add(Row{
		Identifier:      string(out),
		Label:           LabelMalicious,
		ProtectedTarget: target,
		Category:        category,
		ThreatClass:     threat,
		Notes:           fmt.Sprintf("insert=%s (%s) at=%d", confusables.Label(mark), runeName(mark), at),
	})
}

// combiningIndex is the position right after the first vowel, or 1.
func combiningIndex(rs []rune) int {
	for i, r := range rs {
		if strings.ContainsRune("aeiou", unicode.ToLower(r)) {
			return i + 1
		}
	}
	return 1
}

// clampIndex keeps an insertion point inside [1, n].
func clampIndex(i, n int) int {
	if i < 1 {
		i = 1
	}
	if i > n {
		i = n
	}
	return i
}

func firstN(rs []rune, n int) []rune {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}

// ASCIILookalikePass emits the curated ASCII respellings of each target.
func ASCIILookalikePass(b *Builder, targets []string, variants map[string][]string) {
	for _, target := range targets {
		for _, v := range variants[target] {
			b.Add(Row{
				Identifier:      v,
				Label:           LabelMalicious,
				ProtectedTarget: target,
				Category:        CategoryASCIILookalike,
				ThreatClass:     ThreatASCIILookalike,
				Notes:           "plain ASCII respelling",
			})
		}
	}
}

// BenignPass pairs every benign sample with a protected target, cycling
// through targets by index.
func BenignPass(b *Builder, targets []string, samples []BenignSample) {
	if len(targets) == 0 {
		return
	}
	for i, s := range samples {
		b.Add(Row{
			Identifier:      s.Identifier,
			Label:           LabelBenign,
			ProtectedTarget: targets[i%len(targets)],
			Category:        s.Category,
			ThreatClass:     ThreatControl,
			Notes:           s.Notes,
		})
	}
}

// Inputs gathers everything one corpus run depends on.
type Inputs struct {
	Triples    []Triple
	Index      Substituter
	Protected  []string
	Lookalikes map[string][]string
	Benign     []BenignSample
	Marks      Marks
}

// Generate runs the four passes in order on a fresh builder.
func Generate(in Inputs) *Builder {
	b := NewBuilder()
	ComposabilityPass(b, in.Triples)
	if in.Index != nil {
		StructuralPass(b, in.Index, in.Protected, in.Marks)
	}
	ASCIILookalikePass(b, in.Protected, in.Lookalikes)
	BenignPass(b, in.Protected, in.Benign)
	return b
}

func runeName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "UNNAMED"
}

func codepoints(s string) string {
	labels := make([]string, 0, len(s))
	for _, r := range s {
		labels = append(labels, confusables.Label(r))
	}
	return strings.Join(labels, " ")
}
