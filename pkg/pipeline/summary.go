package pipeline

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/corpus"
	"github.com/sw33tLie/lookalike/pkg/perceptual"
)

// Summary carries the non-fatal counters of a run.
type Summary struct {
	Parse           confusables.ParseStats
	Resolve         confusables.ResolveStats
	FullEntries     int
	FilteredEntries int
	Corpus          corpus.BuildStats
	CorpusRows      int
	Perceptual      perceptual.Meta
	Edges           int
	MissingOptional []string
	Artifacts       []string
}

// Log writes the counters that were filled in by the stages that ran.
func (s Summary) Log(log logrus.FieldLogger) {
	if s.Parse.Lines > 0 {
		log.WithFields(logrus.Fields{
			"lines":    s.Parse.Lines,
			"accepted": s.Parse.Accepted,
			"skipped":  s.Parse.SkippedTotal(),
		}).Info("[tables] parsed source")

		reasons := make([]confusables.SkipReason, 0, len(s.Parse.Skipped))
		for r := range s.Parse.Skipped {
			reasons = append(reasons, r)
		}
		sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
		for _, r := range reasons {
			log.Debugf("[tables] skipped %d lines: %s", s.Parse.Skipped[r], r)
		}
	}
	if s.FullEntries > 0 {
		log.WithFields(logrus.Fields{
			"full":         s.FullEntries,
			"filtered":     s.FilteredEntries,
			"redundant":    s.Resolve.Redundant,
			"conflicts":    s.Resolve.Conflicts,
			"handled":      s.Resolve.Handled,
			"duplicates":   s.Resolve.Duplicates,
			"supplemental": s.Resolve.SupplementalAdded,
		}).Info("[tables] resolved")
	}
	if s.CorpusRows > 0 {
		log.WithFields(logrus.Fields{
			"rows":       s.CorpusRows,
			"duplicates": s.Corpus.Duplicates,
			"rejected":   s.Corpus.Rejected,
		}).Info("[corpus] generated")
	}
	if s.Edges > 0 || s.Perceptual.TotalPairs > 0 {
		log.WithFields(logrus.Fields{
			"edges":         s.Edges,
			"pairs":         s.Perceptual.TotalPairs,
			"sources":       s.Perceptual.DistinctSources,
			"authoritative": s.Perceptual.Authoritative,
			"novel":         s.Perceptual.Novel,
		}).Info("[perceptual] merged")
	}
	for _, m := range s.MissingOptional {
		log.Warnf("optional input missing: %s", m)
	}
}
