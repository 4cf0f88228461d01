package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sw33tLie/lookalike/internal/utils"
	"github.com/sw33tLie/lookalike/pkg/bucket"
	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/corpus"
	"github.com/sw33tLie/lookalike/pkg/export"
	"github.com/sw33tLie/lookalike/pkg/perceptual"
	"github.com/sw33tLie/lookalike/pkg/whttp"
)

const DefaultConfusablesURL = "https://www.unicode.org/Public/security/latest/confusables.txt"

// Stage selects the parts of a run.
type Stage uint8

const (
	StageTables Stage = 1 << iota
	StageCorpus
	StagePerceptual

	StageAll = StageTables | StageCorpus | StagePerceptual
)

func (s Stage) has(o Stage) bool { return s&o != 0 }

// Config holds every input location for a run.
type Config struct {
	// ConfusablesPath, when set, is read instead of fetching ConfusablesURL.
	ConfusablesPath string
	ConfusablesURL  string
	Proxy           string

	// TablesDir holds a previous tables run; used when StageTables is not selected.
	TablesDir string

	CompositionPath string
	ScoresPath      string
	DiagnosticsPath string

	Package   string
	Protected []string
}

// Result is everything one run produced, rendered and unrendered.
type Result struct {
	// Tables is built by StageTables or read back from Config.TablesDir.
	Tables    *confusables.Resolution
	Rows      []corpus.Row
	Lookup    *perceptual.Lookup
	Weights   map[string]map[string]perceptual.Weight
	Artifacts []export.Artifact
	Summary   Summary
}

// Run executes the selected stages. All prerequisites are checked first and
// nothing is written; the caller persists Result.Artifacts.
func Run(ctx context.Context, cfg Config, stages Stage) (*Result, error) {
	if err := checkPrerequisites(cfg, stages); err != nil {
		return nil, err
	}

	res := &Result{}
	var full *confusables.Map

	if stages.has(StageTables) {
		utils.Log.Info("[tables] loading confusables source")
		src, err := loadSource(ctx, cfg)
		if err != nil {
			return nil, err
		}
		tables, stats, err := BuildTables(src)
		if err != nil {
			return nil, err
		}
		res.Tables = &tables
		res.Summary.Parse = stats
		res.Summary.Resolve = tables.Stats
		res.Summary.FullEntries = tables.Full.Len()
		res.Summary.FilteredEntries = tables.Filtered.Len()
		full = tables.Full

		artifacts, err := TableArtifacts(tables, cfg.Package)
		if err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, artifacts...)
	} else if stages.has(StageCorpus | StagePerceptual) {
		path := filepath.Join(cfg.TablesDir, export.FullTableFile)
		utils.Log.Infof("[tables] reading %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingPrerequisite, err)
		}
		full, err = export.ReadTable(data)
		if err != nil {
			return nil, malformed(path, err)
		}
		filtered, err := readFilteredTable(cfg.TablesDir)
		if err != nil {
			return nil, err
		}
		res.Tables = &confusables.Resolution{Full: full, Filtered: filtered}
	}

	if stages.has(StageCorpus) {
		utils.Log.Info("[corpus] generating benchmark vectors")
		triples, err := loadTriples(cfg, full)
		if err != nil {
			return nil, err
		}
		b := BuildCorpus(full, triples, cfg.Protected)
		res.Rows = b.Rows()
		res.Summary.Corpus = b.Stats()
		res.Summary.CorpusRows = b.Len()

		artifacts, err := CorpusArtifacts(res.Rows)
		if err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, artifacts...)
	}

	if stages.has(StagePerceptual) {
		utils.Log.Info("[perceptual] merging measured scores")
		edges, diags, err := loadPerceptual(cfg, &res.Summary)
		if err != nil {
			return nil, err
		}
		lookup := perceptual.Merge(full, edges, diags)
		weights := perceptual.Weights(edges)
		res.Lookup = &lookup
		res.Weights = weights
		res.Summary.Perceptual = lookup.Meta
		res.Summary.Edges = len(edges)

		artifacts, err := PerceptualArtifacts(lookup, weights)
		if err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, artifacts...)
	}

	for _, a := range res.Artifacts {
		res.Summary.Artifacts = append(res.Summary.Artifacts, a.Name)
	}
	return res, nil
}

// readFilteredTable loads the filtered table written next to the full one.
// It is only needed for persistence, so an absent file yields an empty map.
func readFilteredTable(dir string) (*confusables.Map, error) {
	path := filepath.Join(dir, export.FilteredTableFile)
	ok, err := optionalFile(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return confusables.NewMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := export.ReadTable(data)
	if err != nil {
		return nil, malformed(path, err)
	}
	return m, nil
}

func checkPrerequisites(cfg Config, stages Stage) error {
	if stages.has(StageTables) {
		if cfg.ConfusablesPath != "" {
			if err := requireFile("confusables source", cfg.ConfusablesPath); err != nil {
				return err
			}
		}
	} else if stages.has(StageCorpus | StagePerceptual) {
		if err := requireFile("full confusable table", filepath.Join(cfg.TablesDir, export.FullTableFile)); err != nil {
			return err
		}
	}
	if stages.has(StageCorpus) && cfg.CompositionPath != "" {
		if err := requireFile("composability file", cfg.CompositionPath); err != nil {
			return err
		}
	}
	if stages.has(StagePerceptual) {
		if err := requireFile("perceptual score file", cfg.ScoresPath); err != nil {
			return err
		}
	}
	return nil
}

func loadSource(ctx context.Context, cfg Config) ([]byte, error) {
	if cfg.ConfusablesPath != "" {
		return os.ReadFile(cfg.ConfusablesPath)
	}
	url := cfg.ConfusablesURL
	if url == "" {
		url = DefaultConfusablesURL
	}
	utils.Log.Infof("[tables] fetching %s", url)
	return whttp.Fetch(ctx, url, cfg.Proxy)
}

// BuildTables parses the source, resolves normalization conflicts and merges
// the supplemental overrides.
func BuildTables(src []byte) (confusables.Resolution, confusables.ParseStats, error) {
	candidates, stats, err := confusables.Parse(bytes.NewReader(src))
	if err != nil {
		return confusables.Resolution{}, stats, malformed("confusables source", err)
	}
	res := confusables.Resolve(candidates)
	confusables.MergeSupplemental(&res, confusables.Supplemental)
	return res, stats, nil
}

func loadTriples(cfg Config, full *confusables.Map) ([]corpus.Triple, error) {
	if cfg.CompositionPath == "" {
		utils.Log.Debug("[corpus] no composability file, deriving triples from the full table")
		return corpus.DeriveTriples(full), nil
	}
	data, err := os.ReadFile(cfg.CompositionPath)
	if err != nil {
		return nil, err
	}
	triples, err := corpus.ParseTriples(data)
	if err != nil {
		return nil, malformed(cfg.CompositionPath, err)
	}
	return triples, nil
}

// BuildCorpus runs the four generation passes against the given protected
// identifiers, or the built-in list when none are given.
func BuildCorpus(full *confusables.Map, triples []corpus.Triple, protected []string) *corpus.Builder {
	targets := corpus.NormalizeProtected(protected)
	if len(targets) == 0 {
		targets = corpus.ProtectedIdentifiers
	}
	return corpus.Generate(corpus.Inputs{
		Triples:    triples,
		Index:      bucket.Build(full, bucket.ASCIILookalikes),
		Protected:  targets,
		Lookalikes: corpus.ASCIILookalikes,
		Benign:     corpus.BenignSamples,
		Marks:      corpus.DefaultMarks,
	})
}

func loadPerceptual(cfg Config, sum *Summary) ([]perceptual.ScoredEdge, perceptual.Diagnostics, error) {
	data, err := os.ReadFile(cfg.ScoresPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMissingPrerequisite, err)
	}
	edges, err := perceptual.ParseEdges(data)
	if err != nil {
		return nil, nil, malformed(cfg.ScoresPath, err)
	}

	ok, err := optionalFile(cfg.DiagnosticsPath)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		name := cfg.DiagnosticsPath
		if name == "" {
			name = "diagnostics"
		}
		sum.MissingOptional = append(sum.MissingOptional, name)
		return edges, nil, nil
	}
	data, err = os.ReadFile(cfg.DiagnosticsPath)
	if err != nil {
		return nil, nil, err
	}
	diags, err := perceptual.ParseDiagnostics(data)
	if err != nil {
		return nil, nil, malformed(cfg.DiagnosticsPath, err)
	}
	return edges, diags, nil
}
