package pipeline

import (
	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/corpus"
	"github.com/sw33tLie/lookalike/pkg/export"
	"github.com/sw33tLie/lookalike/pkg/perceptual"
)

const DefaultPackage = "confusables"

func TableArtifacts(res confusables.Resolution, pkg string) ([]export.Artifact, error) {
	if pkg == "" {
		pkg = DefaultPackage
	}
	full, err := export.TableJSON(res.Full)
	if err != nil {
		return nil, err
	}
	filtered, err := export.TableJSON(res.Filtered)
	if err != nil {
		return nil, err
	}
	src, err := export.GoSource(pkg, res.Full, res.Filtered)
	if err != nil {
		return nil, err
	}
	return []export.Artifact{
		{Name: export.FullTableFile, Data: full},
		{Name: export.FilteredTableFile, Data: filtered},
		{Name: export.GoTableFile, Data: src},
	}, nil
}

func CorpusArtifacts(rows []corpus.Row) ([]export.Artifact, error) {
	js, err := export.CorpusJSON(rows)
	if err != nil {
		return nil, err
	}
	csv, err := export.CorpusCSV(rows)
	if err != nil {
		return nil, err
	}
	return []export.Artifact{
		{Name: export.CorpusJSONFile, Data: js},
		{Name: export.CorpusCSVFile, Data: csv},
	}, nil
}

func PerceptualArtifacts(lookup perceptual.Lookup, weights map[string]map[string]perceptual.Weight) ([]export.Artifact, error) {
	l, err := export.LookupJSON(lookup)
	if err != nil {
		return nil, err
	}
	w, err := export.WeightsJSON(weights)
	if err != nil {
		return nil, err
	}
	return []export.Artifact{
		{Name: export.LookupFile, Data: l},
		{Name: export.WeightsFile, Data: w},
	}, nil
}
