package export

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	FullTableFile     = "confusables_full.json"
	FilteredTableFile = "confusables_filtered.json"
	GoTableFile       = "confusables_table.go"
	CorpusJSONFile    = "benchmark.json"
	CorpusCSVFile     = "benchmark.csv"
	LookupFile        = "perceptual_lookup.json"
	WeightsFile       = "confusable_weights.json"
)

// Artifact is one fully rendered output file.
type Artifact struct {
	Name string
	Data []byte
}

// WriteAll stages every artifact in dir under a temporary name and only
// renames them into place once all of them were written. On failure the
// staged files are removed and no existing output is touched.
func WriteAll(dir string, artifacts []Artifact) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	staged := make([]string, 0, len(artifacts))
	defer func() {
		if err != nil {
			for _, tmp := range staged {
				_ = os.Remove(tmp)
			}
		}
	}()

	for _, a := range artifacts {
		f, err := os.CreateTemp(dir, "."+a.Name+".*.tmp")
		if err != nil {
			return fmt.Errorf("stage %s: %w", a.Name, err)
		}
		staged = append(staged, f.Name())
		if _, err := f.Write(a.Data); err != nil {
			f.Close()
			return fmt.Errorf("stage %s: %w", a.Name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("stage %s: %w", a.Name, err)
		}
		if err := os.Chmod(f.Name(), 0o644); err != nil {
			return fmt.Errorf("stage %s: %w", a.Name, err)
		}
	}

	for i, a := range artifacts {
		if err := os.Rename(staged[i], filepath.Join(dir, a.Name)); err != nil {
			return fmt.Errorf("write %s: %w", a.Name, err)
		}
	}
	return nil
}
