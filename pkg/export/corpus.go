package export

import (
	"bytes"
	"encoding/csv"

	"github.com/sw33tLie/lookalike/pkg/corpus"
)

var csvHeader = []string{"id", "identifier", "label", "protected_target", "category", "threat_class", "notes"}

// CorpusJSON renders rows as a JSON array in emission order.
func CorpusJSON(rows []corpus.Row) ([]byte, error) {
	if rows == nil {
		rows = []corpus.Row{}
	}
	return marshal(rows)
}

// CorpusCSV renders rows with a header line, same column order as the JSON.
func CorpusCSV(rows []corpus.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.ID, r.Identifier, r.Label, r.ProtectedTarget, r.Category, r.ThreatClass, r.Notes}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
