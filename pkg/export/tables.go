package export

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

var ErrMalformedTable = errors.New("malformed confusable table")

type tableEntry struct {
	Codepoint string `json:"codepoint"`
	Char      string `json:"char"`
	Target    string `json:"target"`
	Comment   string `json:"comment,omitempty"`
}

type tableBlock struct {
	Block   string       `json:"block"`
	Entries []tableEntry `json:"entries"`
}

type tableFile struct {
	Count  int          `json:"count"`
	Blocks []tableBlock `json:"blocks"`
}

// TableJSON renders m grouped by Unicode block in code point order.
func TableJSON(m *confusables.Map) ([]byte, error) {
	out := tableFile{Count: m.Len(), Blocks: []tableBlock{}}
	for _, g := range confusables.GroupByBlock(m.Entries()) {
		block := tableBlock{Block: g.Block}
		for _, e := range g.Entries {
			block.Entries = append(block.Entries, tableEntry{
				Codepoint: e.Codepoint(),
				Char:      string(e.Source),
				Target:    string(e.Target),
				Comment:   e.Comment,
			})
		}
		out.Blocks = append(out.Blocks, block)
	}
	return marshal(out)
}

// ReadTable parses a file produced by TableJSON back into a map.
func ReadTable(data []byte) (*confusables.Map, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedTable)
	}
	root := gjson.ParseBytes(data)
	blocks := root.Get("blocks")
	if !root.IsObject() || !blocks.IsArray() {
		return nil, fmt.Errorf("%w: expected an object with a blocks array", ErrMalformedTable)
	}

	m := confusables.NewMap()
	for _, block := range blocks.Array() {
		for _, rec := range block.Get("entries").Array() {
			source := []rune(rec.Get("char").String())
			target := []rune(rec.Get("target").String())
			if len(source) != 1 || len(target) != 1 || !confusables.IsCanonical(target[0]) {
				return nil, fmt.Errorf("%w: bad entry %s", ErrMalformedTable, rec.Get("codepoint").String())
			}
			m.Add(confusables.Entry{Source: source[0], Target: target[0], Comment: rec.Get("comment").String()})
		}
	}
	if count := root.Get("count"); count.Exists() && int(count.Int()) != m.Len() {
		return nil, fmt.Errorf("%w: count %d does not match %d entries", ErrMalformedTable, count.Int(), m.Len())
	}
	return m, nil
}
