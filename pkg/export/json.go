// Package export renders every artifact of a run into bytes and writes the
// finished set into the output directory.
package export

import (
	"bytes"

	"github.com/goccy/go-json"
)

// marshal renders v as indented JSON with a trailing newline. HTML escaping
// is off so code points in comments and identifiers stay readable.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
