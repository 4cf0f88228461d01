package export

import (
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"github.com/sw33tLie/lookalike/pkg/confusables"
)

// GoSource renders both maps as a Go file in package pkg, so a validator can
// compile the tables in rather than load them at startup.
func GoSource(pkg string, full, filtered *confusables.Map) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by lookalike tables. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	writeMap(&b, "ConfusableMap",
		"maps every known lookalike code point to the ASCII letter or digit it imitates.",
		full)
	b.WriteString("\n")
	writeMap(&b, "FilteredConfusableMap",
		"holds the entries NFKC normalization followed by lowercasing does not already resolve.",
		filtered)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated table: %w", err)
	}
	return src, nil
}

func writeMap(b *strings.Builder, name, doc string, m *confusables.Map) {
	fmt.Fprintf(b, "// %s %s\n", name, doc)
	fmt.Fprintf(b, "var %s = map[rune]rune{\n", name)
	for i, g := range confusables.GroupByBlock(m.Entries()) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "// %s\n", g.Block)
		for _, e := range g.Entries {
			fmt.Fprintf(b, "0x%04X: '%c', // %s\n", e.Source, e.Target, describe(e.Source))
		}
	}
	b.WriteString("}\n")
}

// describe names r for a source comment. The glyph itself is only shown when
// it prints on its own.
func describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		name = confusables.Label(r)
	}
	if unicode.IsGraphic(r) && !unicode.Is(unicode.M, r) && !unicode.IsSpace(r) {
		return string(r) + " " + name
	}
	return name
}
