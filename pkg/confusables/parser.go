package confusables

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedInput is returned when the table cannot be read as a whole.
// Individual bad lines are skipped, not reported through this error.
var ErrMalformedInput = errors.New("malformed confusables input")

// SkipReason says why a data line produced no candidate.
type SkipReason int

const (
	Accepted SkipReason = iota
	SkipIgnored           // blank or comment line
	SkipMalformed         // missing fields or bad hex
	SkipBasicLatin        // source is already ASCII
	SkipMultiCodepoint    // target decodes to more than one code point
	SkipNotAlphanumeric   // target is not a Latin letter or decimal digit
)

func (r SkipReason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case SkipIgnored:
		return "ignored"
	case SkipMalformed:
		return "malformed"
	case SkipBasicLatin:
		return "basic-latin"
	case SkipMultiCodepoint:
		return "multi-codepoint"
	case SkipNotAlphanumeric:
		return "not-alphanumeric"
	}
	return "unknown"
}

// ParseStats counts the outcome of every non-ignored line.
type ParseStats struct {
	Lines    int
	Accepted int
	Skipped  map[SkipReason]int
}

// SkippedTotal is the number of data lines that produced no candidate.
func (s ParseStats) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// ParseLine turns one line of confusables.txt into a candidate entry.
// Format: SOURCE_HEX ; TARGET_HEX[ TARGET_HEX...] ; TYPE [# comment]
func ParseLine(line string) (Entry, SkipReason) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, SkipIgnored
	}

	var comment string
	if i := strings.Index(line, "#"); i >= 0 {
		comment = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[i+1:]), "#"))
		line = line[:i]
	}

	fields := strings.Split(line, ";")
	if len(fields) < 3 {
		return Entry{}, SkipMalformed
	}

	source, err := parseHex(fields[0])
	if err != nil {
		return Entry{}, SkipMalformed
	}
	if source <= unicode.MaxASCII {
		return Entry{}, SkipBasicLatin
	}

	targets := strings.Fields(fields[1])
	if len(targets) == 0 {
		return Entry{}, SkipMalformed
	}
	if len(targets) > 1 {
		return Entry{}, SkipMultiCodepoint
	}
	target, err := parseHex(targets[0])
	if err != nil {
		return Entry{}, SkipMalformed
	}

	switch {
	case target >= 'A' && target <= 'Z':
		target += 'a' - 'A'
	case IsCanonical(target):
	default:
		return Entry{}, SkipNotAlphanumeric
	}

	return Entry{Source: source, Target: target, Comment: comment}, Accepted
}

func parseHex(s string) (rune, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, err
	}
	if v > unicode.MaxRune {
		return 0, fmt.Errorf("code point %X out of range", v)
	}
	return rune(v), nil
}

// Parse reads a whole confusables table and returns its candidates in file
// order. Duplicate sources are kept here; Resolve deduplicates them.
func Parse(r io.Reader) ([]Entry, ParseStats, error) {
	stats := ParseStats{Skipped: make(map[SkipReason]int)}
	var out []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		e, reason := ParseLine(scanner.Text())
		if reason == SkipIgnored {
			continue
		}
		stats.Lines++
		if reason != Accepted {
			stats.Skipped[reason]++
			continue
		}
		stats.Accepted++
		out = append(out, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return out, stats, nil
}
