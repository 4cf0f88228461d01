// Package pipeline runs the table, corpus and perceptual stages for one run
// and renders their artifacts.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/corpus"
	"github.com/sw33tLie/lookalike/pkg/export"
	"github.com/sw33tLie/lookalike/pkg/perceptual"
)

var (
	// ErrMissingPrerequisite means a required input file is absent. It is
	// always reported before any output is written.
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrMalformedInput means an input failed a structural check.
	ErrMalformedInput = errors.New("malformed input")
)

// IsMalformed reports whether err came from any input parser.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, confusables.ErrMalformedInput) ||
		errors.Is(err, perceptual.ErrMalformedInput) ||
		errors.Is(err, corpus.ErrMalformedInput) ||
		errors.Is(err, export.ErrMalformedTable)
}

func malformed(what string, err error) error {
	return fmt.Errorf("%s: %w: %w", what, ErrMalformedInput, err)
}

func requireFile(what, path string) error {
	if path == "" {
		return fmt.Errorf("%w: no %s configured", ErrMissingPrerequisite, what)
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s %s does not exist", ErrMissingPrerequisite, what, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s %s is a directory", ErrMissingPrerequisite, what, path)
	}
	return nil
}

func optionalFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
