// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffviz runs the Huffman coding pipeline for a visualizer.
//
// Each call to Visualize computes, from scratch, every artifact that a
// visualization layer draws: the frequency table, the tree and the merge
// steps that built it, the code table, the encoded payload, and the size
// statistics. Results are never modified after they are returned, so they may
// be kept or shared freely while the next input is being processed.
package huffviz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/dsnet/huffviz/huffman"
	"github.com/dsnet/huffviz/internal/errors"
)

// Unit determines how text is split into symbols.
type Unit int

const (
	UnitRune Unit = iota // One symbol per Unicode scalar value
	UnitByte             // One symbol per byte
)

func (u Unit) String() string {
	switch u {
	case UnitRune:
		return "rune"
	case UnitByte:
		return "byte"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit parses the name of a Unit as returned by Unit.String.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "rune", "":
		return UnitRune, nil
	case "byte":
		return UnitByte, nil
	}
	return 0, errors.New("huffviz", errors.Invalid, "unknown unit %q", s)
}

// Config configures the pipeline. The zero value is ready to use.
type Config struct {
	// Unit determines how text is split into symbols.
	Unit Unit

	// Logger receives a debug entry for every run.
	// If nil, the standard logrus logger is used.
	Logger logrus.FieldLogger

	// SkipVerify disables decoding the payload to check that it reproduces
	// the input.
	SkipVerify bool
}

// Result holds every artifact produced for a single input text.
// A Result may be shared once returned, so callers must treat it and the
// slices it holds as read-only.
type Result struct {
	Text    string
	Empty   bool // The text had no symbols, so there is no tree, code table, or payload
	Symbols []huffman.Symbol
	Freqs   huffman.FrequencyTable
	Tree    *huffman.Tree
	Steps   []huffman.Step
	Codes   huffman.CodeTable
	Payload huffman.Payload
	Stats   huffman.SizeStats
}

// Visualize runs the pipeline with the default configuration.
func Visualize(text string) (*Result, error) {
	return Config{}.Visualize(text)
}

// Visualize runs the pipeline on text.
//
// If text holds no symbols, it returns a Result with Empty set along with an
// error that satisfies huffman.IsEmptyInput.
func (c Config) Visualize(text string) (*Result, error) {
	log := c.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := &Result{Text: text}
	switch c.Unit {
	case UnitRune:
		if !utf8.ValidString(text) {
			return nil, errors.New("huffviz", errors.Invalid, "text is not valid UTF-8; use the byte unit")
		}
		r.Symbols = huffman.Runes(text)
	case UnitByte:
		r.Symbols = huffman.Bytes([]byte(text))
	default:
		return nil, errors.New("huffviz", errors.Invalid, "unknown unit %v", c.Unit)
	}

	r.Freqs = huffman.Count(r.Symbols)
	var err error
	r.Tree, r.Steps, err = huffman.Build(r.Freqs)
	if huffman.IsEmptyInput(err) {
		r.Empty = true
		log.Debug("nothing to visualize")
		return r, fmt.Errorf("huffviz: build: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("huffviz: build: %w", err)
	}
	if r.Codes, err = huffman.Generate(r.Tree); err != nil {
		return nil, fmt.Errorf("huffviz: generate: %w", err)
	}
	if r.Payload, err = huffman.Encode(r.Symbols, r.Codes); err != nil {
		return nil, fmt.Errorf("huffviz: encode: %w", err)
	}
	r.Stats = huffman.Report(len(r.Symbols), r.Payload)

	fields := logrus.Fields{
		"unit":     c.Unit,
		"symbols":  len(r.Symbols),
		"distinct": r.Freqs.Len(),
		"merges":   len(r.Steps),
		"depth":    r.Tree.Depth(),
		"bits":     r.Payload.Len(),
		"saved":    fmt.Sprintf("%.2f%%", r.Stats.Saved),
	}
	if !c.SkipVerify {
		if err := r.verify(); err != nil {
			log.WithFields(fields).WithError(err).Warn("round trip failed")
			return nil, err
		}
	}
	log.WithFields(fields).Debug("visualized")
	return r, nil
}

// verify checks that decoding the payload reproduces the symbols.
func (r *Result) verify() error {
	syms, err := huffman.Decode(r.Payload, r.Tree)
	if err != nil {
		return fmt.Errorf("huffviz: verify: %w", err)
	}
	if len(syms) != len(r.Symbols) {
		return errors.New("huffviz", errors.Internal, "decoded %d symbols, want %d", len(syms), len(r.Symbols))
	}
	for i := range syms {
		if syms[i] != r.Symbols[i] {
			return errors.New("huffviz", errors.Internal, "decoded %v at position %d, want %v", syms[i], i, r.Symbols[i])
		}
	}
	return nil
}

// EncodedString renders the payload as a string of '0' and '1' characters.
func (r *Result) EncodedString() string { return r.Payload.String() }
