/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package monkey

import (
	"io"
	"strings"

	"github.com/dburkart/descent/pkg/common/parse"
	"github.com/pkg/errors"
)

type Population int

const (
	UnknownPopulation Population = iota
	FirstPopulation
	SecondPopulation
)

func (p Population) String() string {
	switch p {
	case FirstPopulation:
		return "first"
	case SecondPopulation:
		return "second"
	}
	return "unknown"
}

// Message is the fixed report line for a population.
func (p Population) Message() string {
	switch p {
	case FirstPopulation:
		return ">> This is the FIRST population!"
	case SecondPopulation:
		return ">> This is the SECOND population!"
	}
	return ">> Unknown species (matches neither grammar)."
}

// Options tune how speech is classified.
type Options struct {
	UnknownAsEOF bool

	// Trace observes the words consumed by each recognizer in turn.
	Trace parse.TraceFunc
}

// Classify runs both recognizers over input, each on a fresh scanner. The
// first population wins when both accept.
func Classify(input string, opts Options) Population {
	first := Recognizer{Scanner: newScanner(input, opts), Trace: opts.Trace}
	if first.Parse() {
		return FirstPopulation
	}

	second := SecondRecognizer{Scanner: newScanner(input, opts), Trace: opts.Trace}
	if second.Parse() {
		return SecondPopulation
	}

	return UnknownPopulation
}

// ClassifyReader reads all of r before classifying it, since both
// recognizers need their own pass over the input.
func ClassifyReader(r io.Reader, opts Options) (Population, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return UnknownPopulation, errors.Wrap(err, "unable to read speech")
	}
	return Classify(string(b), opts), nil
}

func newScanner(input string, opts Options) *Scanner {
	s := NewScanner(strings.NewReader(input))
	s.UnknownAsEOF = opts.UnknownAsEOF
	return s
}
