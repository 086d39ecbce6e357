/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package validate

import (
	"strings"

	"github.com/dburkart/descent/pkg/common/parse"
	"github.com/dburkart/descent/pkg/monkey"
	"github.com/dburkart/descent/pkg/program"
	"github.com/pkg/errors"
)

const (
	GrammarProgram = "program"
	GrammarMonkey  = "monkey"
)

var Grammars = []string{GrammarProgram, GrammarMonkey}

var ErrUnknownGrammar = errors.New("unknown grammar")

const programAccepted = "Success: Program parsed correctly."

type Options struct {
	Trace        parse.TraceFunc
	UnknownAsEOF bool
}

// Result is the verdict of a single parse session.
type Result struct {
	Grammar    string
	Accepted   bool
	Population monkey.Population
	Err        error
}

// Message is the fixed human-readable line reported for the result.
func (r Result) Message() string {
	if r.Grammar == GrammarMonkey {
		return r.Population.Message()
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return programAccepted
}

// Location returns where a program was rejected, if it was.
func (r Result) Location() (parse.Location, bool) {
	var syntaxError *parse.SyntaxError
	if errors.As(r.Err, &syntaxError) {
		return syntaxError.Token.Location, true
	}

	var lexicalError *parse.LexicalError
	if errors.As(r.Err, &lexicalError) {
		return lexicalError.Token.Location, true
	}

	return parse.Location{}, false
}

// Check runs a fresh parse session for grammar over input.
func Check(grammar, input string, opts Options) (Result, error) {
	switch grammar {
	case GrammarProgram:
		p := program.Parser{
			Scanner: program.NewScanner(strings.NewReader(input)),
			Trace:   opts.Trace,
		}
		err := p.Parse()
		return Result{Grammar: grammar, Accepted: err == nil, Err: err}, nil
	case GrammarMonkey:
		population := monkey.Classify(input, monkey.Options{
			UnknownAsEOF: opts.UnknownAsEOF,
			Trace:        opts.Trace,
		})
		return Result{
			Grammar:    grammar,
			Accepted:   population != monkey.UnknownPopulation,
			Population: population,
		}, nil
	}

	return Result{}, errors.Wrapf(ErrUnknownGrammar, "'%s'", grammar)
}

// Tokenize returns every token of input up to and including the end of
// input token.
func Tokenize(grammar, input string, opts Options) ([]parse.Token, error) {
	var next func() parse.Token
	var eof parse.TokenType

	switch grammar {
	case GrammarProgram:
		s := program.NewScanner(strings.NewReader(input))
		next, eof = s.NextToken, program.TOK_EOF
	case GrammarMonkey:
		s := monkey.NewScanner(strings.NewReader(input))
		s.UnknownAsEOF = opts.UnknownAsEOF
		next, eof = s.NextToken, monkey.TOK_EOF
	default:
		return nil, errors.Wrapf(ErrUnknownGrammar, "'%s'", grammar)
	}

	tokens := []parse.Token{}
	for {
		tok := next()
		tokens = append(tokens, tok)
		if tok.Type == eof {
			return tokens, nil
		}
	}
}
