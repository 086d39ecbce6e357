/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package monkey

import (
	"github.com/dburkart/descent/pkg/common/parse"
)

// Recognizer accepts the speech of the first population. It gives no
// diagnostics: any mismatch rejects the whole input.
type Recognizer struct {
	Scanner *Scanner
	Trace   parse.TraceFunc

	current parse.Token
}

// Parse reports whether the input is a rule1 followed by end of input.
// Empty input is rejected since rule3 has no empty alternative.
func (r *Recognizer) Parse() bool {
	r.current = r.Scanner.NextToken()
	return r.rule1() && r.current.Type == TOK_EOF
}

func (r *Recognizer) advance() {
	if r.Trace != nil && r.current.Type != TOK_EOF {
		r.Trace(r.current)
	}
	r.current = r.Scanner.NextToken()
}

func (r *Recognizer) match(t TokenType) bool {
	if r.current.Type != t {
		return false
	}
	r.advance()
	return true
}

// rule1
//
// Grammar:
//
//	rule1           = rule2 rule1'
func (r *Recognizer) rule1() bool {
	if !r.rule2() {
		return false
	}
	return r.rule1Prime()
}

// rule1Prime
//
// Grammar:
//
//	rule1'          = "ау" rule2 rule1' / ""
func (r *Recognizer) rule1Prime() bool {
	for r.match(TOK_AU) {
		if !r.rule2() {
			return false
		}
	}
	return true
}

// rule2
//
// Grammar:
//
//	rule2           = rule3 rule2'
func (r *Recognizer) rule2() bool {
	if !r.rule3() {
		return false
	}
	return r.rule2Prime()
}

// rule2Prime
//
// Grammar:
//
//	rule2'          = "ку" rule3 rule2' / ""
func (r *Recognizer) rule2Prime() bool {
	for r.match(TOK_KU) {
		if !r.rule3() {
			return false
		}
	}
	return true
}

// rule3
//
// Grammar:
//
//	rule3           = "ух-ти" / "хо" rule3 / "ну" rule1 "и-ну"
func (r *Recognizer) rule3() bool {
	switch {
	case r.match(TOK_UH_TI):
		return true
	case r.match(TOK_HO):
		return r.rule3()
	case r.match(TOK_NU):
		return r.rule1() && r.match(TOK_I_NU)
	}
	return false
}
