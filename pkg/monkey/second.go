/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package monkey

import (
	"github.com/dburkart/descent/pkg/common/parse"
)

// SecondRecognizer accepts the speech of the second population. Unlike
// Recognizer it keeps no current token and works straight off the scanner,
// peeking wherever a rule has to choose.
type SecondRecognizer struct {
	Scanner *Scanner
	Trace   parse.TraceFunc
}

func (r *SecondRecognizer) Parse() bool {
	return r.rule1() && r.next().Type == TOK_EOF
}

func (r *SecondRecognizer) next() parse.Token {
	tok := r.Scanner.NextToken()
	if r.Trace != nil && tok.Type != TOK_EOF {
		r.Trace(tok)
	}
	return tok
}

func (r *SecondRecognizer) expect(t TokenType) bool {
	return r.next().Type == t
}

// rule1
//
// Grammar:
//
//	rule1           = "ой" rule2 "ай" rule3
func (r *SecondRecognizer) rule1() bool {
	return r.expect(TOK_OI) && r.rule2() && r.expect(TOK_AI) && r.rule3()
}

// rule2
//
// Grammar:
//
//	rule2           = 1*"ну"
func (r *SecondRecognizer) rule2() bool {
	if !r.expect(TOK_NU) {
		return false
	}
	for r.Scanner.PeekToken().Type == TOK_NU {
		r.next()
	}
	return true
}

// rule3
//
// Grammar:
//
//	rule3           = "ух-ти" / "хо" rule3 "хо"
func (r *SecondRecognizer) rule3() bool {
	switch r.Scanner.PeekToken().Type {
	case TOK_UH_TI:
		r.next()
		return true
	case TOK_HO:
		r.next()
		return r.rule3() && r.expect(TOK_HO)
	}
	return false
}
