/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"strconv"
	"testing"
)

type testType int

func (t testType) ToString() string {
	return "TEST_" + strconv.Itoa(int(t))
}

func counter() (func() Token, *int) {
	calls := 0
	return func() Token {
		calls++
		return Token{Type: testType(calls), Lexeme: strconv.Itoa(calls)}
	}, &calls
}

func TestLookaheadPeekThenNext(t *testing.T) {
	emit, calls := counter()
	var l Lookahead

	peeked := l.Peek(emit)
	again := l.Peek(emit)
	if peeked != again {
		t.Errorf("repeated peek changed token: %v vs %v", peeked, again)
	}

	next := l.Next(emit)
	if next != peeked {
		t.Errorf("wanted Next to return the peeked token %v, got %v", peeked, next)
	}

	if *calls != 1 {
		t.Errorf("wanted exactly one scan for peek+next, got %d", *calls)
	}

	if after := l.Next(emit); after.Lexeme != "2" || *calls != 2 {
		t.Errorf("slot should be empty after Next, got '%s' after %d scans", after.Lexeme, *calls)
	}
}

func TestLookaheadNextWithoutPeek(t *testing.T) {
	emit, calls := counter()
	var l Lookahead

	first := l.Next(emit)
	second := l.Next(emit)

	if first.Lexeme != "1" || second.Lexeme != "2" {
		t.Errorf("wanted tokens 1 and 2, got '%s' and '%s'", first.Lexeme, second.Lexeme)
	}

	if *calls != 2 {
		t.Errorf("wanted 2 scans, got %d", *calls)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	err := NewSyntaxError(Token{Lexeme: "bool", Location: Location{Start: 13, End: 17}}, "Expected type 'int' or 'float'")

	want := "Error: Expected type 'int' or 'float' (Current: bool)"
	if err.Error() != want {
		t.Errorf("wanted '%s', got '%s'", want, err.Error())
	}
}

func TestLexicalErrorMessage(t *testing.T) {
	err := NewLexicalError(Token{Lexeme: "$", Location: Location{Start: 4, End: 5}})

	want := "Error: Lexical error: $ (Current: $)"
	if err.Error() != want {
		t.Errorf("wanted '%s', got '%s'", want, err.Error())
	}
}

func TestFormatError(t *testing.T) {
	input := "main\nvar a : bool ;"
	err := NewSyntaxError(Token{Lexeme: "bool", Location: Location{Start: 13, End: 17}}, "Expected type")

	want := "Syntax error found in input:\nvar a : bool ;\n        ^~~~ Expected type\n"
	if got := err.FormatError(input); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}
