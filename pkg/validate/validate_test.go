/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package validate

import (
	"errors"
	"testing"

	"github.com/dburkart/descent/pkg/monkey"
	"github.com/dburkart/descent/pkg/program"
)

func TestCheckProgram(t *testing.T) {
	r, err := Check(GrammarProgram, "main var a : int ; begin a := 1 + 2 end .", Options{})
	if err != nil {
		t.Fatal(err)
	}

	if !r.Accepted || r.Message() != "Success: Program parsed correctly." {
		t.Errorf("wanted acceptance, got '%s'", r.Message())
	}

	if _, ok := r.Location(); ok {
		t.Error("an accepted program has no error location")
	}

	r, _ = Check(GrammarProgram, "main var a : bool ; begin a := 1 end .", Options{})
	if r.Accepted {
		t.Error("wanted rejection")
	}

	loc, ok := r.Location()
	if !ok || loc.Start != 13 || loc.End != 17 {
		t.Errorf("wanted location [13, 17), got %v (%v)", loc, ok)
	}

	if r.Message() != "Error: Expected type 'int' or 'float' (Current: bool)" {
		t.Errorf("unexpected message '%s'", r.Message())
	}
}

func TestCheckMonkey(t *testing.T) {
	r, err := Check(GrammarMonkey, "ой ну ай ух-ти", Options{})
	if err != nil {
		t.Fatal(err)
	}

	if !r.Accepted || r.Population != monkey.SecondPopulation {
		t.Errorf("wanted second population, got %s", r.Population)
	}

	if r.Message() != monkey.SecondPopulation.Message() {
		t.Errorf("unexpected message '%s'", r.Message())
	}

	r, _ = Check(GrammarMonkey, "ух-ти ух-ти", Options{})
	if r.Accepted {
		t.Error("wanted rejection")
	}
}

func TestCheckUnknownGrammar(t *testing.T) {
	_, err := Check("cobol", "", Options{})
	if !errors.Is(err, ErrUnknownGrammar) {
		t.Errorf("wanted ErrUnknownGrammar, got %v", err)
	}

	_, err = Tokenize("cobol", "", Options{})
	if !errors.Is(err, ErrUnknownGrammar) {
		t.Errorf("wanted ErrUnknownGrammar, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(GrammarProgram, "a := 1.5 $", Options{})
	if err != nil {
		t.Fatal(err)
	}

	want := []program.TokenType{program.TOK_IDENTIFIER, program.TOK_ASSIGN, program.TOK_NUMBER, program.TOK_INVALID, program.TOK_EOF}
	if len(tokens) != len(want) {
		t.Fatalf("wanted %d tokens, got %d", len(want), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: wanted %s, got %s", i, want[i].ToString(), tok.Type.ToString())
		}
	}

	tokens, _ = Tokenize(GrammarMonkey, "ау банан ку", Options{UnknownAsEOF: true})
	if len(tokens) != 2 {
		t.Fatalf("wanted the unknown word to end the stream, got %d tokens", len(tokens))
	}
	if tokens[1].Type != monkey.TOK_EOF || tokens[1].Lexeme != "банан" {
		t.Errorf("wanted the unknown word as the end of input token, got %s '%s'", tokens[1].Type.ToString(), tokens[1].Lexeme)
	}
}
