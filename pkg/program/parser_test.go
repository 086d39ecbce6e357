/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package program

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/dburkart/descent/pkg/common/parse"
)

func TestParseAccepts(t *testing.T) {
	inputs := []string{
		"main var a : int ; begin a := 1 + 2 end .",
		"main var a : int ; begin a := 1 + 2 ; end .",
		"main var a : int ; begin a := 1 + 2 ; end end .",
		"main var a, b, c : float ; begin a := b * c ; b := -(a + 1.5) ; end .",
		"main const x = 1 ; y = x * 2 ; var z : int ; begin z := x + y end .",
		"main var a : int ; const k = -k ; begin a := ((a)) ; end .",
		"main\n\tvar a : int;\nbegin\n\ta := 1.2.3;\nend.",
	}

	for _, input := range inputs {
		if err := Parse(input); err != nil {
			t.Errorf("%q: wanted acceptance, got %s", input, err)
		}
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		input   string
		message string
		current string
	}{
		{"main var a : bool ; begin a := 1 end .", "Expected type 'int' or 'float'", "bool"},
		{"main var a : int begin a := 1 end .", "Expected ';' after declarations", "begin"},
		{"var a : int ; begin a := 1 end .", "Expected 'main'", "var"},
		{"main var a : int ; begin a := 1 end", "Expected '.'", ""},
		{"main var a : int ; begin a := 1 end . end", "Extra tokens after end of program", "end"},
		{"main begin a := 1 end .", "Expected declaration (var or const)", "begin"},
		{"main a = 1 ; begin a := 1 end .", "Expected 'const'", "a"},
		{"main var a, : int ; begin a := 1 end .", "Expected identifier after ','", ":"},
		{"main var : int ; begin a := 1 end .", "Expected identifier", ":"},
		{"main var a int ; begin a := 1 end .", "Expected ':'", "int"},
		{"main const 1 = 2 ; begin a := 1 end .", "Expected identifier in constant", "1"},
		{"main const a := 2 ; begin a := 1 end .", "Expected '='", ":="},
		{"main var a : int ; begin 1 := 1 end .", "Expected identifier in assignment", "1"},
		{"main var a : int ; begin a = 1 end .", "Expected ':='", "="},
		{"main var a : int ; begin a := (1 + 2 end .", "Expected ')'", "end"},
		{"main var a : int ; begin a := 1 + * 2 end .", "Expected factor (id, number, '-' or '(')", "*"},
		{"main var a : int ; begin a := 1 a := 2 end .", "Expected 'end' after statements", "a"},
		{"main var a : int ; begin a := 1 ; ; end .", "Expected 'end' after statements", ";"},
		{"main var a : int ; begin a := 1 end ;", "Expected '.'", ";"},
		{"", "Expected 'main'", ""},
	}

	for _, test := range tests {
		err := Parse(test.input)

		var syntaxError *parse.SyntaxError
		if !errors.As(err, &syntaxError) {
			t.Errorf("%q: wanted a syntax error, got %v", test.input, err)
			continue
		}

		if syntaxError.Message != test.message {
			t.Errorf("%q: wanted message '%s', got '%s'", test.input, test.message, syntaxError.Message)
		}

		if syntaxError.Token.Lexeme != test.current {
			t.Errorf("%q: wanted current lexeme '%s', got '%s'", test.input, test.current, syntaxError.Token.Lexeme)
		}
	}
}

func TestParseDiagnostic(t *testing.T) {
	err := Parse("main var a : bool ; begin a := 1 end .")

	want := "Error: Expected type 'int' or 'float' (Current: bool)"
	if err == nil || err.Error() != want {
		t.Errorf("wanted '%s', got '%v'", want, err)
	}
}

func TestParseLexicalError(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"main var a : int ; begin a := $ end .", "$"},
		{"$", "$"},
		{"main var a : int ; begin a := 1 ;$ end .", "$"},
		{"main\u00a0var a : int ; begin a := 1 end .", "\u00a0"},
		{"main var a : int ; begin a := 1\u2028end .", "\u2028"},
	}

	for _, test := range tests {
		err := Parse(test.input)

		var lexicalError *parse.LexicalError
		if !errors.As(err, &lexicalError) {
			t.Errorf("%q: wanted a lexical error, got %v", test.input, err)
			continue
		}

		if lexicalError.Token.Lexeme != test.lexeme {
			t.Errorf("%q: wanted %q as the offending lexeme, got %q", test.input, test.lexeme, lexicalError.Token.Lexeme)
		}

		want := fmt.Sprintf("Error: Lexical error: %s (Current: %s)", test.lexeme, test.lexeme)
		if err.Error() != want {
			t.Errorf("%q: unexpected diagnostic '%s'", test.input, err.Error())
		}
	}
}

func TestParseReader(t *testing.T) {
	if err := ParseReader(bytes.NewBufferString("main var a : int ; begin a := 1 end .")); err != nil {
		t.Errorf("wanted acceptance, got %v", err)
	}

	err := ParseReader(bytes.NewBufferString("main var a : int begin a := 1 end ."))
	if err == nil || err.Error() != "Error: Expected ';' after declarations (Current: begin)" {
		t.Errorf("unexpected result %v", err)
	}
}

func TestParseReadError(t *testing.T) {
	err := ParseReader(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "unable to read program") {
		t.Errorf("wanted a wrapped read error, got %v", err)
	}
}

func TestParseTrace(t *testing.T) {
	var seen []string
	p := Parser{
		Scanner: NewScanner(strings.NewReader("main var a : int ; begin a := 1 end .")),
		Trace: func(tok parse.Token) {
			seen = append(seen, tok.Lexeme)
		},
	}

	if err := p.Parse(); err != nil {
		t.Fatal(err)
	}

	want := "main var a : int ; begin a := 1 end ."
	if got := strings.Join(seen, " "); got != want {
		t.Errorf("wanted trace '%s', got '%s'", want, got)
	}
}

func TestParseIsRepeatable(t *testing.T) {
	input := "main var a : int ; begin a := 1 + 2 end ."

	for i := 0; i < 3; i++ {
		if err := Parse(input); err != nil {
			t.Errorf("run %d: %s", i, err)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../test/parsing/program")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	if err != nil {
		t.Fatal(err)
	}

	if len(tests) == 0 {
		t.Fatal("no parsing tests found in", inputDirectory)
	}

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			lines := bufio.NewScanner(file)

			shouldPass := false
			lines.Scan()
			if strings.ToUpper(lines.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for lines.Scan() {
				err := Parse(lines.Text())
				if shouldPass && err != nil {
					t.Error(err)
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected program to fail: %s", lines.Text())
				}

				if err != nil {
					actual += err.Error() + "\n"
				} else {
					actual += "Success: Program parsed correctly.\n"
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
