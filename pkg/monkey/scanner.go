/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package monkey

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/dburkart/descent/pkg/common/parse"
)

// Scanner splits monkey speech into words.
type Scanner struct {
	Input io.RuneScanner
	Pos   int

	// UnknownAsEOF reports an unrecognized word as end of input instead of
	// an invalid token.
	UnknownAsEOF bool

	lastWidth int
	lookahead parse.Lookahead
}

func NewScanner(r io.Reader) *Scanner {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Scanner{Input: rs}
}

func (s *Scanner) NextToken() parse.Token {
	return s.lookahead.Next(s.Emit)
}

func (s *Scanner) PeekToken() parse.Token {
	return s.lookahead.Peek(s.Emit)
}

// Emit scans the next word off Scanner.Input.
//
// Grammar:
//
//	word            = ALPHA *(ALPHA / DIGIT / "-")
func (s *Scanner) Emit() parse.Token {
	var r rune
	var ok bool

	for {
		r, ok = s.read()
		if !ok || !unicode.IsSpace(r) {
			break
		}
	}

	start := s.Pos - s.lastWidth
	if !ok {
		return s.token(TOK_EOF, s.Pos, "")
	}

	if !unicode.IsLetter(r) {
		return s.token(TOK_INVALID, start, string(r))
	}

	var b strings.Builder
	b.WriteRune(r)
	for {
		r, ok = s.read()
		if !ok {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			s.unread()
			break
		}
		b.WriteRune(r)
	}

	word := b.String()
	if t, ok := words[word]; ok {
		return s.token(t, start, word)
	}

	if s.UnknownAsEOF {
		return s.token(TOK_EOF, start, word)
	}
	return s.token(TOK_INVALID, start, word)
}

func (s *Scanner) token(t TokenType, start int, lexeme string) parse.Token {
	return parse.Token{
		Type:     t,
		Lexeme:   lexeme,
		Location: parse.Location{Start: start, End: s.Pos},
	}
}

func (s *Scanner) read() (rune, bool) {
	r, width, err := s.Input.ReadRune()
	if err != nil {
		s.lastWidth = 0
		return 0, false
	}
	s.Pos += width
	s.lastWidth = width
	return r, true
}

func (s *Scanner) unread() {
	if s.lastWidth == 0 {
		return
	}
	if err := s.Input.UnreadRune(); err == nil {
		s.Pos -= s.lastWidth
	}
	s.lastWidth = 0
}
