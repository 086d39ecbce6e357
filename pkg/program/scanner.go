/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package program

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dburkart/descent/pkg/common/parse"
)

// Scanner turns a character stream into program tokens on demand.
type Scanner struct {
	Input io.RuneScanner
	Pos   int

	lastWidth int
	lastByte  byte
	rawByte   bool
	err       error
	lookahead parse.Lookahead
}

// NewScanner returns a Scanner reading from r. Readers which can already
// unread runes are used directly, anything else is buffered.
func NewScanner(r io.Reader) *Scanner {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Scanner{Input: rs}
}

// Err returns the first non-EOF error encountered while reading input.
func (s *Scanner) Err() error {
	return s.err
}

// NextToken consumes and returns the next token, preferring a token
// previously buffered by PeekToken.
func (s *Scanner) NextToken() parse.Token {
	return s.lookahead.Next(s.Emit)
}

// PeekToken returns the next token without consuming it.
func (s *Scanner) PeekToken() parse.Token {
	return s.lookahead.Peek(s.Emit)
}

// Emit scans the next token straight off Scanner.Input, bypassing the
// lookahead buffer.
func (s *Scanner) Emit() parse.Token {
	s.skipWhitespace()

	start := s.Pos
	r, ok := s.read()
	if !ok {
		return s.token(TOK_EOF, start, "")
	}

	// A byte which is not valid UTF-8 keeps its raw value as the lexeme
	if s.rawByte {
		return s.token(TOK_INVALID, start, string([]byte{s.lastByte}))
	}

	switch {
	case isLetter(r):
		lexeme := s.matchRun(r, isAlphanumeric)
		if t, ok := keywords[lexeme]; ok {
			return s.token(t, start, lexeme)
		}
		return s.token(TOK_IDENTIFIER, start, lexeme)
	case isDigit(r):
		// Dots are taken greedily, "1.2.3" is a single number
		return s.token(TOK_NUMBER, start, s.matchRun(r, isNumeric))
	case r == ':':
		next, ok := s.read()
		if ok && next == '=' {
			return s.token(TOK_ASSIGN, start, ":=")
		}
		if ok {
			s.unread()
		}
		return s.token(TOK_COLON, start, ":")
	}

	if t, ok := symbols[r]; ok {
		return s.token(t, start, string(r))
	}

	return s.token(TOK_INVALID, start, string(r))
}

func (s *Scanner) token(t TokenType, start int, lexeme string) parse.Token {
	return parse.Token{
		Type:     t,
		Lexeme:   lexeme,
		Location: parse.Location{Start: start, End: s.Pos},
	}
}

func (s *Scanner) read() (rune, bool) {
	s.rawByte = false
	r, width, err := s.Input.ReadRune()
	if err != nil {
		if err != io.EOF && s.err == nil {
			s.err = err
		}
		s.lastWidth = 0
		return 0, false
	}
	s.Pos += width
	s.lastWidth = width
	if r == utf8.RuneError && width == 1 {
		s.recoverByte()
	}
	return r, true
}

func (s *Scanner) unread() {
	if s.lastWidth == 0 {
		return
	}

	var err error
	if s.rawByte {
		err = s.Input.(io.ByteScanner).UnreadByte()
	} else {
		err = s.Input.UnreadRune()
	}
	if err == nil {
		s.Pos -= s.lastWidth
	}
	s.lastWidth = 0
	s.rawByte = false
}

// recoverByte replaces a one-byte utf8.RuneError with the raw byte behind
// it, when the input can hand bytes back.
func (s *Scanner) recoverByte() {
	br, ok := s.Input.(io.ByteScanner)
	if !ok || s.Input.UnreadRune() != nil {
		return
	}
	b, err := br.ReadByte()
	if err != nil {
		return
	}
	s.lastByte = b
	s.rawByte = true
}

func (s *Scanner) skipWhitespace() {
	for {
		r, ok := s.read()
		if !ok {
			return
		}
		if !isSpace(r) {
			s.unread()
			return
		}
	}
}

// matchRun returns first followed by the longest run of runes satisfying
// accept.
//
// Grammar:
//
//	identifier      = ALPHA *(ALPHA / DIGIT)
//	number          = DIGIT *(DIGIT / ".")
func (s *Scanner) matchRun(first rune, accept func(rune) bool) string {
	var b strings.Builder
	b.WriteRune(first)

	for {
		r, ok := s.read()
		if !ok {
			break
		}
		if !accept(r) {
			s.unread()
			break
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func isNumeric(r rune) bool {
	return isDigit(r) || r == '.'
}
