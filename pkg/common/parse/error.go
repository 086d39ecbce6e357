/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// SyntaxError is raised when a parser expected one grammar construct but
// found another.
type SyntaxError struct {
	Token   Token
	Message string
}

func NewSyntaxError(t Token, m string) *SyntaxError {
	return &SyntaxError{Token: t, Message: m}
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("Error: %s (Current: %s)", s.Message, s.Token.Lexeme)
}

func (s *SyntaxError) FormatError(input string) string {
	return formatError(input, s.Token.Location, s.Message)
}

// LexicalError is raised when the scanner could not classify a character and
// the resulting invalid token reached the parser.
type LexicalError struct {
	Token Token
}

func NewLexicalError(t Token) *LexicalError {
	return &LexicalError{Token: t}
}

func (l *LexicalError) Error() string {
	return fmt.Sprintf("Error: Lexical error: %s (Current: %s)", l.Token.Lexeme, l.Token.Lexeme)
}

func (l *LexicalError) FormatError(input string) string {
	return formatError(input, l.Token.Location, "Lexical error: "+l.Token.Lexeme)
}

// formatError points at the offending span of a single-line view of input.
func formatError(input string, loc Location, message string) string {
	repeat := loc.End - loc.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	// Only the line holding the error is shown, so the caret lines up
	lineStart := strings.LastIndexByte(input[:clampIndex(loc.Start, len(input))], '\n') + 1
	line := input[lineStart:]
	if end := strings.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	column := loc.Start - lineStart
	if column < 0 {
		column = 0
	}

	errorString := "Syntax error found in input:\n"
	errorString += line
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", column), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}

func clampIndex(i, n int) int {
	if i > n {
		return n
	}
	if i < 0 {
		return 0
	}
	return i
}
