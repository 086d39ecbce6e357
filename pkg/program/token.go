/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package program

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	// Keywords
	TOK_MAIN
	TOK_END
	TOK_BEGIN
	TOK_VAR
	TOK_CONST
	TOK_INT
	TOK_FLOAT

	TOK_IDENTIFIER
	TOK_NUMBER

	// Punctuation
	TOK_COLON
	TOK_SEMICOLON
	TOK_COMMA
	TOK_DOT
	TOK_ASSIGN
	TOK_EQUALS

	// Expressions
	TOK_PLUS
	TOK_STAR
	TOK_MINUS
	TOK_PAREN_L
	TOK_PAREN_R
)

var keywords = map[string]TokenType{
	"main":  TOK_MAIN,
	"end":   TOK_END,
	"begin": TOK_BEGIN,
	"var":   TOK_VAR,
	"const": TOK_CONST,
	"int":   TOK_INT,
	"float": TOK_FLOAT,
}

var symbols = map[rune]TokenType{
	';': TOK_SEMICOLON,
	',': TOK_COMMA,
	'.': TOK_DOT,
	'=': TOK_EQUALS,
	'+': TOK_PLUS,
	'*': TOK_STAR,
	'-': TOK_MINUS,
	'(': TOK_PAREN_L,
	')': TOK_PAREN_R,
}

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_MAIN:
		return "TOK_MAIN"
	case TOK_END:
		return "TOK_END"
	case TOK_BEGIN:
		return "TOK_BEGIN"
	case TOK_VAR:
		return "TOK_VAR"
	case TOK_CONST:
		return "TOK_CONST"
	case TOK_INT:
		return "TOK_INT"
	case TOK_FLOAT:
		return "TOK_FLOAT"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_SEMICOLON:
		return "TOK_SEMICOLON"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_DOT:
		return "TOK_DOT"
	case TOK_ASSIGN:
		return "TOK_ASSIGN"
	case TOK_EQUALS:
		return "TOK_EQUALS"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	}
	return "TOK_UNKNOWN"
}
