/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package program

import (
	"io"
	"strings"

	"github.com/dburkart/descent/pkg/common/parse"
	"github.com/pkg/errors"
)

// Parse validates input as a complete program.
func Parse(input string) error {
	return ParseReader(strings.NewReader(input))
}

// ParseReader validates the program read from r.
func ParseReader(r io.Reader) error {
	p := Parser{Scanner: NewScanner(r)}
	return p.Parse()
}

type Parser struct {
	Scanner *Scanner
	Trace   parse.TraceFunc

	current parse.Token
}

// Parse recognizes the whole input as a program followed by end of input.
// It stops at the first error, which is either a *parse.SyntaxError or a
// *parse.LexicalError.
func (p *Parser) Parse() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *parse.SyntaxError:
				err = e
			case *parse.LexicalError:
				err = e
			default:
				panic(e)
			}
		}

		// A failed read makes any syntax error meaningless
		if scanErr := p.Scanner.Err(); scanErr != nil {
			err = errors.Wrap(scanErr, "unable to read program")
		}
	}()

	p.current = p.next()
	p.program()

	if p.current.Type != TOK_EOF {
		p.fail("Extra tokens after end of program")
	}

	return nil
}

func (p *Parser) next() parse.Token {
	tok := p.Scanner.NextToken()
	if tok.Type == TOK_INVALID {
		p.current = tok
		panic(parse.NewLexicalError(tok))
	}
	return tok
}

func (p *Parser) advance() {
	if p.Trace != nil && p.current.Type != TOK_EOF {
		p.Trace(p.current)
	}
	p.current = p.next()
}

func (p *Parser) fail(message string) {
	panic(parse.NewSyntaxError(p.current, message))
}

func (p *Parser) at(t TokenType) bool {
	return p.current.Type == t
}

func (p *Parser) match(t TokenType) bool {
	if !p.at(t) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) expect(t TokenType, message string) {
	if !p.match(t) {
		p.fail(message)
	}
}

// continues reports whether a ';' under the cursor separates two list items,
// by looking one token past it. When it doesn't, the ';' is left for the
// enclosing rule.
func (p *Parser) continues(starts ...TokenType) bool {
	if !p.at(TOK_SEMICOLON) {
		return false
	}

	next := p.Scanner.PeekToken()
	for _, t := range starts {
		if next.Type == t {
			p.advance()
			return true
		}
	}
	return false
}

// program
//
// Grammar:
//
//	program         = "main" body [ "end" ] "."
//
// The body already closes with "end", so a second one is optional.
func (p *Parser) program() {
	p.expect(TOK_MAIN, "Expected 'main'")
	p.body()
	p.match(TOK_END)
	p.expect(TOK_DOT, "Expected '.'")
}

// body
//
// Grammar:
//
//	body            = declarations ";" "begin" statements [ ";" ] "end"
func (p *Parser) body() {
	p.declarations()
	p.expect(TOK_SEMICOLON, "Expected ';' after declarations")
	p.expect(TOK_BEGIN, "Expected 'begin'")
	p.statements()
	p.match(TOK_SEMICOLON)
	p.expect(TOK_END, "Expected 'end' after statements")
}

// declarations
//
// Grammar:
//
//	declarations    = declaration *( ";" declaration )
func (p *Parser) declarations() {
	p.declaration()
	for p.continues(TOK_VAR, TOK_CONST, TOK_IDENTIFIER) {
		p.declaration()
	}
}

// declaration
//
// Grammar:
//
//	declaration     = var-decl / const-list
func (p *Parser) declaration() {
	switch {
	case p.at(TOK_VAR):
		p.varDecl()
	case p.at(TOK_CONST), p.at(TOK_IDENTIFIER):
		// An identifier is routed here too, and fails on the missing 'const'
		p.constList()
	default:
		p.fail("Expected declaration (var or const)")
	}
}

// varDecl
//
// Grammar:
//
//	var-decl        = "var" identifier *( "," identifier ) ":" type
func (p *Parser) varDecl() {
	p.expect(TOK_VAR, "Expected 'var'")
	p.expect(TOK_IDENTIFIER, "Expected identifier")
	for p.match(TOK_COMMA) {
		p.expect(TOK_IDENTIFIER, "Expected identifier after ','")
	}
	p.expect(TOK_COLON, "Expected ':'")
	p.typeName()
}

// typeName
//
// Grammar:
//
//	type            = "int" / "float"
func (p *Parser) typeName() {
	if !p.match(TOK_INT) && !p.match(TOK_FLOAT) {
		p.fail("Expected type 'int' or 'float'")
	}
}

// constList
//
// Grammar:
//
//	const-list      = "const" const-binding *( ";" const-binding )
func (p *Parser) constList() {
	p.expect(TOK_CONST, "Expected 'const'")
	p.constBinding()
	for p.continues(TOK_IDENTIFIER) {
		p.constBinding()
	}
}

// constBinding
//
// Grammar:
//
//	const-binding   = identifier "=" expression
func (p *Parser) constBinding() {
	p.expect(TOK_IDENTIFIER, "Expected identifier in constant")
	p.expect(TOK_EQUALS, "Expected '='")
	p.expression()
}

// statements
//
// Grammar:
//
//	statements      = statement *( ";" statement )
func (p *Parser) statements() {
	p.statement()
	for p.continues(TOK_IDENTIFIER) {
		p.statement()
	}
}

// statement
//
// Grammar:
//
//	statement       = identifier ":=" expression
func (p *Parser) statement() {
	p.expect(TOK_IDENTIFIER, "Expected identifier in assignment")
	p.expect(TOK_ASSIGN, "Expected ':='")
	p.expression()
}

// expression
//
// Grammar:
//
//	expression      = term *( "+" term )
func (p *Parser) expression() {
	p.term()
	for p.match(TOK_PLUS) {
		p.term()
	}
}

// term
//
// Grammar:
//
//	term            = factor *( "*" factor )
func (p *Parser) term() {
	p.factor()
	for p.match(TOK_STAR) {
		p.factor()
	}
}

// factor
//
// Grammar:
//
//	factor          = "-" factor / "(" expression ")" / identifier / number
func (p *Parser) factor() {
	switch {
	case p.match(TOK_MINUS):
		p.factor()
	case p.match(TOK_PAREN_L):
		p.expression()
		p.expect(TOK_PAREN_R, "Expected ')'")
	case p.match(TOK_IDENTIFIER), p.match(TOK_NUMBER):
	default:
		p.fail("Expected factor (id, number, '-' or '(')")
	}
}
