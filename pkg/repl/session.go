/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"

	"github.com/dburkart/descent/pkg/validate"
	"github.com/pkg/errors"
)

const helpText = `check <input>      validate input against the current grammar (default)
tokens <input>     print the token stream of input
grammar [name]     show or switch the grammar (program, monkey)
help               show this help
exit               leave the repl`

// Session holds the state of one interactive loop. Every check runs in a
// fresh parse session, so only the grammar and output settings carry over.
type Session struct {
	Grammar string
	Format  string
	Options validate.Options

	out    io.Writer
	writer OutputWriter
}

func NewSession(out io.Writer, grammar, format string) *Session {
	return &Session{
		Grammar: grammar,
		Format:  format,
		out:     out,
		writer:  NewOutputWriter(out, format),
	}
}

// Execute runs cmd, returning false once the session should end.
func (s *Session) Execute(cmd Command) (bool, error) {
	switch cmd.Name {
	case CommandExit:
		return false, nil
	case CommandHelp:
		fmt.Fprintln(s.out, helpText)
	case CommandGrammar:
		if cmd.Arg == "" {
			fmt.Fprintln(s.out, s.Grammar)
			break
		}
		if !isGrammar(cmd.Arg) {
			return true, errors.Wrapf(validate.ErrUnknownGrammar, "'%s'", cmd.Arg)
		}
		s.Grammar = cmd.Arg
	case CommandTokens:
		tokens, err := validate.Tokenize(s.Grammar, cmd.Arg, s.Options)
		if err != nil {
			return true, err
		}
		return true, s.writer.Write(TokenList(tokens))
	case CommandCheck:
		if cmd.Arg == "" {
			break
		}
		result, err := validate.Check(s.Grammar, cmd.Arg, s.Options)
		if err != nil {
			return true, err
		}
		if s.Format == "text" {
			fmt.Fprintln(s.out, result.Message())
			break
		}
		return true, s.writer.Write(Verdict(result))
	default:
		return true, errors.Errorf("unknown command '%s'", cmd.Name)
	}

	return true, nil
}

func isGrammar(name string) bool {
	for _, g := range validate.Grammars {
		if g == name {
			return true
		}
	}
	return false
}
