/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strings"
)

const (
	CommandCheck   = "CHECK"
	CommandTokens  = "TOKENS"
	CommandGrammar = "GRAMMAR"
	CommandHelp    = "HELP"
	CommandExit    = "EXIT"
)

// Command is a single line of REPL input.
type Command struct {
	Name string
	Arg  string
}

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'. A line not starting with a known
// command word is checked as-is against the current grammar.
func ParseREPLCommand(line string) Command {
	line = strings.TrimSpace(line)

	// all commands have a space after them, if not then they are command only
	// like EXIT
	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name := strings.ToUpper(word); name {
	case CommandCheck, CommandTokens, CommandGrammar:
		return Command{Name: name, Arg: rest}
	case CommandHelp, CommandExit:
		if rest == "" {
			return Command{Name: name}
		}
	case "QUIT":
		if rest == "" {
			return Command{Name: CommandExit}
		}
	}

	return Command{Name: CommandCheck, Arg: line}
}
