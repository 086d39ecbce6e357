/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/descent/pkg/repl"
	"github.com/dburkart/descent/pkg/validate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive terminal for validating input line by line",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("repl.output")
		if len(filterStringSlice(repl.OutputFormats, output)) != 1 {
			log.Fatal().Msg("unsupported output format")
		}

		grammar := viper.GetString("repl.grammar")
		if len(filterStringSlice(validate.Grammars, grammar)) != 1 {
			log.Fatal().Str("grammar", grammar).Msg("unsupported grammar")
		}

		session := repl.NewSession(os.Stdout, grammar, output)
		session.Options.UnknownAsEOF = viper.GetBool("monkey.unknown-as-eof")

		readlinePrompt(session, log)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
	Command.Flags().StringP("grammar", "g", validate.GrammarProgram, "Grammar to start with [program, monkey]")

	// Bind flags to viper
	viper.BindPFlag("repl.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("repl.grammar", Command.Flags().Lookup("grammar"))
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeGrammarOptions() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for i := range validate.Grammars {
		ret = append(ret, readline.PcItem(validate.Grammars[i]))
	}
	return ret
}

func readlinePrompt(session *repl.Session, log zerolog.Logger) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("check"),
		readline.PcItem("tokens"),
		readline.PcItem("grammar", makeGrammarOptions()...),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start readline")
	}
	defer rl.Close()

	// Handle input
	for {
		rl.SetPrompt(fmt.Sprintf("\033[31m%s>\033[0m ", session.Grammar))

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err != nil {
			break
		}

		more, err := session.Execute(repl.ParseREPLCommand(line))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if !more {
			break
		}
	}
}
