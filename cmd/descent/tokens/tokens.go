/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokens

import (
	"os"

	"github.com/dburkart/descent/cmd/descent/source"
	"github.com/dburkart/descent/pkg/repl"
	"github.com/dburkart/descent/pkg/validate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream the scanner produces",
	Args:  cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		input, err := source.Read(path)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read input")
		}

		list, err := validate.Tokenize(viper.GetString("tokens.grammar"), string(input), validate.Options{
			UnknownAsEOF: viper.GetBool("monkey.unknown-as-eof"),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("unable to tokenize input")
		}

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("tokens.output"))
		if err := writer.Write(repl.TokenList(list)); err != nil {
			log.Fatal().Err(err).Msg("unable to write tokens")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("grammar", "g", validate.GrammarProgram, "Grammar whose scanner to use [program, monkey]")
	Command.Flags().StringP("output", "o", "text", "Output format [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("tokens.grammar", Command.Flags().Lookup("grammar"))
	viper.BindPFlag("tokens.output", Command.Flags().Lookup("output"))
}
