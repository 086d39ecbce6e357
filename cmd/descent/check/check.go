/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package check

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/dburkart/descent/cmd/descent/source"
	"github.com/dburkart/descent/pkg/program"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// caretFormatter is implemented by parse errors that can point at their
// location in the input.
type caretFormatter interface {
	FormatError(input string) string
}

var Command = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate programs, stopping each at its first error",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		if len(args) == 0 {
			args = []string{"-"}
		}

		failed := false
		for _, path := range args {
			input, err := source.Read(path)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to read program")
			}

			p := program.Parser{
				Scanner: program.NewScanner(bytes.NewReader(input)),
				Trace:   source.Tracer(),
			}

			err = p.Parse()
			if err == nil {
				fmt.Println("Success: Program parsed correctly.")
				continue
			}

			failed = true
			fmt.Fprintln(os.Stderr, err.Error())

			var formatter caretFormatter
			if viper.GetBool("check.caret") && errors.As(err, &formatter) {
				fmt.Fprint(os.Stderr, formatter.FormatError(string(input)))
			}
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().Bool("caret", false, "Point at the offending token under its source line")

	// Bind flags to viper
	viper.BindPFlag("check.caret", Command.Flags().Lookup("caret"))
}
