/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package classify

import (
	"fmt"

	"github.com/dburkart/descent/cmd/descent/source"
	"github.com/dburkart/descent/pkg/monkey"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "classify [file]",
	Short: "Tell which monkey population a piece of speech belongs to",
	Args:  cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		input, err := source.Read(path)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read speech")
		}

		population := monkey.Classify(string(input), monkey.Options{
			UnknownAsEOF: viper.GetBool("monkey.unknown-as-eof"),
			Trace:        source.Tracer(),
		})
		log.Debug().Str("population", population.String()).Msg("classified")

		fmt.Println("Analysis result:")
		fmt.Println(population.Message())
	},
}
