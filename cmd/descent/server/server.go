/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dburkart/descent/pkg/server"
	"github.com/dburkart/descent/pkg/validate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve check and classify requests over HTTP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(logger, validate.Options{
			UnknownAsEOF: viper.GetBool("monkey.unknown-as-eof"),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.ListenAndServe(ctx, viper.GetString("server.address")); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("address", "a", ":8080", "Address to listen on for check requests and /metrics")

	// Bind flags to viper
	viper.BindPFlag("server.address", Command.Flags().Lookup("address"))
}
