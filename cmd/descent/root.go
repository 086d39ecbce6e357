/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package descent

import (
	"fmt"
	"os"

	"github.com/dburkart/descent/cmd/descent/check"
	"github.com/dburkart/descent/cmd/descent/classify"
	"github.com/dburkart/descent/cmd/descent/repl"
	"github.com/dburkart/descent/cmd/descent/server"
	"github.com/dburkart/descent/cmd/descent/tokens"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "descent",
		Short: "Descent validates programs with a recursive-descent parser",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().Bool("trace", false, "Log every token as the parser consumes it (needs -vv)")
	rootCmd.PersistentFlags().Bool("unknown-as-eof", false, "Treat unknown monkey words as end of input")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the descent config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("descent.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("descent.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("descent.trace", rootCmd.PersistentFlags().Lookup("trace"))
	viper.BindPFlag("monkey.unknown-as-eof", rootCmd.PersistentFlags().Lookup("unknown-as-eof"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("descent version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{check.Command, classify.Command, tokens.Command, repl.Command, server.Command} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
