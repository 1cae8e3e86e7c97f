// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the webhook task CLI.
// The root command registers for a webhook, builds the SQL answer and submits it;
// subcommands print the query and preview it against a local MySQL copy.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webhooktask/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	enabledFlag bool

	cfgPath   string
	logLevel  string
	logFormat string
)

// rootCmd represents the base command when called without any subcommands.
// It runs the webhook workflow once and exits.
var rootCmd = &cobra.Command{
	Use:   "webhooktask",
	Short: "Register for a hiring webhook and submit the SQL answer",
	Long: `webhooktask registers a fixed identity with the hiring service, receives a webhook URL
and access token, and submits the highest-salary SQL query to that webhook.

Set enabled: false in the config file, WEBHOOKTASK_ENABLED=false or --enabled=false
to make a run a no-op.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "webhooktask %s\n", Version)
			return nil
		}
		return runWorkflow(cmd)
	},
}

// Execute runs the CLI application.
// Errors are printed masked to stderr and the process exits 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, logging.Mask(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.Flags().BoolVar(&enabledFlag, "enabled", true, "Run the workflow (false makes the run a no-op)")

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/webhooktask/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json")
}
