// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"webhooktask/cli/internal/query"

	"github.com/spf13/cobra"
)

var rawQuery bool

// queryCmd prints the SQL submitted to the webhook without contacting any service.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the SQL query submitted to the webhook",
	Long: `The query command prints the highest-salary query exactly as it is sent in the
finalQuery field. Use --raw for the readable multi-line form.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rawQuery {
			fmt.Fprintln(cmd.OutOrStdout(), query.Text())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), query.SingleLine())
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolVar(&rawQuery, "raw", false, "Print the multi-line form")
	rootCmd.AddCommand(queryCmd)
}
