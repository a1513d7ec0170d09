// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hiringhook/cli/internal/config"
	"hiringhook/cli/internal/query"
)

// queryCmd prints the SQL answer for a registration number without any
// network call. It defaults to the built-in registration number.
var queryCmd = &cobra.Command{
	Use:   "query [registration-number]",
	Short: "Print the SQL query selected for a registration number",
	Long: `The query command shows which SQL answer the flow would submit. The choice
depends on whether the last two digits of the registration number are odd or
even. No request is sent to the hiring API.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		regNo := config.RegistrationNumber
		if len(args) == 1 {
			regNo = args[0]
		}

		q, err := query.Select(regNo)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if verbose {
			n, _ := query.LastTwoDigits(regNo)
			fmt.Fprintf(out, "-- %s: last two digits %02d are %s\n", regNo, n, q.Parity)
		}
		fmt.Fprintf(out, "-- %s\n%s", q.Title, q.SQL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
