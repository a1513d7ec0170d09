// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the hiringhook CLI.
// The root command runs the hiring webhook flow once: it registers the
// candidate, picks the SQL answer from the registration number and submits it
// with the issued access token. Subcommands inspect the query and version.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hiringhook/cli/internal/backend"
	"hiringhook/cli/internal/config"
	apperrors "hiringhook/cli/internal/errors"
	"hiringhook/cli/internal/httperrors"
	"hiringhook/cli/internal/logging"
	"hiringhook/cli/internal/terminal"
	"hiringhook/cli/internal/workflow"
)

var (
	verbose   bool
	logFormat string
)

// rootCmd represents the base command when called without any subcommands.
// It runs the webhook flow against the built-in hiring API endpoints.
var rootCmd = &cobra.Command{
	Use:   "hiringhook",
	Short: "Submit the SQL hiring challenge through the webhook flow",
	Long: `hiringhook registers the candidate with the hiring API, receives a webhook
grant, selects the SQL answer matching the registration number and submits it
using the grant's access token.

The endpoints and candidate identity are built in. A failed step is logged
and ends the run; nothing is retried.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := logging.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		runFlow(cmd.Context(), config.Default(), format)
		return nil
	},
}

// runFlow executes the workflow and is the single error boundary of the CLI.
// Failures are logged and diagnosed but do not change the exit status.
func runFlow(ctx context.Context, cfg config.Config, format logging.Format) {
	if ctx == nil {
		ctx = context.Background()
	}

	useSpinner := !verbose && format == logging.FormatText && terminal.IsInteractive(os.Stdout)
	logger := logging.New(logging.Options{
		Writer:  os.Stderr,
		Format:  format,
		Verbose: verbose,
		Quiet:   useSpinner,
	})

	runID := uuid.NewString()
	logger.Debug("run started", logger.Args("run_id", runID, "registration_url", cfg.Endpoints.Registration))

	var progress workflow.Progress
	if useSpinner {
		progress = newSpinnerProgress(os.Stdout)
	}

	runner := &workflow.Runner{
		API: backend.New(cfg.Endpoints, cfg.Timeout,
			backend.WithRequestID(runID),
			backend.WithLogger(logger),
		),
		Identity: cfg.Identity,
		Logger:   logger,
		Progress: progress,
	}

	res, err := runner.Run(ctx)
	if err != nil {
		logger.Error(logging.PresentError("Error in webhook flow", err), logger.Args("run_id", runID))
		if format == logging.FormatText {
			httperrors.Show(err, stepContext(err))
		}
		return
	}

	if useSpinner {
		pterm.Success.Printfln("Submitted the %s-branch query (%s)", res.Query.Parity, res.Query.Title)
	}
}

// stepContext names the step an error came from for user-facing messages.
func stepContext(err error) string {
	switch apperrors.KindOf(err) {
	case apperrors.QuerySelectionFailed:
		return "selecting the SQL query"
	case apperrors.SubmissionFailed:
		return "submitting the solution"
	}
	return "generating the webhook"
}

// Execute runs the CLI application.
// Only usage errors reach here; workflow failures are handled by runFlow.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (disables the spinner)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logging.FormatText), "Log format: text or json")
}
