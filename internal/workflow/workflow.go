// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package workflow runs the hiring webhook flow: register the candidate to get
// a webhook grant, pick the SQL answer from the registration number, and submit
// it with the grant's access token. The steps run once, in order, on the
// calling goroutine; the first failure stops the run.
package workflow

import (
	"context"
	"io"

	"github.com/pterm/pterm"

	"hiringhook/cli/internal/backend"
	"hiringhook/cli/internal/config"
	"hiringhook/cli/internal/query"
)

// Step names reported to Progress.
const (
	StepSelectQuery     = "Selecting SQL query"
	StepGenerateWebhook = "Generating webhook"
	StepSubmitSolution  = "Submitting solution"
)

// Progress receives step boundaries, typically to drive a spinner.
type Progress interface {
	Begin(step string)
	End(step string, err error)
}

type nopProgress struct{}

func (nopProgress) Begin(string)       {}
func (nopProgress) End(string, error) {}

// Result describes a completed run.
type Result struct {
	Webhook string
	Query   query.Query
}

// Runner executes the flow against an API.
type Runner struct {
	API      backend.API
	Identity config.Identity
	Logger   *pterm.Logger
	Progress Progress
}

// Run executes the flow once. The query is chosen before any network call,
// and the submission only happens after registration returned a grant.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result
	logger := r.Logger
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}
	progress := r.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	logger.Info("Starting webhook flow", logger.Args("reg_no", r.Identity.RegistrationNumber))

	progress.Begin(StepSelectQuery)
	q, err := query.Select(r.Identity.RegistrationNumber)
	progress.End(StepSelectQuery, err)
	if err != nil {
		return res, err
	}
	res.Query = q
	logger.Info("SQL query selected", logger.Args("parity", q.Parity.String(), "title", q.Title))
	logger.Debug("SQL solution", logger.Args("sql", q.SQL))

	progress.Begin(StepGenerateWebhook)
	grant, err := r.API.GenerateWebhook(ctx, backend.RegistrationRequest{
		Name:  r.Identity.Name,
		RegNo: r.Identity.RegistrationNumber,
		Email: r.Identity.Email,
	})
	progress.End(StepGenerateWebhook, err)
	if err != nil {
		return res, err
	}
	res.Webhook = grant.Webhook
	logger.Info("Webhook generated", logger.Args("webhook", grant.Webhook))

	progress.Begin(StepSubmitSolution)
	err = r.API.SubmitSolution(ctx, grant, backend.SolutionSubmission{FinalQuery: q.SQL})
	progress.End(StepSubmitSolution, err)
	if err != nil {
		return res, err
	}
	logger.Info("Solution submitted successfully")
	return res, nil
}
