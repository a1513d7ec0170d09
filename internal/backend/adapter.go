// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the hiring API.
// It defines the API contract for the two calls of the webhook flow and an
// HTTP implementation that talks JSON to the fixed endpoints.
package backend

import "context"

// API defines hiring API operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide fakes for tests.
type API interface {
	// GenerateWebhook registers the candidate and returns the webhook grant.
	GenerateWebhook(ctx context.Context, req RegistrationRequest) (WebhookGrant, error)
	// SubmitSolution posts the final query, authenticated with the grant's token.
	SubmitSolution(ctx context.Context, grant WebhookGrant, sub SolutionSubmission) error
}
