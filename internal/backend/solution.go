// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"io"

	apperrors "hiringhook/cli/internal/errors"
)

// SubmitSolution posts the final query to the submission endpoint using the
// grant's access token as bearer credentials. The response body is discarded.
func (h *HTTP) SubmitSolution(ctx context.Context, grant WebhookGrant, sub SolutionSubmission) error {
	if grant.AccessToken == "" {
		return apperrors.New(apperrors.InvalidGrant, "missing access token for submission")
	}

	resp, err := h.postJSON(ctx, h.endpoints.Submission, sub, grant.AccessToken)
	if err != nil {
		return apperrors.Wrap(apperrors.SubmissionFailed, "submit solution", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("submit-solution", resp); err != nil {
		return apperrors.Wrap(apperrors.SubmissionFailed, "submit solution", err)
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
