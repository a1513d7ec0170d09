// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"

	apperrors "hiringhook/cli/internal/errors"
)

// GenerateWebhook posts the candidate identity to the registration endpoint
// and decodes the webhook grant from the response.
// A grant missing its webhook URL or access token is rejected.
func (h *HTTP) GenerateWebhook(ctx context.Context, in RegistrationRequest) (WebhookGrant, error) {
	var grant WebhookGrant

	resp, err := h.postJSON(ctx, h.endpoints.Registration, in, "")
	if err != nil {
		return grant, apperrors.Wrap(apperrors.RegistrationFailed, "generate webhook", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("generate-webhook", resp); err != nil {
		return grant, apperrors.Wrap(apperrors.RegistrationFailed, "generate webhook", err)
	}

	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return grant, apperrors.Wrap(apperrors.InvalidGrant, "decode webhook grant", err)
	}

	switch {
	case grant.Webhook == "" && grant.AccessToken == "":
		return grant, apperrors.New(apperrors.InvalidGrant, "response has no webhook or accessToken")
	case grant.Webhook == "":
		return grant, apperrors.New(apperrors.InvalidGrant, "response has no webhook")
	case grant.AccessToken == "":
		return grant, apperrors.New(apperrors.InvalidGrant, "response has no accessToken")
	}

	h.logger.Debug("webhook grant decoded", h.logger.Args(
		"webhook", grant.Webhook,
		"token_length", len(grant.AccessToken),
	))
	return grant, nil
}
