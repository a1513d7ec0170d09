// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"time"

	"hiringhook/cli/internal/config"
)

// New creates a backend API implementation for the given endpoints.
// Returns HTTP client (real backend).
func New(endpoints config.Endpoints, timeout time.Duration, opts ...Option) API {
	return newHTTP(endpoints, timeout, opts...)
}
