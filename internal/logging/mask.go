// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI logger and helpers for secure log output.
// It builds pterm structured loggers and masks credentials such as bearer
// tokens before they reach a log line or an error shown to the user.
package logging

import (
	"regexp"
)

var (
	reBearer    = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reTokenPair = regexp.MustCompile(`(?i)((?:access_?)?token=)([^\s&;]+)`)
	reTokenJSON = regexp.MustCompile(`(?i)("(?:access_?token|token)"\s*:\s*")([^"]*)(")`)
)

// Mask replaces bearer tokens, token=VALUE pairs and JSON token fields with "***".
func Mask(s string) string {
	out := s
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reTokenPair.ReplaceAllString(out, "$1***")
	out = reTokenJSON.ReplaceAllString(out, "$1***$3")
	return out
}
