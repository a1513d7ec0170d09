// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Authorization header value",
			input:    "Authorization: Bearer tok123.abc-def",
			expected: "Authorization: Bearer ***",
		},
		{
			name:     "lowercase bearer",
			input:    "sent bearer eyJhbGciOi.x.y",
			expected: "sent bearer ***",
		},
		{
			name:     "Token pair",
			input:    "token=abc123xyz",
			expected: "token=***",
		},
		{
			name:     "Access token query parameter",
			input:    "https://x/y?access_token=s3cr3t&z=1",
			expected: "https://x/y?access_token=***&z=1",
		},
		{
			name:     "JSON access token field",
			input:    `{"webhook":"https://x/y","accessToken":"tok123"}`,
			expected: `{"webhook":"https://x/y","accessToken":"***"}`,
		},
		{
			name:     "Nothing to mask",
			input:    "generate-webhook failed: 500 Internal Server Error",
			expected: "generate-webhook failed: 500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPresentError(t *testing.T) {
	if got := PresentError("submit", nil); got != "" {
		t.Errorf("PresentError(nil) = %q, want empty", got)
	}
	err := errorString("401 Bearer tok123")
	if got, want := PresentError("submit", err), "submit: 401 Bearer ***"; got != want {
		t.Errorf("PresentError() = %q, want %q", got, want)
	}
}

type errorString string

func (e errorString) Error() string { return string(e) }
