// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Format selects the log line encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --log-format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown log format %q (want text or json)", s)
}

// Options configures New.
type Options struct {
	Writer  io.Writer
	Format  Format
	Verbose bool
	// Quiet raises the level to warnings, used while a spinner owns the terminal.
	Quiet bool
}

// New builds a pterm logger from opts.
func New(opts Options) *pterm.Logger {
	level := pterm.LogLevelInfo
	switch {
	case opts.Verbose:
		level = pterm.LogLevelDebug
	case opts.Quiet:
		level = pterm.LogLevelWarn
	}

	l := pterm.DefaultLogger.WithLevel(level)
	if opts.Writer != nil {
		l = l.WithWriter(opts.Writer)
	}
	if opts.Format == FormatJSON {
		l = l.WithFormatter(pterm.LogFormatterJSON)
	}
	return l
}
