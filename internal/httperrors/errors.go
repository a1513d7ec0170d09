// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns workflow failures into user-friendly diagnoses.
package httperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"hiringhook/cli/internal/backend"
	apperrors "hiringhook/cli/internal/errors"
	"hiringhook/cli/internal/logging"
)

// Category is the broad cause of a failure.
type Category string

const (
	CategoryTimeout      Category = "timeout"
	CategoryDNS          Category = "dns"
	CategoryRefused      Category = "connection_refused"
	CategoryTLS          Category = "tls"
	CategoryUnauthorized Category = "unauthorized"
	CategoryRejected     Category = "rejected"
	CategoryServer       Category = "server"
	CategoryBadResponse  Category = "bad_response"
	CategoryInput        Category = "input"
	CategoryUnknown      Category = "unknown"
)

// Diagnosis is what the user is told about a failure.
type Diagnosis struct {
	Category Category
	Title    string
	Hints    []string
}

// Classify returns the category of err.
func Classify(err error) Category {
	if err == nil {
		return ""
	}

	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == 401 || statusErr.StatusCode == 403:
			return CategoryUnauthorized
		case statusErr.StatusCode >= 500:
			return CategoryServer
		default:
			return CategoryRejected
		}
	}

	switch apperrors.KindOf(err) {
	case apperrors.InvalidGrant:
		return CategoryBadResponse
	case apperrors.QuerySelectionFailed:
		return CategoryInput
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CategoryDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout") {
		return CategoryTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) || strings.Contains(lower, "connection refused") {
		return CategoryRefused
	}

	if strings.Contains(lower, "tls") || strings.Contains(lower, "x509") || strings.Contains(lower, "certificate") {
		return CategoryTLS
	}

	return CategoryUnknown
}

// Diagnose classifies err and attaches troubleshooting hints.
// context names the step that failed, e.g. "generating the webhook".
func Diagnose(err error, context string) Diagnosis {
	c := Classify(err)
	d := Diagnosis{Category: c}
	switch c {
	case CategoryTimeout:
		d.Title = "Connection timeout while " + context
		d.Hints = []string{"The hiring API took too long to respond", "Check your connection and run again"}
	case CategoryDNS:
		d.Title = "Cannot resolve " + hostOf(err) + " while " + context
		d.Hints = []string{"Check that your internet connection is working", "Check DNS settings and corporate firewalls"}
	case CategoryRefused:
		d.Title = "Connection refused while " + context
		d.Hints = []string{"The service is not accepting connections", "Try again later"}
	case CategoryTLS:
		d.Title = "Secure connection failed while " + context
		d.Hints = []string{"Check your system date and time", "Check HTTPS proxy settings"}
	case CategoryUnauthorized:
		d.Title = "Access denied while " + context
		d.Hints = []string{"The access token was rejected", "Run again to obtain a fresh webhook grant"}
	case CategoryRejected:
		d.Title = "Request rejected while " + context
		d.Hints = []string{"The hiring API did not accept the payload"}
	case CategoryServer:
		d.Title = "Server error while " + context
		d.Hints = []string{"The hiring API encountered an internal error", "This is not a problem with your setup"}
	case CategoryBadResponse:
		d.Title = "Unexpected response while " + context
		d.Hints = []string{"The webhook grant was missing or malformed"}
	case CategoryInput:
		d.Title = "Invalid registration number while " + context
		d.Hints = []string{"The registration number must end in two digits"}
	default:
		d.Title = "Failed while " + context
	}
	return d
}

// Show prints the diagnosis for err with masked technical details.
func Show(err error, context string) {
	if err == nil {
		return
	}
	d := Diagnose(err, context)
	pterm.Error.Println(d.Title)
	for _, h := range d.Hints {
		pterm.Println("  • " + h)
	}

	details := logging.Mask(err.Error())
	if len(details) > 200 {
		details = details[:200] + "..."
	}
	pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + details))
}

// hostOf extracts the host from a *url.Error in err's chain.
func hostOf(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, perr := url.Parse(urlErr.URL); perr == nil && u.Host != "" {
			return u.Host
		}
	}
	return "server"
}
