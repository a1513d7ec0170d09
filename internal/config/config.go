// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config holds the fixed settings of the hiring webhook flow.
// Endpoints and the candidate identity are build-time constants; nothing is
// read from the environment or from disk. Callers receive a Config value and
// pass it down explicitly, which lets tests point the flow at local servers.
package config

import "time"

const (
	// RegistrationURL issues a webhook grant for the candidate identity.
	RegistrationURL = "https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA"
	// SubmissionURL receives the final SQL query.
	SubmissionURL = "https://bfhldevapigw.healthrx.co.in/hiring/testWebhook/JAVA"

	// CandidateName, RegistrationNumber and CandidateEmail identify the candidate.
	CandidateName      = "John Doe"
	RegistrationNumber = "REG12347"
	CandidateEmail     = "john@example.com"

	// DefaultTimeout bounds each HTTP call.
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings for a single run.
type Config struct {
	Endpoints Endpoints
	Identity  Identity
	Timeout   time.Duration
}

// Endpoints contains the two hiring API URLs.
type Endpoints struct {
	Registration string
	Submission   string
}

// Identity is the candidate sent to the registration endpoint.
type Identity struct {
	Name               string
	RegistrationNumber string
	Email              string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoints: Endpoints{
			Registration: RegistrationURL,
			Submission:   SubmissionURL,
		},
		Identity: Identity{
			Name:               CandidateName,
			RegistrationNumber: RegistrationNumber,
			Email:              CandidateEmail,
		},
		Timeout: DefaultTimeout,
	}
}
