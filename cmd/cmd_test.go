// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiringhook/cli/internal/config"
	apperrors "hiringhook/cli/internal/errors"
	"hiringhook/cli/internal/logging"
	"hiringhook/cli/internal/query"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verbose = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestQueryCommandDefaultsToBuiltInRegistrationNumber(t *testing.T) {
	out, err := executeCommand(t, "query")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, query.SalaryAboveDepartmentAverage))
}

func TestQueryCommandEvenArgument(t *testing.T) {
	out, err := executeCommand(t, "query", "REG12346")
	require.NoError(t, err)
	assert.Contains(t, out, "-- Product revenue over the last six months\n")
	assert.True(t, strings.HasSuffix(out, query.ProductRevenueLastSixMonths))
}

func TestQueryCommandVerbose(t *testing.T) {
	out, err := executeCommand(t, "query", "--verbose", "REG12301")
	require.NoError(t, err)
	assert.Contains(t, out, "-- REG12301: last two digits 01 are odd\n")
}

func TestQueryCommandRejectsBadNumber(t *testing.T) {
	_, err := executeCommand(t, "query", "REGAB")
	require.Error(t, err)
	assert.Equal(t, apperrors.QuerySelectionFailed, apperrors.KindOf(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hiringhook "+Version+"\n", out)
}

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	t.Cleanup(func() { logFormat = string(logging.FormatText) })
	_, err := executeCommand(t, "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestRunFlowSubmitsOnce(t *testing.T) {
	var submissions atomic.Int32
	var gotAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"webhook":"https://x/y","accessToken":"tok123"}`)
	})
	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		submissions.Add(1)
		gotAuth.Store(r.Header.Get("Authorization"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoints = config.Endpoints{Registration: srv.URL + "/register", Submission: srv.URL + "/submit"}
	cfg.Timeout = 5 * time.Second

	runFlow(context.Background(), cfg, logging.FormatJSON)

	assert.Equal(t, int32(1), submissions.Load())
	assert.Equal(t, "Bearer tok123", gotAuth.Load())
}

func TestRunFlowSwallowsRegistrationFailure(t *testing.T) {
	var submissions atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		submissions.Add(1)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoints = config.Endpoints{Registration: srv.URL + "/register", Submission: srv.URL + "/submit"}

	assert.NotPanics(t, func() { runFlow(context.Background(), cfg, logging.FormatText) })
	assert.Zero(t, submissions.Load())
}

func TestStepContext(t *testing.T) {
	assert.Equal(t, "selecting the SQL query", stepContext(apperrors.New(apperrors.QuerySelectionFailed, "x")))
	assert.Equal(t, "submitting the solution", stepContext(apperrors.New(apperrors.SubmissionFailed, "x")))
	assert.Equal(t, "generating the webhook", stepContext(apperrors.New(apperrors.RegistrationFailed, "x")))
	assert.Equal(t, "generating the webhook", stepContext(errors.New("plain")))
}
