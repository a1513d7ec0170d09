package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Format: FormatJSON})

	l.Debug("hidden")
	l.Info("webhook generated", l.Args("webhook", "https://x/y"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	assert.True(t, json.Valid(lines[0]), "not JSON: %s", lines[0])
	assert.Contains(t, string(lines[0]), "webhook generated")
	assert.Contains(t, string(lines[0]), "https://x/y")
	assert.NotContains(t, string(lines[0]), "hidden")
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Format: FormatJSON, Quiet: true})
	l.Info("progress")
	assert.Empty(t, buf.String())

	l.Warn("careful")
	assert.Contains(t, buf.String(), "careful")

	buf.Reset()
	l = New(Options{Writer: &buf, Format: FormatJSON, Verbose: true, Quiet: true})
	l.Debug("details")
	assert.Contains(t, buf.String(), "details")
}
