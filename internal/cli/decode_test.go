package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.pa2")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDecodeText(t *testing.T) {
	path := writeInputFile(t, "1 CBT  01\nT CLPCUSD$0000001063\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, `ExchangeHeader(acronym="CBT", code="01")`)
	assert.Contains(t, output, "CurrencyConversion(")
	assert.Contains(t, output, "2 decoded, 0 failed")
}

func TestDecodeReportsBadLines(t *testing.T) {
	path := writeInputFile(t, "1 CBT  01\nQ UNKNOWN TAG\n")

	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{path})

	// Without --strict, bad lines are reported but the command succeeds.
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1 decoded, 1 failed")
	assert.Contains(t, errBuf.String(), "line 2:")
}

func TestDecodeStrictFailsOnBadLines(t *testing.T) {
	path := writeInputFile(t, "Q UNKNOWN TAG\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--strict"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestDecodeJSON(t *testing.T) {
	path := writeInputFile(t, "1 CBT  01\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["decoded"])
	assert.Equal(t, float64(0), data["failed"])

	records, ok := data["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	rec := records[0].(map[string]any)["record"].(map[string]any)
	assert.Equal(t, "ExchangeHeader", rec["record"])
	assert.Equal(t, map[string]any{"acronym": "CBT", "code": "01"}, rec["fields"])
}

func TestDecodeYAML(t *testing.T) {
	path := writeInputFile(t, "1 CBT  01\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "yaml"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestDecodeMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"/nonexistent/input.pa2"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E002")
}
