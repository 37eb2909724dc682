package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/export"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/ir"
)

func TestExportJSONToStdout(t *testing.T) {
	stdout, _, err := execute(t, "export")
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, export.Write(&want, export.Build(gates.GateData), export.FormatJSON))
	assert.Equal(t, want.String(), stdout)

	var doc ir.CatalogDoc
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, ir.DocVersion, doc.Version)
	assert.Len(t, doc.Gates, gates.GateData.Len())
}

func TestExportFingerprint(t *testing.T) {
	stdout, _, err := execute(t, "export", "--fingerprint")
	require.NoError(t, err)
	assert.Equal(t, ir.MustCatalogFingerprint(export.Build(gates.GateData))+"\n", stdout)

	stdout, _, err = execute(t, "--format", "json", "export", "--fingerprint")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"fingerprint":"`)
}

func TestExportToFileAndVerify(t *testing.T) {
	dir := t.TempDir()
	fingerprint := ir.MustCatalogFingerprint(export.Build(gates.GateData))

	for _, format := range []string{"json", "yaml", "cue"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "catalog."+format)

			stdout, _, err := execute(t, "export", "--as", format, "--check", "-o", path)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("✓ wrote %d gates to %s (%s)\n", gates.GateData.Len(), path, fingerprint), stdout)

			stdout, _, err = execute(t, "export", "--verify", path)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("✓ %s matches the catalog schema\n", path), stdout)
		})
	}
}

func TestExportToFileJSONResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	stdout, _, err := execute(t, "--format", "json", "export", "--as", "yaml", "-o", path)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   ExportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, path, resp.Data.Path)
	assert.Equal(t, "yaml", resp.Data.Format)
	assert.False(t, resp.Data.Checked)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "version: \"1\"\n"))
}

func TestExportVerifyRejectsBadDocument(t *testing.T) {
	doc := export.Build(gates.GateData)
	doc.Gates[0].Name = "detector"
	doc.Gates[1].Flags = []string{"GATE_IS_FAST"}

	path := filepath.Join(t.TempDir(), "bad.json")
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, doc, export.FormatJSON))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	stdout, _, err := execute(t, "export", "--verify", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ "+path+" does not match the catalog schema")
	assert.Contains(t, stdout, "name")
	assert.Contains(t, stdout, "flags")

	stdout, _, err = execute(t, "--format", "json", "export", "--verify", path)
	require.Error(t, err)
	var resp struct {
		Status string            `json:"status"`
		Data   SchemaCheckResult `json:"data"`
		Error  *CLIError         `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	assert.NotEmpty(t, resp.Data.Errors)
	assert.Equal(t, ErrCodeSchema, resp.Error.Code)
}

func TestExportCommandErrors(t *testing.T) {
	dir := t.TempDir()
	toml := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(toml, []byte("x = 1\n"), 0o644))

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown format", []string{"export", "--as", "toml"}, ErrCodeInvalidFlag},
		{"verify missing file", []string{"export", "--verify", filepath.Join(dir, "none.json")}, ErrCodeNotFound},
		{"verify unsupported extension", []string{"export", "--verify", toml}, ErrCodeSchema},
		{"unwritable output", []string{"export", "-o", filepath.Join(dir, "missing", "catalog.json")}, ErrCodeWriteFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.code+"]")
		})
	}
}
