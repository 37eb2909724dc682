package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/export"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/ir"
	"github.com/roach88/gatecat/internal/testutil"
)

type validateResponse struct {
	Status string           `json:"status"`
	Data   ValidationResult `json:"data"`
	Error  *CLIError        `json:"error"`
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateText(t *testing.T) {
	stdout, stderr, err := execute(t, "validate", "--gate", "H", "--witnesses", "16", "--seed", "1")
	require.NoError(t, err)

	assert.Equal(t, "✓ 6 checks passed (seed 1, 16 witnesses)\n", stdout)
	assert.Contains(t, stderr, "validation finished")
}

func TestValidateVerboseListsPasses(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "validate", "--gate", "S", "--witnesses", "8")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✓ S inverse [V103]\n")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestValidateJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "validate", "--gate", "CX", "--gate", "mpp", "--witnesses", "32", "--seed", "4")
	require.NoError(t, err)

	var resp validateResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.OK)
	assert.Equal(t, int64(4), resp.Data.Seed)
	assert.Equal(t, 32, resp.Data.Witnesses)
	assert.Zero(t, resp.Data.Failed)
	assert.Equal(t, len(resp.Data.Findings), resp.Data.Passed)
	assert.Equal(t, ir.MustCatalogFingerprint(export.Build(gates.GateData)), resp.Data.CatalogFingerprint)
	assert.Empty(t, resp.Data.RunID)

	gatesSeen := map[string]bool{}
	for _, f := range resp.Data.Findings {
		gatesSeen[f.Gate] = true
	}
	assert.Equal(t, map[string]bool{"CX": true, "MPP": true}, gatesSeen)
}

func TestValidateDeterministicOutput(t *testing.T) {
	args := []string{"--format", "json", "validate", "--gate", "SQRT_XX", "--witnesses", "16", "--seed", "11"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateCheckFilter(t *testing.T) {
	stdout, _, err := execute(t, "-v", "validate", "--gate", "CX", "--check", "inverse", "--check", "flows", "--witnesses", "8")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✓ CX inverse [V103]\n")
	assert.Contains(t, stdout, "✓ CX flows [V104]\n")
	assert.NotContains(t, stdout, "structure")
	assert.Contains(t, stdout, "✓ 2 checks passed")
}

func TestValidateProfile(t *testing.T) {
	path := writeProfile(t, `
name: smoke
gates: [cnot]
checks: [inverse]
witnesses: 8
seed: 3
`)

	stdout, _, err := execute(t, "validate", "--profile", path)
	require.NoError(t, err)
	assert.Equal(t, "✓ 1 checks passed (profile smoke, seed 3, 8 witnesses)\n", stdout)

	stdout, _, err = execute(t, "validate", "--profile", path, "--seed", "9", "--check", "flows")
	require.NoError(t, err)
	assert.Equal(t, "✓ 1 checks passed (profile smoke, seed 9, 8 witnesses)\n", stdout)
}

func TestValidateCommandErrors(t *testing.T) {
	badProfile := writeProfile(t, "name: smoke\nwitnesess: 8\n")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown gate", []string{"validate", "--gate", "FOO"}, ErrCodeUnknownGate},
		{"unknown check", []string{"validate", "--check", "speed"}, ErrCodeInvalidFlag},
		{"negative witnesses", []string{"validate", "--witnesses", "-1"}, ErrCodeInvalidFlag},
		{"missing profile", []string{"validate", "--profile", filepath.Join(t.TempDir(), "none.yaml")}, ErrCodeProfile},
		{"profile typo", []string{"validate", "--profile", badProfile}, ErrCodeProfile},
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

func TestValidateRecordsRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	stdout := &bytes.Buffer{}

	root := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(root)
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--gate", "H", "--witnesses", "8", "--seed", "2", "--db", db})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "✓ 6 checks passed (seed 2, 8 witnesses)\n")
	assert.Regexp(t, `run [0-9a-f-]{36} recorded\n$`, stdout.String())
}

func TestValidateRecordsRunWithIDs(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	opts := &ValidateOptions{
		RootOptions: &RootOptions{Format: "text"},
		Witnesses:   8,
		Gates:       []string{"S"},
		Database:    db,
		IDs:         testutil.NewFixedIDs("run-a"),
	}
	cmd := NewValidateCommand(opts.RootOptions)
	cmd.SetContext(context.Background())
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, runValidate(opts, cmd))
	assert.Contains(t, stdout.String(), "run run-a recorded\n")
}

func TestWriteValidationTextFailures(t *testing.T) {
	result := ValidationResult{
		Seed:      5,
		Witnesses: 16,
		Passed:    1,
		Failed:    1,
		Findings: []harness.Finding{
			{Gate: "S", Check: harness.CheckStructure, Code: "V101", OK: true},
			{Gate: "S", Check: harness.CheckInverse, Code: "V103", Message: "declared inverse S has tableau [+Y -Z], want [-Y +Z]"},
		},
	}

	buf := &bytes.Buffer{}
	writeValidationText(buf, result, false)
	assert.Equal(t,
		"✗ S inverse [V103]: declared inverse S has tableau [+Y -Z], want [-Y +Z]\n"+
			"✗ 1 of 2 checks failed (seed 5, 16 witnesses)\n",
		buf.String())
}
