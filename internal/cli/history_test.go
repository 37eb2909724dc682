package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/store"
	"github.com/roach88/gatecat/internal/testutil"
)

const historyFingerprint = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// seedHistory records two runs: one clean, one with a failing S inverse.
func seedHistory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(path, store.WithIDGenerator(testutil.NewSequentialIDs("run")))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	clean := &harness.Report{Seed: 1, Witnesses: 16, Findings: []harness.Finding{
		{Gate: "CX", Check: harness.CheckInverse, Code: "V103", OK: true},
		{Gate: "S", Check: harness.CheckInverse, Code: "V103", OK: true},
	}}
	broken := &harness.Report{Seed: 2, Witnesses: 16, Findings: []harness.Finding{
		{Gate: "CX", Check: harness.CheckInverse, Code: "V103", OK: true},
		{Gate: "S", Check: harness.CheckInverse, Code: "V103", Message: "declared inverse S has tableau [+Y -Z], want [-Y +Z]"},
	}}
	_, err = st.WriteRun(ctx, clean, store.RunMeta{CatalogFingerprint: historyFingerprint})
	require.NoError(t, err)
	_, err = st.WriteRun(ctx, broken, store.RunMeta{CatalogFingerprint: historyFingerprint, Profile: "nightly"})
	require.NoError(t, err)
	return path
}

func TestHistoryListRuns(t *testing.T) {
	db := seedHistory(t)

	stdout, _, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^SEQ\s+ID\s+SEED\s+WITNESSES\s+PASSED\s+FAILED\s+PROFILE\s+CATALOG$`, lines[0])
	assert.Regexp(t, `^1\s+run-0001\s+1\s+16\s+2\s+0\s+-\s+0123456789ab$`, lines[1])
	assert.Regexp(t, `^2\s+run-0002\s+2\s+16\s+1\s+1\s+nightly\s+0123456789ab$`, lines[2])

	stdout, _, err = execute(t, "--format", "json", "history", "--db", db, "--limit", "1")
	require.NoError(t, err)
	var resp struct {
		Status string      `json:"status"`
		Data   []store.Run `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "run-0002", resp.Data[0].ID)
}

func TestHistoryRun(t *testing.T) {
	db := seedHistory(t)

	stdout, _, err := execute(t, "history", "--db", db, "--run", "run-0002", "--failed")
	require.NoError(t, err)
	assert.Equal(t,
		"run run-0002 (seq 2)\n"+
			"  seed 2, 16 witnesses, 1 passed, 1 failed\n"+
			"  catalog "+historyFingerprint+"\n"+
			"  profile nightly\n"+
			"✗ S inverse [V103]: declared inverse S has tableau [+Y -Z], want [-Y +Z]\n",
		stdout)

	stdout, _, err = execute(t, "--format", "json", "history", "--db", db, "--run", "run-0001")
	require.NoError(t, err)
	var resp struct {
		Data RunReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "run-0001", resp.Data.Run.ID)
	assert.Len(t, resp.Data.Findings, 2)
}

func TestHistoryGate(t *testing.T) {
	db := seedHistory(t)

	stdout, _, err := execute(t, "history", "--db", db, "--gate", "s")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^1\s+run-0001\s+inverse\s+V103\s+ok$`, lines[1])
	assert.Regexp(t, `^2\s+run-0002\s+inverse\s+V103\s+declared inverse S`, lines[2])

	stdout, _, err = execute(t, "--format", "json", "history", "--db", db, "--gate", "cnot", "--failed")
	require.NoError(t, err)
	var resp struct {
		Data []GateHistoryEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)

	stdout, _, err = execute(t, "history", "--db", db, "--gate", "H")
	require.NoError(t, err)
	assert.Equal(t, "no findings recorded for H\n", stdout)
}

func TestHistoryEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	stdout, _, err := execute(t, "history", "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "no runs recorded\n", stdout)
}

func TestHistoryErrors(t *testing.T) {
	db := seedHistory(t)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing database", []string{"history", "--db", filepath.Join(t.TempDir(), "none.db")}, ErrCodeNotFound},
		{"unknown run", []string{"history", "--db", db, "--run", "run-9999"}, ErrCodeNotFound},
		{"unknown gate", []string{"history", "--db", db, "--gate", "FOO"}, ErrCodeUnknownGate},
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
