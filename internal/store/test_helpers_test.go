package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/testutil"
)

const testFingerprint = "5f1d3c0e9a7b2c4d6e8f0a1b3c5d7e9f1a2b4c6d8e0f2a4b6c8d0e2f4a6b8c0d"

// createTestStore creates a fresh store with sequential run ids.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDs("run")))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestReport builds a small report with one failure.
func createTestReport(seed int64) *harness.Report {
	return &harness.Report{
		Seed:      seed,
		Witnesses: 16,
		Findings: []harness.Finding{
			{Gate: "H", Check: harness.CheckStructure, Code: "V101", OK: true},
			{Gate: "H", Check: harness.CheckInverse, Code: "V103", OK: true},
			{Gate: "S", Check: harness.CheckStructure, Code: "V101", OK: true},
			{Gate: "S", Check: harness.CheckInverse, Code: "V103", Message: "declared inverse S has tableau [+Y -Z], want [-Y +Z]"},
		},
	}
}
