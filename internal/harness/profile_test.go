package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile([]byte(`
name: nightly
description: "Full catalog with extra witnesses"
witnesses: 1024
seed: 7
parallelism: 4
gates: [H, cnot]
checks: [inverse, flows]
`))
	require.NoError(t, err)

	assert.Equal(t, "nightly", p.Name)
	assert.Equal(t, 1024, p.Witnesses)

	opts := p.Options()
	assert.Equal(t, []string{"H", "cnot"}, opts.Gates)
	assert.Equal(t, []Check{CheckInverse, CheckFlows}, opts.Checks)
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, 4, opts.Parallelism)
	assert.Equal(t, 1024, opts.Witnesses)
}

func TestParseProfileMinimal(t *testing.T) {
	p, err := ParseProfile([]byte("name: quick\n"))
	require.NoError(t, err)

	opts := p.Options().withDefaults()
	assert.Equal(t, DefaultWitnesses, opts.Witnesses)
	assert.Equal(t, AllChecks, opts.Checks)
	assert.Empty(t, opts.Gates)
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "name: x\nwitness: 3\n", "field witness not found"},
		{"missing name", "seed: 3\n", "name is required"},
		{"negative witnesses", "name: x\nwitnesses: -1\n", "witnesses must be non-negative"},
		{"negative parallelism", "name: x\nparallelism: -2\n", "parallelism must be non-negative"},
		{"unknown check", "name: x\nchecks: [flows, vibes]\n", `unknown check "vibes"`},
		{"empty gate", "name: x\ngates: [H, \"\"]\n", "gates[1]: name is empty"},
		{"bad yaml", "name: [\n", "failed to parse YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: quick\nwitnesses: 16\ngates: [S]\n"), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, p.Witnesses)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}

func TestParseCheck(t *testing.T) {
	for _, c := range AllChecks {
		got, ok := ParseCheck(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCheck("Flows")
	assert.False(t, ok)
}
