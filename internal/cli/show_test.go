package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestShowGolden(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		golden string
	}{
		{"text", []string{"show", "H"}, "show_h_text"},
		{"alias any case", []string{"show", "h_xz"}, "show_h_text"},
		{"json", []string{"--format", "json", "show", "H"}, "show_h_json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.golden, []byte(stdout))
		})
	}
}

func TestShowTwoQubitTableau(t *testing.T) {
	stdout, _, err := execute(t, "show", "cnot")
	require.NoError(t, err)

	assert.Contains(t, stdout, "CX (id 23)\n")
	assert.Contains(t, stdout, "  aliases:      CNOT, ZCX\n")
	assert.Contains(t, stdout, "    X0 -> +XX\n    X1 -> +IX\n    Z0 -> +ZI\n    Z1 -> +ZZ\n")
	assert.Contains(t, stdout, "    X_ -> XX\n")
}

func TestShowNonUnitary(t *testing.T) {
	stdout, _, err := execute(t, "show", "M")
	require.NoError(t, err)

	assert.Contains(t, stdout, "  arg count:    0|1\n")
	assert.NotContains(t, stdout, "tableau:")
	assert.Contains(t, stdout, "    Z -> rec(-1)\n")
}

func TestShowUnknownGate(t *testing.T) {
	stdout, _, err := execute(t, "show", "FOO")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E010]")
	assert.Contains(t, err.Error(), "UNKNOWN_GATE")
}
