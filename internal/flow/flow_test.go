package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/pauli"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		in   string
		out  string
		recs []int
	}{
		{"X_ -> XX", "+X_", "+XX", nil},
		{"Z -> -Y", "+Z", "-Y", nil},
		{"Z -> rec(-1)", "+Z", "", []int{-1}},
		{"1 -> Z xor rec(-1)", "", "+Z", []int{-1}},
		{"XYZ__ -> rec(-2)", "+XYZ__", "", []int{-2}},
		{"1 -> ___XX xor rec(-1) xor rec(-3)", "", "+___XX", []int{-1, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			f, err := Parse(tt.text)
			require.NoError(t, err)

			if tt.in == "" {
				assert.True(t, f.Input.IsIdentity())
			} else {
				assert.True(t, f.Input.Equal(pauli.MustParse(tt.in)), "input %s", f.Input)
			}
			if tt.out == "" {
				assert.True(t, f.Output.IsIdentity())
			} else {
				assert.True(t, f.Output.Equal(pauli.MustParse(tt.out)), "output %s", f.Output)
			}
			assert.Equal(t, tt.recs, f.Measurements)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"X",
		"X -> Y -> Z",
		"Q -> X",
		"X -> rec(1)",
		"X -> rec(-1",
		"X -> Y xor Z",
		" -> X",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			require.Error(t, err)

			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, text := range []string{
		"X_ -> XX",
		"Z -> -Y",
		"Z -> rec(-1)",
		"1 -> Z xor rec(-1)",
		"1 -> ___XX xor rec(-1)",
	} {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, text, MustParse(text).String())
		})
	}
}

func TestNumQubits(t *testing.T) {
	assert.Equal(t, 5, MustParse("1 -> ___XX xor rec(-1)").NumQubits())
	assert.Equal(t, 2, MustParse("X_ -> X").NumQubits())
	assert.Equal(t, 0, MustParse("1 -> rec(-1)").NumQubits())
}
