package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/gates"
)

func TestParseBasic(t *testing.T) {
	c, err := Parse(`
# Bell pair
H 0
cnot 0 1
DEPOLARIZE1(0.125) 0 1
M !0 1
`)
	require.NoError(t, err)
	require.Len(t, c.Operations, 4)

	assert.Equal(t, "H", c.Operations[0].Gate.Name)
	assert.Equal(t, "CX", c.Operations[1].Gate.Name)
	assert.Equal(t, []float64{0.125}, c.Operations[2].Args)
	assert.Equal(t, []Target{InvertedQubit(0), Qubit(1)}, c.Operations[3].Targets)

	assert.Equal(t, 2, c.CountQubits())
	assert.Equal(t, uint64(2), c.CountMeasurements())
	assert.Equal(t, "H 0\nCX 0 1\nDEPOLARIZE1(0.125) 0 1\nM !0 1", c.String())
}

func TestParseFusesAdjacentInstructions(t *testing.T) {
	c := MustParse("H 0\nH 1\nH_XZ 2\nS 0\nTICK\nTICK")
	require.Len(t, c.Operations, 4)
	assert.Equal(t, "H 0 1 2", c.Operations[0].String())
	assert.Equal(t, "S 0", c.Operations[1].String())
	assert.Equal(t, "TICK", c.Operations[2].String())
	assert.Equal(t, "TICK", c.Operations[3].String())
}

func TestParseDoesNotFuseDifferentArgs(t *testing.T) {
	c := MustParse("X_ERROR(0.1) 0\nX_ERROR(0.2) 1\nX_ERROR(0.2) 2")
	require.Len(t, c.Operations, 2)
	assert.Equal(t, "X_ERROR(0.2) 1 2", c.Operations[1].String())
}

func TestParseMPP(t *testing.T) {
	c := MustParse("MPP " + gates.MPPDecompositionTargets)
	require.Len(t, c.Operations, 1)

	op := c.Operations[0]
	assert.Equal(t, "MPP X0*Y1*Z2 X3*X4", op.String())
	assert.Equal(t, [][]Target{
		{PauliTarget('X', 0, false), PauliTarget('Y', 1, false), PauliTarget('Z', 2, false)},
		{PauliTarget('X', 3, false), PauliTarget('X', 4, false)},
	}, op.Products())
	assert.Equal(t, 2, op.CountResults())
	assert.Equal(t, 5, c.CountQubits())

	spaced := MustParse("MPP X0 * Y1 * Z2 X3 * X4")
	assert.Equal(t, op.String(), spaced.Operations[0].String())
}

func TestParseRepeat(t *testing.T) {
	c, err := Parse(`
R 0
REPEAT 3 {
    H 0
    M 0
    REPEAT 2 {
        MR 1
    }
}
`)
	require.NoError(t, err)
	require.Len(t, c.Operations, 2)

	rep := c.Operations[1]
	require.NotNil(t, rep.Body)
	assert.Equal(t, uint64(3), rep.Repetitions)
	assert.Equal(t, uint64(3*(1+2)), c.CountMeasurements())
	assert.Equal(t, 2, c.CountQubits())
	assert.Equal(t, []string{"R", "REPEAT", "H", "M", "MR"}, c.GateNames())

	again, err := Parse(c.String())
	require.NoError(t, err)
	assert.Equal(t, c.String(), again.String())
}

func TestParseClassicalControl(t *testing.T) {
	c, err := Parse("M 0\nCX rec[-1] 1\nCZ 1 rec[-1]\nXCZ 2 sweep[0]")
	require.NoError(t, err)
	assert.Equal(t, "M 0\nCX rec[-1] 1\nCZ 1 rec[-1]\nXCZ 2 sweep[0]", c.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"unknown gate", "H 0\nNOT_A_REAL_GATE 1", 2},
		{"odd pair targets", "CX 0 1 2", 1},
		{"same qubit pair", "CX 0 0", 1},
		{"record target on unitary", "H rec[-1]", 1},
		{"record target as CX target", "M 0\nCX 0 rec[-1]", 2},
		{"record target on SWAP", "M 0\nSWAP rec[-1] 0", 2},
		{"probability too large", "X_ERROR(1.5) 0", 1},
		{"probabilities sum too large", "PAULI_CHANNEL_1(0.5, 0.5, 0.5) 0", 1},
		{"wrong arg count", "PAULI_CHANNEL_1(0.1) 0", 1},
		{"args on unitary", "H(0.1) 0", 1},
		{"fractional observable index", "M 0\nOBSERVABLE_INCLUDE(0.5) rec[-1]", 2},
		{"qubit target on detector", "DETECTOR 0", 1},
		{"tick with targets", "TICK 0", 1},
		{"combiner on E", "E(0.1) X0*X1", 1},
		{"dangling combiner", "MPP X0*", 1},
		{"leading combiner", "MPP *X0", 1},
		{"plain qubit on MPP", "MPP 0", 1},
		{"inverted unitary target", "H !0", 1},
		{"negative qubit", "H -1", 1},
		{"positive record", "DETECTOR rec[1]", 1},
		{"unterminated args", "X_ERROR(0.1 0", 1},
		{"bad arg", "X_ERROR(abc) 0", 1},
		{"unmatched brace", "H 0\n}", 2},
		{"unterminated repeat", "REPEAT 2 {\nH 0", 1},
		{"zero repeat", "REPEAT 0 {\n}", 1},
		{"mpad value", "MPAD 2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestParseUnknownGateKeepsCatalogError(t *testing.T) {
	_, err := Parse("FOO 0")
	require.Error(t, err)
	assert.True(t, gates.IsUnknownGate(err))
}

func TestAppendByName(t *testing.T) {
	c := New()
	require.NoError(t, c.AppendByName("sqrt_x", []Target{Qubit(3)}))
	require.NoError(t, c.AppendByName("SQRT_X", []Target{Qubit(4)}))
	require.Len(t, c.Operations, 1)
	assert.Equal(t, "SQRT_X 3 4", c.String())

	err := c.AppendByName("NOPE", []Target{Qubit(0)})
	assert.True(t, gates.IsUnknownGate(err))

	err = c.AppendByName("REPEAT", nil)
	assert.Error(t, err)
}

func TestConcatFusesAtJunction(t *testing.T) {
	a := MustParse("H 0")
	b := MustParse("H 1\nCX 0 1")
	c := a.Concat(b)

	assert.Equal(t, "H 0 1\nCX 0 1", c.String())
	assert.Equal(t, "H 0", a.String(), "Concat must not modify its receiver")
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		tok  string
		want Target
	}{
		{"5", Qubit(5)},
		{"!5", InvertedQubit(5)},
		{"X2", PauliTarget('X', 2, false)},
		{"!z7", PauliTarget('Z', 7, true)},
		{"rec[-3]", Rec(-3)},
		{"sweep[4]", Sweep(4)},
		{"*", Combiner()},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseTarget(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, tok := range []string{"", "!", "X", "Q3", "rec[]", "sweep[-1]", "3a"} {
		_, err := ParseTarget(tok)
		assert.Error(t, err, "%q", tok)
	}
}
