package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gatecat/internal/pauli"
)

func mustGateData(t *testing.T, data ...string) *Tableau {
	t.Helper()
	tab, err := FromGateData(data)
	require.NoError(t, err)
	return tab
}

func TestFromGateData(t *testing.T) {
	cx := mustGateData(t, "+XX", "+IX", "+ZI", "+ZZ")
	assert.Equal(t, 2, cx.NumQubits())
	assert.Equal(t, "X0 -> +XX\nX1 -> +_X\nZ0 -> +Z_\nZ1 -> +ZZ\n", cx.String())
}

func TestFromGateDataRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data []string
	}{
		{"empty", nil},
		{"odd", []string{"+X", "+Z", "+Y"}},
		{"commuting images", []string{"+X", "+X"}},
		{"width mismatch", []string{"+XX", "+Z"}},
		{"not pauli", []string{"+Q", "+Z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGateData(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	s := mustGateData(t, "+Y", "+Z")

	got, err := s.Apply(pauli.MustParse("Y"))
	require.NoError(t, err)
	assert.Equal(t, "-X", got.String())

	cx := mustGateData(t, "+XX", "+IX", "+ZI", "+ZZ")
	got, err = cx.Apply(pauli.MustParse("-YZ"))
	require.NoError(t, err)
	// Y0 -> Y0 X1, Z1 -> Z0 Z1; Y0 X1 * Z0 Z1 = (YZ)(XZ) = (iX)(-iY) = XY
	assert.Equal(t, "-XY", got.String())
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		data []string
		want []string
	}{
		{"S", []string{"+Y", "+Z"}, []string{"-Y", "+Z"}},
		{"SQRT_X", []string{"+X", "-Y"}, []string{"+X", "+Y"}},
		{"C_XYZ", []string{"+Y", "+X"}, []string{"+Z", "+Y"}},
		{"H", []string{"+Z", "+X"}, []string{"+Z", "+X"}},
		{"ISWAP", []string{"+ZY", "+YZ", "+IZ", "+ZI"}, []string{"-ZY", "-YZ", "+IZ", "+ZI"}},
		{"CXSWAP", []string{"+XX", "+XI", "+IZ", "+ZZ"}, []string{"+IX", "+XX", "+ZZ", "+ZI"}},
		{"SQRT_XX", []string{"+XI", "+IX", "-YX", "-XY"}, []string{"+XI", "+IX", "+YX", "+XY"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := mustGateData(t, tt.data...).Inverse()
			require.NoError(t, err)
			assert.True(t, inv.Equal(mustGateData(t, tt.want...)), "got\n%s", inv)
		})
	}
}

func TestThenInverseIsIdentity(t *testing.T) {
	u := mustGateData(t, "-ZY", "-YZ", "+XY", "+YX")
	inv, err := u.Inverse()
	require.NoError(t, err)

	both, err := u.Then(inv)
	require.NoError(t, err)
	assert.True(t, both.Equal(Identity(2)))
}

func TestThenWidthMismatch(t *testing.T) {
	_, err := Identity(1).Then(Identity(2))
	assert.Error(t, err)
}
