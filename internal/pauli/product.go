package pauli

import "fmt"

// letterCode packs a letter as x | z<<1: I=0, X=1, Z=2, Y=3.
func letterCode(x, z bool) uint8 {
	var c uint8
	if x {
		c |= 1
	}
	if z {
		c |= 2
	}
	return c
}

// letterPhase[a][b] is the power of i produced by the single-qubit product a·b.
var letterPhase = [4][4]uint8{
	{0, 0, 0, 0}, // I·_
	{0, 0, 3, 1}, // X·I, X·X, X·Z=-iY, X·Y=iZ
	{0, 1, 0, 3}, // Z·I, Z·X=iY, Z·Z, Z·Y=-iX
	{0, 3, 1, 0}, // Y·I, Y·X=-iZ, Y·Z=iX, Y·Y
}

// Product returns the letters of a·b and the phase of the product as a power
// of i (0..3), including the contributions of both signs. The returned
// string always has Sign false; the full product is i^phase times it.
func Product(a, b PauliString) (PauliString, uint8) {
	n := max(len(a.Xs), len(b.Xs))
	out := New(n)
	var phase uint8
	if a.Sign {
		phase += 2
	}
	if b.Sign {
		phase += 2
	}
	for k := 0; k < n; k++ {
		var ax, az, bx, bz bool
		if k < len(a.Xs) {
			ax, az = a.Xs[k], a.Zs[k]
		}
		if k < len(b.Xs) {
			bx, bz = b.Xs[k], b.Zs[k]
		}
		phase += letterPhase[letterCode(ax, az)][letterCode(bx, bz)]
		out.Xs[k] = ax != bx
		out.Zs[k] = az != bz
	}
	return out, phase & 3
}

// Mul returns the Hermitian product a·b. It fails when a and b anticommute,
// since their product carries an imaginary phase.
func Mul(a, b PauliString) (PauliString, error) {
	out, phase := Product(a, b)
	if phase&1 != 0 {
		return PauliString{}, fmt.Errorf("product of anticommuting pauli strings %s and %s is not hermitian", a, b)
	}
	out.Sign = phase == 2
	return out, nil
}

// Accumulator multiplies Pauli strings together while tracking the phase
// exactly, allowing imaginary intermediate values.
type Accumulator struct {
	acc   PauliString
	phase uint8
}

// NewAccumulator starts from the identity on n qubits.
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{acc: New(n)}
}

// MulRight multiplies the accumulated value on the right by p.
func (a *Accumulator) MulRight(p PauliString) {
	out, d := Product(a.acc, p)
	a.acc = out
	a.phase = (a.phase + d) & 3
}

// MulPhase multiplies the accumulated value by i^k.
func (a *Accumulator) MulPhase(k uint8) {
	a.phase = (a.phase + k) & 3
}

// Result returns the accumulated Hermitian Pauli string, or an error when
// the accumulated phase is imaginary.
func (a *Accumulator) Result() (PauliString, error) {
	if a.phase&1 != 0 {
		return PauliString{}, fmt.Errorf("accumulated pauli product %s has imaginary phase", a.acc)
	}
	out := a.acc.Clone()
	out.Sign = a.phase == 2
	return out, nil
}
