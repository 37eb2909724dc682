// Package tableau implements exact Clifford tableaus.
//
// A Tableau records, for every qubit k, the images of X_k and Z_k under
// conjugation by a Clifford operation (P -> U P U†). Images are signed
// Pauli strings, so two tableaus are equal exactly when the operations they
// describe are equal up to global phase.
package tableau

import (
	"fmt"
	"strings"

	"github.com/roach88/gatecat/internal/pauli"
)

// Tableau holds the images of the single-qubit X and Z generators.
type Tableau struct {
	Xs []pauli.PauliString
	Zs []pauli.PauliString
}

// Identity returns the identity tableau on n qubits.
func Identity(n int) *Tableau {
	t := &Tableau{Xs: make([]pauli.PauliString, n), Zs: make([]pauli.PauliString, n)}
	for k := 0; k < n; k++ {
		t.Xs[k] = pauli.Single(n, k, 'X')
		t.Zs[k] = pauli.Single(n, k, 'Z')
	}
	return t
}

// FromStrings builds a tableau from the dense images of each X_k and Z_k.
// The result is checked for the Clifford commutation relations.
func FromStrings(xs, zs []string) (*Tableau, error) {
	if len(xs) != len(zs) {
		return nil, fmt.Errorf("tableau: %d x images but %d z images", len(xs), len(zs))
	}
	n := len(xs)
	t := &Tableau{Xs: make([]pauli.PauliString, n), Zs: make([]pauli.PauliString, n)}
	for k := 0; k < n; k++ {
		x, err := pauli.Parse(xs[k])
		if err != nil {
			return nil, fmt.Errorf("tableau: x image of qubit %d: %w", k, err)
		}
		z, err := pauli.Parse(zs[k])
		if err != nil {
			return nil, fmt.Errorf("tableau: z image of qubit %d: %w", k, err)
		}
		if x.NumQubits() != n || z.NumQubits() != n {
			return nil, fmt.Errorf("tableau: images of qubit %d must have %d qubits", k, n)
		}
		t.Xs[k], t.Zs[k] = x, z
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromGateData builds a tableau from a flat list holding the X images
// followed by the Z images, the layout used by the gate catalog.
func FromGateData(data []string) (*Tableau, error) {
	if len(data) == 0 || len(data)%2 != 0 {
		return nil, fmt.Errorf("tableau: gate data must hold x and z images for each qubit, got %d strings", len(data))
	}
	n := len(data) / 2
	return FromStrings(data[:n], data[n:])
}

// NumQubits returns the number of qubits the tableau acts on.
func (t *Tableau) NumQubits() int {
	return len(t.Xs)
}

// Apply returns the image U p U† of the Pauli string p.
func (t *Tableau) Apply(p pauli.PauliString) (pauli.PauliString, error) {
	n := t.NumQubits()
	if p.NumQubits() > n {
		return pauli.PauliString{}, fmt.Errorf("tableau: pauli string %s is wider than the %d-qubit tableau", p, n)
	}
	acc := pauli.NewAccumulator(n)
	if p.Sign {
		acc.MulPhase(2)
	}
	for k := 0; k < p.NumQubits(); k++ {
		switch p.Letter(k) {
		case 'X':
			acc.MulRight(t.Xs[k])
		case 'Z':
			acc.MulRight(t.Zs[k])
		case 'Y':
			// Y = iXZ
			acc.MulPhase(1)
			acc.MulRight(t.Xs[k])
			acc.MulRight(t.Zs[k])
		}
	}
	return acc.Result()
}

// Inverse returns the tableau of U†.
func (t *Tableau) Inverse() (*Tableau, error) {
	n := t.NumQubits()
	inv := &Tableau{Xs: make([]pauli.PauliString, n), Zs: make([]pauli.PauliString, n)}
	for i := 0; i < n; i++ {
		inv.Xs[i] = pauli.New(n)
		inv.Zs[i] = pauli.New(n)
		for j := 0; j < n; j++ {
			inv.Xs[i].Xs[j] = t.Zs[j].Zs[i]
			inv.Xs[i].Zs[j] = t.Xs[j].Zs[i]
			inv.Zs[i].Xs[j] = t.Zs[j].Xs[i]
			inv.Zs[i].Zs[j] = t.Xs[j].Xs[i]
		}
	}

	// The symplectic part is exact; signs are fixed by pushing each
	// candidate back through t and comparing with the generator.
	for i := 0; i < n; i++ {
		for _, side := range []struct {
			img *pauli.PauliString
			gen pauli.PauliString
		}{
			{&inv.Xs[i], pauli.Single(n, i, 'X')},
			{&inv.Zs[i], pauli.Single(n, i, 'Z')},
		} {
			back, err := t.Apply(*side.img)
			if err != nil {
				return nil, fmt.Errorf("tableau: inverse: %w", err)
			}
			unsigned := back.Clone()
			unsigned.Sign = false
			if !unsigned.Equal(side.gen) {
				return nil, fmt.Errorf("tableau: inverse: %s maps to %s, not ±%s", *side.img, back, side.gen)
			}
			side.img.Sign = back.Sign
		}
	}
	return inv, nil
}

// Then returns the tableau of applying t first and second afterwards.
func (t *Tableau) Then(second *Tableau) (*Tableau, error) {
	if t.NumQubits() != second.NumQubits() {
		return nil, fmt.Errorf("tableau: cannot compose %d-qubit and %d-qubit tableaus", t.NumQubits(), second.NumQubits())
	}
	n := t.NumQubits()
	out := &Tableau{Xs: make([]pauli.PauliString, n), Zs: make([]pauli.PauliString, n)}
	for k := 0; k < n; k++ {
		x, err := second.Apply(t.Xs[k])
		if err != nil {
			return nil, err
		}
		z, err := second.Apply(t.Zs[k])
		if err != nil {
			return nil, err
		}
		out.Xs[k], out.Zs[k] = x, z
	}
	return out, nil
}

// Equal reports whether both tableaus have identical signed images.
func (t *Tableau) Equal(o *Tableau) bool {
	if t.NumQubits() != o.NumQubits() {
		return false
	}
	for k := range t.Xs {
		if !t.Xs[k].Equal(o.Xs[k]) || !t.Zs[k].Equal(o.Zs[k]) {
			return false
		}
	}
	return true
}

// Validate checks that the images satisfy the Pauli commutation relations:
// X_k and Z_k images anticommute, every other pair commutes.
func (t *Tableau) Validate() error {
	n := t.NumQubits()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if got, want := t.Xs[i].Commutes(t.Zs[j]), i != j; got != want {
				return fmt.Errorf("tableau: images of X%d and Z%d have the wrong commutation relation", i, j)
			}
			if j > i {
				if !t.Xs[i].Commutes(t.Xs[j]) {
					return fmt.Errorf("tableau: images of X%d and X%d anticommute", i, j)
				}
				if !t.Zs[i].Commutes(t.Zs[j]) {
					return fmt.Errorf("tableau: images of Z%d and Z%d anticommute", i, j)
				}
			}
		}
	}
	return nil
}

// String renders one generator per line, e.g. "X0 -> +XX".
func (t *Tableau) String() string {
	var b strings.Builder
	for k := range t.Xs {
		fmt.Fprintf(&b, "X%d -> %s\n", k, t.Xs[k])
	}
	for k := range t.Zs {
		fmt.Fprintf(&b, "Z%d -> %s\n", k, t.Zs[k])
	}
	return b.String()
}
