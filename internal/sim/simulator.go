// Package sim is an exact stabilizer tableau simulator.
//
// The simulator tracks n stabilizer and n destabilizer generators
// (Aaronson-Gottesman). It executes every gate in the catalog: unitaries
// through their catalog tableau, measurements and resets in any Pauli basis,
// Pauli product measurements, noise channels and classically controlled
// Paulis. It exists to check gate descriptions against each other, so it
// favors clarity over speed.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/pauli"
	"github.com/roach88/gatecat/internal/tableau"
)

// SignBias fixes the outcome of measurements whose result is not determined
// by the state.
type SignBias int8

const (
	// RandomSign draws nondeterministic results from the simulator's RNG.
	RandomSign SignBias = 0
	// NegativeSign collapses nondeterministic measurements into the -1 eigenstate (result 1).
	NegativeSign SignBias = -1
	// PositiveSign collapses nondeterministic measurements into the +1 eigenstate (result 0).
	PositiveSign SignBias = +1
)

// TableauSimulator holds a stabilizer state and a measurement record.
// It is not safe for concurrent use.
type TableauSimulator struct {
	stabs   []pauli.PauliString
	destabs []pauli.PauliString

	// Record holds every result produced so far, oldest first.
	Record []bool

	// Sweep holds the sweep bits read by sweep[k] targets. Missing bits read as 0.
	Sweep []bool

	bias SignBias
	rng  *rand.Rand

	tableaus        map[gates.GateType]*tableau.Tableau
	correlatedFired bool
}

// New returns a simulator holding numQubits qubits in the |0> state.
// A nil rng is replaced by a fixed-seed generator.
func New(numQubits int, bias SignBias, rng *rand.Rand) *TableauSimulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &TableauSimulator{
		bias:     bias,
		rng:      rng,
		tableaus: map[gates.GateType]*tableau.Tableau{},
	}
	s.EnsureQubits(numQubits)
	return s
}

// NumQubits returns the number of simulated qubits.
func (s *TableauSimulator) NumQubits() int {
	return len(s.stabs)
}

// EnsureQubits grows the state to at least n qubits. New qubits start in |0>.
func (s *TableauSimulator) EnsureQubits(n int) {
	old := len(s.stabs)
	if n <= old {
		return
	}
	for i := range s.stabs {
		s.stabs[i] = s.stabs[i].Resized(n)
		s.destabs[i] = s.destabs[i].Resized(n)
	}
	for k := old; k < n; k++ {
		s.destabs = append(s.destabs, pauli.Single(n, k, 'X'))
		s.stabs = append(s.stabs, pauli.Single(n, k, 'Z'))
	}
}

// Stabilizers returns a copy of the current stabilizer generators.
func (s *TableauSimulator) Stabilizers() []pauli.PauliString {
	out := make([]pauli.PauliString, len(s.stabs))
	for i, g := range s.stabs {
		out[i] = g.Clone()
	}
	return out
}

// ApplyTableau conjugates the state by the Clifford t acting on qubits qs.
func (s *TableauSimulator) ApplyTableau(t *tableau.Tableau, qs ...int) error {
	if len(qs) != t.NumQubits() {
		return fmt.Errorf("sim: %d-qubit tableau applied to %d targets", t.NumQubits(), len(qs))
	}
	for _, q := range qs {
		if q < 0 || q >= s.NumQubits() {
			return fmt.Errorf("sim: qubit %d out of range", q)
		}
	}
	for _, gens := range [][]pauli.PauliString{s.stabs, s.destabs} {
		for i := range gens {
			g := &gens[i]
			sub := pauli.New(len(qs))
			for j, q := range qs {
				sub.SetLetter(j, g.Letter(q))
			}
			if sub.IsIdentity() {
				continue
			}
			img, err := t.Apply(sub)
			if err != nil {
				return fmt.Errorf("sim: %w", err)
			}
			for j, q := range qs {
				g.SetLetter(q, img.Letter(j))
			}
			g.Sign = g.Sign != img.Sign
		}
	}
	return nil
}

// ApplyPauli applies the Pauli product p (its sign is irrelevant).
func (s *TableauSimulator) ApplyPauli(p pauli.PauliString) {
	for _, gens := range [][]pauli.PauliString{s.stabs, s.destabs} {
		for i := range gens {
			if !gens[i].Commutes(p) {
				gens[i].Sign = !gens[i].Sign
			}
		}
	}
}

// MeasurePauli measures the observable p and returns true for the -1
// outcome. The state collapses; the record is left untouched.
func (s *TableauSimulator) MeasurePauli(p pauli.PauliString) (bool, error) {
	n := s.NumQubits()
	if p.NumQubits() > n {
		for q := n; q < p.NumQubits(); q++ {
			if p.Letter(q) != 'I' {
				return false, fmt.Errorf("sim: observable %s touches qubit %d of a %d-qubit state", p, q, n)
			}
		}
	}
	p = p.Resized(n)

	pivot := -1
	for i := range s.stabs {
		if !s.stabs[i].Commutes(p) {
			pivot = i
			break
		}
	}

	if pivot < 0 {
		return s.peekDeterministic(p)
	}

	for i := range s.stabs {
		if i != pivot && !s.stabs[i].Commutes(p) {
			prod, err := pauli.Mul(s.stabs[i], s.stabs[pivot])
			if err != nil {
				return false, fmt.Errorf("sim: %w", err)
			}
			s.stabs[i] = prod
		}
		if i != pivot && !s.destabs[i].Commutes(p) {
			prod, err := pauli.Mul(s.destabs[i], s.stabs[pivot])
			if err != nil {
				return false, fmt.Errorf("sim: %w", err)
			}
			s.destabs[i] = prod
		}
	}

	result := s.collapse()
	s.destabs[pivot] = s.stabs[pivot]
	s.stabs[pivot] = p.Clone()
	s.stabs[pivot].Sign = p.Sign != result
	return result, nil
}

// peekDeterministic returns the result of measuring p when p (up to sign)
// belongs to the stabilizer group.
func (s *TableauSimulator) peekDeterministic(p pauli.PauliString) (bool, error) {
	acc := pauli.New(s.NumQubits())
	for i := range s.destabs {
		if s.destabs[i].Commutes(p) {
			continue
		}
		prod, err := pauli.Mul(acc, s.stabs[i])
		if err != nil {
			return false, fmt.Errorf("sim: %w", err)
		}
		acc = prod
	}
	unsigned := p.Clone()
	unsigned.Sign = acc.Sign
	if !acc.Equal(unsigned) {
		return false, fmt.Errorf("sim: stabilizer product %s does not match observable %s", acc, p)
	}
	return acc.Sign != p.Sign, nil
}

func (s *TableauSimulator) collapse() bool {
	switch s.bias {
	case NegativeSign:
		return true
	case PositiveSign:
		return false
	}
	return s.rng.Intn(2) == 1
}

// Reset forces qubit q into the +1 eigenstate of the single-qubit Pauli basis.
// It returns the raw result of the collapsing measurement.
func (s *TableauSimulator) Reset(q int, basis byte) (bool, error) {
	r, err := s.MeasurePauli(pauli.Single(s.NumQubits(), q, basis))
	if err != nil {
		return false, err
	}
	if r {
		fix := byte('X')
		if basis != 'Z' {
			fix = 'Z'
		}
		s.ApplyPauli(pauli.Single(s.NumQubits(), q, fix))
	}
	return r, nil
}

// CanonicalStabilizers returns the stabilizer generators in reduced row
// echelon form. Two states are equal exactly when their canonical
// stabilizers are equal, independent of how the generators were reached.
func (s *TableauSimulator) CanonicalStabilizers() ([]pauli.PauliString, error) {
	rows := s.Stabilizers()
	n := s.NumQubits()
	minPivot := 0
	for q := 0; q < n; q++ {
		for _, hasX := range []bool{true, false} {
			pivot := -1
			for k := minPivot; k < len(rows); k++ {
				if component(rows[k], q, hasX) {
					pivot = k
					break
				}
			}
			if pivot < 0 {
				continue
			}
			for k := range rows {
				if k != pivot && component(rows[k], q, hasX) {
					prod, err := pauli.Mul(rows[k], rows[pivot])
					if err != nil {
						return nil, fmt.Errorf("sim: canonical stabilizers: %w", err)
					}
					rows[k] = prod
				}
			}
			rows[pivot], rows[minPivot] = rows[minPivot], rows[pivot]
			minPivot++
		}
	}
	return rows, nil
}

func component(p pauli.PauliString, q int, x bool) bool {
	if x {
		return p.Xs[q]
	}
	return p.Zs[q]
}

// gateTableau returns the catalog tableau of g, parsed once per simulator.
func (s *TableauSimulator) gateTableau(g *gates.Gate) (*tableau.Tableau, error) {
	if t, ok := s.tableaus[g.ID]; ok {
		return t, nil
	}
	t, err := g.Tableau()
	if err != nil {
		return nil, err
	}
	s.tableaus[g.ID] = t
	return t, nil
}
