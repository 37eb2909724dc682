package sim

import (
	"fmt"

	"github.com/roach88/gatecat/internal/circuit"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/pauli"
)

// letterByCode maps the 2-bit codes used by the noise channels to letters.
var letterByCode = [4]byte{'I', 'X', 'Y', 'Z'}

func (s *TableauSimulator) doNoise(op circuit.Instruction) error {
	n := s.NumQubits()
	switch op.Gate.ID {
	case gates.GateXError, gates.GateYError, gates.GateZError:
		letter := map[gates.GateType]byte{gates.GateXError: 'X', gates.GateYError: 'Y', gates.GateZError: 'Z'}[op.Gate.ID]
		for _, t := range op.Targets {
			if s.rng.Float64() < op.Args[0] {
				s.ApplyPauli(pauli.Single(n, t.Value, letter))
			}
		}

	case gates.GateDepolarize1:
		for _, t := range op.Targets {
			if s.rng.Float64() < op.Args[0] {
				s.ApplyPauli(pauli.Single(n, t.Value, letterByCode[1+s.rng.Intn(3)]))
			}
		}

	case gates.GatePauliChannel1:
		for _, t := range op.Targets {
			if k := s.pick(op.Args); k >= 0 {
				s.ApplyPauli(pauli.Single(n, t.Value, letterByCode[k+1]))
			}
		}

	case gates.GateDepolarize2:
		for k := 0; k+1 < len(op.Targets); k += 2 {
			if s.rng.Float64() < op.Args[0] {
				s.applyPairError(op.Targets[k].Value, op.Targets[k+1].Value, 1+s.rng.Intn(15))
			}
		}

	case gates.GatePauliChannel2:
		for k := 0; k+1 < len(op.Targets); k += 2 {
			if i := s.pick(op.Args); i >= 0 {
				s.applyPairError(op.Targets[k].Value, op.Targets[k+1].Value, i+1)
			}
		}

	case gates.GateE:
		s.correlatedFired = false
		return s.correlatedError(op)

	case gates.GateElseCorrelatedError:
		if s.correlatedFired {
			return nil
		}
		return s.correlatedError(op)

	default:
		return fmt.Errorf("unsupported noise channel")
	}
	return nil
}

// pick samples one of several disjoint events with the given probabilities.
// It returns the event index, or -1 when none occurs.
func (s *TableauSimulator) pick(probs []float64) int {
	u := s.rng.Float64()
	for i, p := range probs {
		if u < p {
			return i
		}
		u -= p
	}
	return -1
}

// applyPairError applies the two-qubit Pauli with code k (1..15): the high
// two bits select the letter on a, the low two bits the letter on b.
func (s *TableauSimulator) applyPairError(a, b, k int) {
	p := pauli.New(s.NumQubits())
	p.SetLetter(a, letterByCode[k>>2])
	p.SetLetter(b, letterByCode[k&3])
	s.ApplyPauli(p)
}

func (s *TableauSimulator) correlatedError(op circuit.Instruction) error {
	if s.rng.Float64() >= op.Args[0] {
		return nil
	}
	s.correlatedFired = true
	p := pauli.New(s.NumQubits())
	for _, t := range op.Targets {
		if p.Letter(t.Value) != 'I' {
			return fmt.Errorf("qubit %d appears twice in the error", t.Value)
		}
		p.SetLetter(t.Value, t.Pauli)
	}
	s.ApplyPauli(p)
	return nil
}
