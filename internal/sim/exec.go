package sim

import (
	"fmt"

	"github.com/roach88/gatecat/internal/circuit"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/pauli"
)

// Run executes every instruction of c, growing the state to cover its qubits.
func (s *TableauSimulator) Run(c *circuit.Circuit) error {
	s.EnsureQubits(c.CountQubits())
	for _, op := range c.Operations {
		if err := s.Do(op); err != nil {
			return err
		}
	}
	return nil
}

// Do executes a single instruction.
func (s *TableauSimulator) Do(op circuit.Instruction) error {
	g := op.Gate
	if op.Body != nil {
		for r := uint64(0); r < op.Repetitions; r++ {
			if err := s.Run(op.Body); err != nil {
				return err
			}
		}
		return nil
	}

	var err error
	switch {
	case g.Has(gates.GateIsUnitary):
		err = s.doUnitary(op)
	case g.ID == gates.GateMPad:
		err = s.doPad(op)
	case g.ID == gates.GateMPP:
		err = s.doPauliProducts(op)
	case g.Has(gates.GateIsMeasurement):
		err = s.doMeasure(op)
	case g.Has(gates.GateIsReset):
		err = s.doReset(op)
	case g.Has(gates.GateIsNoise):
		err = s.doNoise(op)
	case isAnnotation(g.ID):
		return nil
	default:
		err = fmt.Errorf("unsupported gate")
	}
	if err != nil {
		return fmt.Errorf("sim: %s: %w", op.String(), err)
	}
	return nil
}

func isAnnotation(id gates.GateType) bool {
	switch id {
	case gates.GateDetector, gates.GateObservableInclude, gates.GateTick, gates.GateQubitCoords, gates.GateShiftCoords:
		return true
	}
	return false
}

func (s *TableauSimulator) doUnitary(op circuit.Instruction) error {
	t, err := s.gateTableau(op.Gate)
	if err != nil {
		return err
	}
	if !op.Gate.Has(gates.GateTargetsPairs) {
		for _, tg := range op.Targets {
			if err := s.ApplyTableau(t, tg.Value); err != nil {
				return err
			}
		}
		return nil
	}
	for k := 0; k+1 < len(op.Targets); k += 2 {
		a, b := op.Targets[k], op.Targets[k+1]
		if a.IsClassicalBit() || b.IsClassicalBit() {
			if err := s.doClassicalControl(op.Gate.ID, a, b); err != nil {
				return err
			}
			continue
		}
		if err := s.ApplyTableau(t, a.Value, b.Value); err != nil {
			return err
		}
	}
	return nil
}

// doClassicalControl applies the Pauli a controlled gate would apply when
// its control is the classical bit among a and b.
func (s *TableauSimulator) doClassicalControl(id gates.GateType, a, b circuit.Target) error {
	bit, qubit := a, b
	if b.IsClassicalBit() {
		bit, qubit = b, a
	}
	on, err := s.readBit(bit)
	if err != nil || !on {
		return err
	}
	var p byte
	switch id {
	case gates.GateCX, gates.GateXCZ:
		p = 'X'
	case gates.GateCY, gates.GateYCZ:
		p = 'Y'
	case gates.GateCZ:
		p = 'Z'
	default:
		return fmt.Errorf("gate cannot be classically controlled")
	}
	s.ApplyPauli(pauli.Single(s.NumQubits(), qubit.Value, p))
	return nil
}

func (s *TableauSimulator) readBit(t circuit.Target) (bool, error) {
	if t.Kind == circuit.TargetSweep {
		return t.Value < len(s.Sweep) && s.Sweep[t.Value], nil
	}
	k := len(s.Record) + t.Value
	if k < 0 {
		return false, fmt.Errorf("%s looks back past the start of the record (%d results)", t, len(s.Record))
	}
	return s.Record[k], nil
}

// basisOf returns the Pauli basis a single-qubit collapsing gate acts in.
func basisOf(id gates.GateType) byte {
	switch id {
	case gates.GateMX, gates.GateMRX, gates.GateRX:
		return 'X'
	case gates.GateMY, gates.GateMRY, gates.GateRY:
		return 'Y'
	}
	return 'Z'
}

func (s *TableauSimulator) flipProbability(op circuit.Instruction) float64 {
	if len(op.Args) == 0 {
		return 0
	}
	return op.Args[0]
}

func (s *TableauSimulator) record(result bool, p float64) {
	if p > 0 && s.rng.Float64() < p {
		result = !result
	}
	s.Record = append(s.Record, result)
}

func (s *TableauSimulator) doMeasure(op circuit.Instruction) error {
	basis := basisOf(op.Gate.ID)
	p := s.flipProbability(op)
	reset := op.Gate.Has(gates.GateIsReset)
	for _, t := range op.Targets {
		var raw bool
		var err error
		if reset {
			raw, err = s.Reset(t.Value, basis)
		} else {
			raw, err = s.MeasurePauli(pauli.Single(s.NumQubits(), t.Value, basis))
		}
		if err != nil {
			return err
		}
		s.record(raw != t.Inverted, p)
	}
	return nil
}

func (s *TableauSimulator) doReset(op circuit.Instruction) error {
	basis := basisOf(op.Gate.ID)
	for _, t := range op.Targets {
		if _, err := s.Reset(t.Value, basis); err != nil {
			return err
		}
	}
	return nil
}

func (s *TableauSimulator) doPad(op circuit.Instruction) error {
	p := s.flipProbability(op)
	for _, t := range op.Targets {
		s.record(t.Value == 1, p)
	}
	return nil
}

// productOf multiplies the factors of one Pauli product into an observable.
// The sign carries the xor of the factors' inversion flags.
func (s *TableauSimulator) productOf(factors []circuit.Target) (pauli.PauliString, error) {
	acc := pauli.NewAccumulator(s.NumQubits())
	inverted := false
	for _, f := range factors {
		acc.MulRight(pauli.Single(s.NumQubits(), f.Value, f.Pauli))
		inverted = inverted != f.Inverted
	}
	p, err := acc.Result()
	if err != nil {
		return pauli.PauliString{}, fmt.Errorf("pauli product is not hermitian: %w", err)
	}
	p.Sign = p.Sign != inverted
	return p, nil
}

func (s *TableauSimulator) doPauliProducts(op circuit.Instruction) error {
	p := s.flipProbability(op)
	for _, factors := range op.Products() {
		obs, err := s.productOf(factors)
		if err != nil {
			return err
		}
		r, err := s.MeasurePauli(obs)
		if err != nil {
			return err
		}
		s.record(r, p)
	}
	return nil
}
