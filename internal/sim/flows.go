package sim

import (
	"fmt"
	"math/rand"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/roach88/gatecat/internal/circuit"
	"github.com/roach88/gatecat/internal/flow"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/pauli"
)

// CheckFlows reports, for each flow, whether c satisfies it on every one of
// numSamples random witnesses.
//
// A witness entangles each circuit qubit q with an ancilla q+n, measures
// the flow input on the circuit qubits, runs c, then measures the flow
// output. The flow holds for the witness when the two results and the
// referenced measurement record bits xor to zero. Witness seeds are drawn
// by a gopter property seeded from rng.
func CheckFlows(numSamples int, rng *rand.Rand, c *circuit.Circuit, flows []flow.Flow) ([]bool, error) {
	results := make([]bool, len(flows))
	for i, f := range flows {
		ok, err := checkFlow(numSamples, rng.Int63(), c, f)
		if err != nil {
			return nil, fmt.Errorf("flow %s: %w", f, err)
		}
		results[i] = ok
	}
	return results, nil
}

func checkFlow(numSamples int, seed int64, c *circuit.Circuit, f flow.Flow) (bool, error) {
	n := max(c.CountQubits(), f.NumQubits())

	var simErr error
	witness := func(sampleSeed int64) bool {
		ok, err := sampleFlow(n, rand.New(rand.NewSource(sampleSeed)), c, f)
		if err != nil {
			simErr = err
			return false
		}
		return ok
	}

	params := gopter.DefaultTestParametersWithSeed(seed)
	params.MinSuccessfulTests = numSamples
	result := prop.ForAll(witness, gen.Int64()).Check(params)
	if simErr != nil {
		return false, simErr
	}
	return result.Passed(), nil
}

// sampleFlow runs one witness of the flow on 2n qubits.
func sampleFlow(n int, rng *rand.Rand, c *circuit.Circuit, f flow.Flow) (bool, error) {
	s := New(2*n, RandomSign, rng)
	if err := s.prepareBellPairs(n); err != nil {
		return false, err
	}

	a, err := s.measureOn(f.Input, n)
	if err != nil {
		return false, err
	}

	if err := s.Run(c); err != nil {
		return false, err
	}

	b, err := s.measureOn(f.Output, n)
	if err != nil {
		return false, err
	}

	parity := a != b
	for _, k := range f.Measurements {
		i := len(s.Record) + k
		if i < 0 {
			return false, fmt.Errorf("rec(%d) looks back past the %d recorded results", k, len(s.Record))
		}
		parity = parity != s.Record[i]
	}
	return !parity, nil
}

// prepareBellPairs entangles qubit q with ancilla q+n for every q < n.
func (s *TableauSimulator) prepareBellPairs(n int) error {
	hadamard, err := s.gateTableau(&gates.GateData.Items[gates.GateH])
	if err != nil {
		return err
	}
	cnot, err := s.gateTableau(&gates.GateData.Items[gates.GateCX])
	if err != nil {
		return err
	}
	for q := 0; q < n; q++ {
		if err := s.ApplyTableau(hadamard, q); err != nil {
			return err
		}
		if err := s.ApplyTableau(cnot, q, q+n); err != nil {
			return err
		}
	}
	return nil
}

// measureOn measures the observable p restricted to the first n qubits.
// The identity reports its sign without touching the state.
func (s *TableauSimulator) measureOn(p pauli.PauliString, n int) (bool, error) {
	if p.IsIdentity() {
		return p.Sign, nil
	}
	if p.NumQubits() > n {
		return false, fmt.Errorf("observable %s is wider than %d qubits", p, n)
	}
	return s.MeasurePauli(p)
}
