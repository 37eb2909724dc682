package harness

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/roach88/gatecat/internal/circuit"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/sim"
)

// decompositionAlphabet is the gate set decompositions may use.
var decompositionAlphabet = []string{"H", "S", "CX", "M", "R"}

// checkSentinel verifies slot 0 holds the flagless sentinel.
func checkSentinel(d *gates.Data) Finding {
	s := &d.Items[gates.NotAGate]
	name := s.Name
	if name == "" {
		name = "NOT_A_GATE"
	}
	if s.ID != gates.NotAGate || s.Flags != gates.NoGateFlag {
		return fail(name, CheckStructure, fmt.Sprintf("sentinel slot holds id %d with flags %s", s.ID, s.Flags))
	}
	return pass(name, CheckStructure)
}

// checkStructure verifies placement, flags, names and the inverse link of
// the gate stored at slot.
func checkStructure(d *gates.Data, slot gates.GateType) Finding {
	g := &d.Items[slot]
	if g.Flags == gates.NoGateFlag {
		return fail(g.Name, CheckStructure, fmt.Sprintf("slot %d holds a gate without flags", slot))
	}
	if g.ID != slot {
		return fail(g.Name, CheckStructure, fmt.Sprintf("slot %d holds id %d", slot, g.ID))
	}
	if _, id := d.Slot(d.NameToHash(g.Name)); id != slot {
		return fail(g.Name, CheckStructure, fmt.Sprintf("hashed slot of %q holds id %d, want %d", g.Name, id, slot))
	}
	for _, name := range append([]string{g.Name}, d.Aliases(slot)...) {
		got, err := d.At(name)
		if err != nil {
			return fail(g.Name, CheckStructure, fmt.Sprintf("lookup of %q: %v", name, err))
		}
		if got.ID != slot {
			return fail(g.Name, CheckStructure, fmt.Sprintf("%q resolves to id %d, want %d", name, got.ID, slot))
		}
		if d.Items[got.ID].ID != got.ID {
			return fail(g.Name, CheckStructure, fmt.Sprintf("%q does not resolve in one step", name))
		}
	}
	return pass(g.Name, CheckStructure)
}

func checkDecompositionRequired(g *gates.Gate) Finding {
	if _, err := g.Decomposition(); err != nil {
		return fail(g.Name, CheckDecompositionRequired, err.Error())
	}
	return pass(g.Name, CheckDecompositionRequired)
}

// checkDecomposition runs g and its decomposition after the same EPR
// witness and compares the canonical stabilizers and records under both
// forced sign conventions.
func checkDecomposition(g *gates.Gate) Finding {
	dec, err := decompositionCircuit(g)
	if err != nil {
		return fail(g.Name, CheckDecomposition, err.Error())
	}
	for _, name := range dec.GateNames() {
		if !slices.Contains(decompositionAlphabet, name) {
			return fail(g.Name, CheckDecomposition, fmt.Sprintf("decomposition uses %s outside {%s}", name, strings.Join(decompositionAlphabet, ", ")))
		}
	}
	if m := dec.CountMeasurements(); m > 1 {
		return fail(g.Name, CheckDecomposition, fmt.Sprintf("decomposition records %d results; the witness compares at most one", m))
	}
	direct, err := gateCircuit(g)
	if err != nil {
		return fail(g.Name, CheckDecomposition, err.Error())
	}

	n := direct.CountQubits()
	for _, bias := range []sim.SignBias{sim.NegativeSign, sim.PositiveSign} {
		want, wantRec, err := witnessState(n, bias, direct)
		if err != nil {
			return fail(g.Name, CheckDecomposition, err.Error())
		}
		got, gotRec, err := witnessState(n, bias, dec)
		if err != nil {
			return fail(g.Name, CheckDecomposition, fmt.Sprintf("decomposition: %v", err))
		}
		if !slices.Equal(want, got) {
			return fail(g.Name, CheckDecomposition, fmt.Sprintf("sign bias %d: gate stabilizers [%s], decomposition stabilizers [%s]",
				bias, strings.Join(want, " "), strings.Join(got, " ")))
		}
		if !slices.Equal(wantRec, gotRec) {
			return fail(g.Name, CheckDecomposition, fmt.Sprintf("sign bias %d: gate records %v, decomposition records %v", bias, wantRec, gotRec))
		}
	}
	return pass(g.Name, CheckDecomposition)
}

// witnessState entangles qubits 0..n-1 with ancillas n..2n-1, runs c and
// returns the canonical stabilizers and the record.
func witnessState(n int, bias sim.SignBias, c *circuit.Circuit) ([]string, []bool, error) {
	var b strings.Builder
	for q := 0; q < n; q++ {
		fmt.Fprintf(&b, "H %d\nCX %d %d\n", q, q, q+n)
	}
	prep, err := circuit.Parse(b.String())
	if err != nil {
		return nil, nil, err
	}

	s := sim.New(2*n, bias, nil)
	if err := s.Run(prep); err != nil {
		return nil, nil, err
	}
	if err := s.Run(c); err != nil {
		return nil, nil, err
	}
	canon, err := s.CanonicalStabilizers()
	if err != nil {
		return nil, nil, err
	}
	out := make([]string, len(canon))
	for i, p := range canon {
		out[i] = p.String()
	}
	return out, s.Record, nil
}

func checkInverse(d *gates.Data, g *gates.Gate) Finding {
	t, err := g.Tableau()
	if err != nil {
		return fail(g.Name, CheckInverse, err.Error())
	}
	want, err := t.Inverse()
	if err != nil {
		return fail(g.Name, CheckInverse, err.Error())
	}
	inv := d.InverseOf(g)
	got, err := inv.Tableau()
	if err != nil {
		return fail(g.Name, CheckInverse, fmt.Sprintf("declared inverse %s: %v", inv.Name, err))
	}
	if !got.Equal(want) {
		return fail(g.Name, CheckInverse, fmt.Sprintf("declared inverse %s has tableau\n%s\nwant\n%s", inv.Name, got, want))
	}
	return pass(g.Name, CheckInverse)
}

func checkFlows(g *gates.Gate, witnesses int, rng *rand.Rand) Finding {
	c, err := gateCircuit(g)
	if err != nil {
		return fail(g.Name, CheckFlows, err.Error())
	}
	return flowFinding(g, CheckFlows, c, witnesses, rng)
}

func checkDecomposedFlows(g *gates.Gate, witnesses int, rng *rand.Rand) Finding {
	c, err := decompositionCircuit(g)
	if err != nil {
		return fail(g.Name, CheckDecomposedFlows, err.Error())
	}
	return flowFinding(g, CheckDecomposedFlows, c, witnesses, rng)
}

func flowFinding(g *gates.Gate, check Check, c *circuit.Circuit, witnesses int, rng *rand.Rand) Finding {
	flows, err := g.Flows()
	if err != nil {
		return fail(g.Name, check, err.Error())
	}
	held, err := sim.CheckFlows(witnesses, rng, c, flows)
	if err != nil {
		return fail(g.Name, check, err.Error())
	}
	var broken []string
	for i, ok := range held {
		if !ok {
			broken = append(broken, flows[i].String())
		}
	}
	if len(broken) > 0 {
		return fail(g.Name, check, fmt.Sprintf("flows violated within %d witnesses: %s", witnesses, strings.Join(broken, "; ")))
	}
	return pass(g.Name, check)
}

// gateCircuit applies g once to its canonical targets: qubit 0, qubits 0
// and 1 for pair gates, or the pinned product pattern for MPP.
func gateCircuit(g *gates.Gate) (*circuit.Circuit, error) {
	targets := "0"
	switch {
	case g.ID == gates.GateMPP:
		targets = gates.MPPDecompositionTargets
	case g.Has(gates.GateTargetsPairs):
		targets = "0 1"
	}
	c, err := circuit.Parse(g.Name + " " + targets)
	if err != nil {
		return nil, fmt.Errorf("canonical circuit: %w", err)
	}
	return c, nil
}

func decompositionCircuit(g *gates.Gate) (*circuit.Circuit, error) {
	text, err := g.Decomposition()
	if err != nil {
		return nil, err
	}
	c, err := circuit.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("decomposition: %w", err)
	}
	return c, nil
}

// hasFlows reports whether the gate declares any flow text.
func hasFlows(g *gates.Gate) bool {
	return len(g.ExtraData().Flows) > 0
}

// applicable lists the checks that apply to g, in report order.
func applicable(g *gates.Gate) []Check {
	checks := []Check{CheckStructure}
	unitary := g.Has(gates.GateIsUnitary)
	_, decErr := g.Decomposition()
	hasDec := decErr == nil
	if unitary {
		checks = append(checks, CheckDecompositionRequired)
	}
	if hasDec && g.ID != gates.GateMPP {
		checks = append(checks, CheckDecomposition)
	}
	if unitary {
		checks = append(checks, CheckInverse)
	}
	if hasFlows(g) {
		checks = append(checks, CheckFlows)
		if hasDec {
			checks = append(checks, CheckDecomposedFlows)
		}
	}
	return checks
}

// validateGate runs the selected checks that apply to the gate at slot.
func validateGate(d *gates.Data, slot gates.GateType, selected []Check, witnesses int, rng *rand.Rand) []Finding {
	g := &d.Items[slot]
	var findings []Finding
	for _, c := range applicable(g) {
		if !slices.Contains(selected, c) {
			continue
		}
		var f Finding
		switch c {
		case CheckStructure:
			f = checkStructure(d, slot)
		case CheckDecompositionRequired:
			f = checkDecompositionRequired(g)
		case CheckDecomposition:
			f = checkDecomposition(g)
		case CheckInverse:
			f = checkInverse(d, g)
		case CheckFlows:
			f = checkFlows(g, witnesses, rng)
		case CheckDecomposedFlows:
			f = checkDecomposedFlows(g, witnesses, rng)
		}
		findings = append(findings, f)
	}
	return findings
}
