// Package circuit holds stabilizer circuits as instruction lists.
//
// Circuits are read from and written to a line-oriented text form:
//
//	# comment
//	H 0
//	CX 0 1
//	DEPOLARIZE1(0.01) 0 1
//	MPP X0*Y1*Z2 X3*X4
//	REPEAT 3 {
//	    M 0
//	    CX rec[-1] 1
//	}
//
// Gate names resolve through gates.GateData, so aliases and any letter case
// are accepted. Adjacent instructions of the same fusable gate with equal
// arguments are merged into one.
package circuit

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/gatecat/internal/gates"
)

// Instruction is one gate application.
type Instruction struct {
	Gate    *gates.Gate
	Args    []float64
	Targets []Target

	// Body and Repetitions are set only for REPEAT blocks.
	Body        *Circuit
	Repetitions uint64
}

// Circuit is an ordered list of instructions.
type Circuit struct {
	Operations []Instruction
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Append validates and appends an instruction, fusing it with the previous
// one when both apply the same fusable gate with equal arguments.
func (c *Circuit) Append(g *gates.Gate, targets []Target, args []float64) error {
	if g == nil || g.ID == gates.NotAGate {
		return fmt.Errorf("append: not a gate")
	}
	if g.Has(gates.GateIsBlock) {
		return fmt.Errorf("append: %s needs a body, use AppendRepeat", g.Name)
	}
	if err := validate(g, targets, args); err != nil {
		return fmt.Errorf("%s: %w", g.Name, err)
	}

	if n := len(c.Operations); n > 0 {
		last := &c.Operations[n-1]
		if last.Gate == g && !g.Has(gates.GateIsNotFusable) && slices.Equal(last.Args, args) {
			last.Targets = append(last.Targets, targets...)
			return nil
		}
	}
	c.Operations = append(c.Operations, Instruction{
		Gate:    g,
		Args:    slices.Clone(args),
		Targets: slices.Clone(targets),
	})
	return nil
}

// AppendByName looks up name in the gate catalog and appends it.
func (c *Circuit) AppendByName(name string, targets []Target, args ...float64) error {
	g, err := gates.GateData.At(name)
	if err != nil {
		return err
	}
	return c.Append(g, targets, args)
}

// AppendRepeat appends a REPEAT block running body the given number of times.
func (c *Circuit) AppendRepeat(repetitions uint64, body *Circuit) error {
	if repetitions == 0 {
		return fmt.Errorf("REPEAT: repetition count must be positive")
	}
	c.Operations = append(c.Operations, Instruction{
		Gate:        &gates.GateData.Items[gates.GateRepeat],
		Body:        body,
		Repetitions: repetitions,
	})
	return nil
}

// Concat returns a new circuit running c and then other.
func (c *Circuit) Concat(other *Circuit) *Circuit {
	out := c.Clone()
	for _, op := range other.Operations {
		if op.Body != nil {
			out.Operations = append(out.Operations, op.clone())
			continue
		}
		// Both sides are already valid, so the only effect of Append here is fusion.
		if err := out.Append(op.Gate, op.Targets, op.Args); err != nil {
			panic(err)
		}
	}
	return out
}

// Clone returns a deep copy.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{Operations: make([]Instruction, len(c.Operations))}
	for i, op := range c.Operations {
		out.Operations[i] = op.clone()
	}
	return out
}

func (op Instruction) clone() Instruction {
	out := Instruction{
		Gate:        op.Gate,
		Args:        slices.Clone(op.Args),
		Targets:     slices.Clone(op.Targets),
		Repetitions: op.Repetitions,
	}
	if op.Body != nil {
		out.Body = op.Body.Clone()
	}
	return out
}

// CountQubits returns one more than the largest qubit index used.
func (c *Circuit) CountQubits() int {
	n := 0
	for _, op := range c.Operations {
		if op.Body != nil {
			n = max(n, op.Body.CountQubits())
			continue
		}
		if op.Gate.ID == gates.GateMPad {
			continue
		}
		for _, t := range op.Targets {
			if t.IsQubit() {
				n = max(n, t.Value+1)
			}
		}
	}
	return n
}

// CountMeasurements returns the number of results the circuit appends to
// the measurement record.
func (c *Circuit) CountMeasurements() uint64 {
	var n uint64
	for _, op := range c.Operations {
		if op.Body != nil {
			n += op.Repetitions * op.Body.CountMeasurements()
			continue
		}
		n += uint64(op.CountResults())
	}
	return n
}

// CountResults returns the number of record bits a single instruction produces.
func (op Instruction) CountResults() int {
	if !op.Gate.Has(gates.GateProducesResults) {
		return 0
	}
	if op.Gate.Has(gates.GateTargetsPauliString) {
		return len(op.Products())
	}
	return len(op.Targets)
}

// Products splits Pauli-string targets into combiner-joined groups.
// "X0*Y1*Z2 X3*X4" yields [[X0 Y1 Z2] [X3 X4]].
func (op Instruction) Products() [][]Target {
	var out [][]Target
	joined := false
	for _, t := range op.Targets {
		if t.Kind == TargetCombiner {
			joined = true
			continue
		}
		if joined && len(out) > 0 {
			out[len(out)-1] = append(out[len(out)-1], t)
		} else {
			out = append(out, []Target{t})
		}
		joined = false
	}
	return out
}

// GateNames returns the distinct gate names used by the circuit, including
// gates inside REPEAT blocks, in first-use order.
func (c *Circuit) GateNames() []string {
	var names []string
	var walk func(*Circuit)
	walk = func(c *Circuit) {
		for _, op := range c.Operations {
			if !slices.Contains(names, op.Gate.Name) {
				names = append(names, op.Gate.Name)
			}
			if op.Body != nil {
				walk(op.Body)
			}
		}
	}
	walk(c)
	return names
}

// String renders the circuit in the form accepted by Parse.
func (c *Circuit) String() string {
	var b strings.Builder
	c.write(&b, "")
	return strings.TrimSuffix(b.String(), "\n")
}

func (c *Circuit) write(b *strings.Builder, indent string) {
	for _, op := range c.Operations {
		b.WriteString(indent)
		if op.Body != nil {
			fmt.Fprintf(b, "REPEAT %d {\n", op.Repetitions)
			op.Body.write(b, indent+"    ")
			b.WriteString(indent)
			b.WriteString("}\n")
			continue
		}
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
}

// String renders a single non-block instruction.
func (op Instruction) String() string {
	var b strings.Builder
	b.WriteString(op.Gate.Name)
	if len(op.Args) > 0 {
		b.WriteByte('(')
		for i, a := range op.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		}
		b.WriteByte(')')
	}
	afterCombiner := false
	for _, t := range op.Targets {
		if t.Kind == TargetCombiner {
			b.WriteByte('*')
			afterCombiner = true
			continue
		}
		if !afterCombiner {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
		afterCombiner = false
	}
	return b.String()
}

// validate checks targets and arguments against the gate's flags.
func validate(g *gates.Gate, targets []Target, args []float64) error {
	if !g.AcceptsArgCount(len(args)) {
		return fmt.Errorf("wrong number of parens arguments: %d", len(args))
	}
	if err := validateArgs(g, args); err != nil {
		return err
	}

	switch {
	case g.Has(gates.GateTakesNoTargets):
		if len(targets) > 0 {
			return fmt.Errorf("takes no targets")
		}
		return nil
	case g.Has(gates.GateOnlyTargetsMeasurementRecord):
		for _, t := range targets {
			if t.Kind != TargetRecord {
				return fmt.Errorf("target %s is not a measurement record target", t)
			}
		}
		return nil
	case g.Has(gates.GateTargetsPauliString):
		return validatePauliProducts(g, targets)
	case g.ID == gates.GateMPad:
		for _, t := range targets {
			if t.Kind != TargetQubit || t.Inverted || t.Value > 1 {
				return fmt.Errorf("target %s must be the bit 0 or 1", t)
			}
		}
		return nil
	case g.Has(gates.GateTargetsPairs):
		return validatePairs(g, targets)
	}

	for _, t := range targets {
		if t.Kind != TargetQubit {
			return fmt.Errorf("target %s is not a qubit", t)
		}
		if t.Inverted && !g.Has(gates.GateProducesResults) {
			return fmt.Errorf("inverted target %s on a gate without results", t)
		}
	}
	return nil
}

func validateArgs(g *gates.Gate, args []float64) error {
	for _, a := range args {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("argument %v is not finite", a)
		}
	}
	if g.Has(gates.GateArgsAreDisjointProbabilities) {
		total := 0.0
		for _, a := range args {
			if a < 0 || a > 1 {
				return fmt.Errorf("probability %v is outside [0, 1]", a)
			}
			total += a
		}
		if total > 1+1e-9 {
			return fmt.Errorf("disjoint probabilities sum to %v > 1", total)
		}
	}
	if g.Has(gates.GateArgsAreUnsignedIntegers) {
		for _, a := range args {
			if a < 0 || a != math.Trunc(a) {
				return fmt.Errorf("argument %v is not a non-negative integer", a)
			}
		}
	}
	return nil
}

func validatePauliProducts(g *gates.Gate, targets []Target) error {
	combinersAllowed := g.Has(gates.GateProducesResults)
	expectFactor := true
	for i, t := range targets {
		if t.Kind == TargetCombiner {
			if !combinersAllowed {
				return fmt.Errorf("combiners are not allowed")
			}
			if expectFactor || i == len(targets)-1 {
				return fmt.Errorf("dangling combiner at target %d", i)
			}
			expectFactor = true
			continue
		}
		if t.Kind != TargetPauli {
			return fmt.Errorf("target %s is not a Pauli target", t)
		}
		if t.Inverted && !g.Has(gates.GateProducesResults) {
			return fmt.Errorf("inverted target %s on a gate without results", t)
		}
		expectFactor = false
	}
	return nil
}

// bitControlSide reports which halves of a pair may be a classical bit:
// the control of CX/CY, either side of CZ, the target of XCZ/YCZ.
func bitControlSide(id gates.GateType) (first, second bool) {
	switch id {
	case gates.GateCX, gates.GateCY:
		return true, false
	case gates.GateCZ:
		return true, true
	case gates.GateXCZ, gates.GateYCZ:
		return false, true
	}
	return false, false
}

func validatePairs(g *gates.Gate, targets []Target) error {
	if len(targets)%2 != 0 {
		return fmt.Errorf("two qubit gate needs an even number of targets, got %d", len(targets))
	}
	first, second := bitControlSide(g.ID)
	for k := 0; k < len(targets); k += 2 {
		a, b := targets[k], targets[k+1]
		for side, t := range []Target{a, b} {
			switch {
			case t.Kind == TargetQubit && !t.Inverted:
			case t.IsClassicalBit() && g.Has(gates.GateCanTargetBits) && (side == 0 && first || side == 1 && second):
			default:
				return fmt.Errorf("target %s is not allowed here", t)
			}
		}
		if a.IsClassicalBit() && b.IsClassicalBit() {
			return fmt.Errorf("pair %s %s has no qubit", a, b)
		}
		if a.Kind == TargetQubit && b.Kind == TargetQubit && a.Value == b.Value {
			return fmt.Errorf("pair %s %s targets the same qubit twice", a, b)
		}
	}
	return nil
}
