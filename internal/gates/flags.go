package gates

import "strings"

// GateFlags is a bitset of orthogonal behavioral predicates on a gate.
//
// The zero value NoGateFlag is reserved: a slot whose flags are zero holds
// no real gate. Bits carry no ordering; test them with Has, never with
// numeric comparison beyond zero-vs-nonzero.
type GateFlags uint16

const (
	// NoGateFlag marks the sentinel slot. Every real gate has at least one bit set.
	NoGateFlag GateFlags = 0

	// GateIsUnitary marks Clifford gates with a tableau and a required decomposition.
	GateIsUnitary GateFlags = 1 << 0
	// GateTargetsPairs marks two-qubit gates whose targets are consumed in pairs.
	GateTargetsPairs GateFlags = 1 << 1
	// GateIsMeasurement marks gates that collapse the state by measuring it.
	GateIsMeasurement GateFlags = 1 << 2
	// GateProducesResults marks gates that append bits to the measurement record.
	GateProducesResults GateFlags = 1 << 3
	// GateIsReset marks gates that reinitialize their targets.
	GateIsReset GateFlags = 1 << 4
	// GateIsNoise marks stochastic error channels.
	GateIsNoise GateFlags = 1 << 5
	// GateTargetsPauliString marks gates whose targets are Pauli-typed (X3, Y1, ...).
	GateTargetsPauliString GateFlags = 1 << 6
	// GateIsNotFusable marks gates that must not merge with an adjacent copy of themselves.
	GateIsNotFusable GateFlags = 1 << 7
	// GateTakesNoTargets marks gates that reject every target.
	GateTakesNoTargets GateFlags = 1 << 8
	// GateOnlyTargetsMeasurementRecord marks gates whose targets are all rec[-k].
	GateOnlyTargetsMeasurementRecord GateFlags = 1 << 9
	// GateCanTargetBits marks controlled gates whose control may be a classical bit.
	GateCanTargetBits GateFlags = 1 << 10
	// GateArgsAreDisjointProbabilities marks gates whose arguments are probabilities summing to at most 1.
	GateArgsAreDisjointProbabilities GateFlags = 1 << 11
	// GateArgsAreUnsignedIntegers marks gates whose arguments must be non-negative integers.
	GateArgsAreUnsignedIntegers GateFlags = 1 << 12
	// GateIsBlock marks gates that own a nested block of instructions.
	GateIsBlock GateFlags = 1 << 13
	// GateIsSingleQubitGate marks gates that act independently on each qubit target.
	GateIsSingleQubitGate GateFlags = 1 << 14
)

var flagNames = []struct {
	flag GateFlags
	name string
}{
	{GateIsUnitary, "GATE_IS_UNITARY"},
	{GateTargetsPairs, "GATE_TARGETS_PAIRS"},
	{GateIsMeasurement, "GATE_IS_MEASUREMENT"},
	{GateProducesResults, "GATE_PRODUCES_RESULTS"},
	{GateIsReset, "GATE_IS_RESET"},
	{GateIsNoise, "GATE_IS_NOISE"},
	{GateTargetsPauliString, "GATE_TARGETS_PAULI_STRING"},
	{GateIsNotFusable, "GATE_IS_NOT_FUSABLE"},
	{GateTakesNoTargets, "GATE_TAKES_NO_TARGETS"},
	{GateOnlyTargetsMeasurementRecord, "GATE_ONLY_TARGETS_MEASUREMENT_RECORD"},
	{GateCanTargetBits, "GATE_CAN_TARGET_BITS"},
	{GateArgsAreDisjointProbabilities, "GATE_ARGS_ARE_DISJOINT_PROBABILITIES"},
	{GateArgsAreUnsignedIntegers, "GATE_ARGS_ARE_UNSIGNED_INTEGERS"},
	{GateIsBlock, "GATE_IS_BLOCK"},
	{GateIsSingleQubitGate, "GATE_IS_SINGLE_QUBIT_GATE"},
}

// Has reports whether every bit of flag is set in f.
func (f GateFlags) Has(flag GateFlags) bool {
	return flag != NoGateFlag && f&flag == flag
}

// Names returns the names of the set bits in declaration order.
func (f GateFlags) Names() []string {
	names := []string{}
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

// String joins the set bit names with '|'. The zero value renders as NO_GATE_FLAG.
func (f GateFlags) String() string {
	if f == NoGateFlag {
		return "NO_GATE_FLAG"
	}
	return strings.Join(f.Names(), "|")
}

// ParseFlag resolves a flag by its GATE_* name.
func ParseFlag(name string) (GateFlags, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return NoGateFlag, false
}
