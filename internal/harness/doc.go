// Package harness cross-validates the gate catalog.
//
// Every gate carries several independent descriptions of the same
// operation: a stabilizer tableau, a decomposition into H, S, CX, M and R,
// a declared inverse and a list of stabilizer flows. The harness checks
// that they agree:
//
//   - structure (V101): the registry bookkeeping of the gate. Dense id,
//     non-zero flags, name and alias lookups resolve to the slot in one step.
//   - decomposition (V102): the gate and its decomposition produce the same
//     canonical stabilizers on an EPR witness, once with every random
//     measurement forced to 1 and once forced to 0.
//   - inverse (V103): the declared inverse's tableau equals the algebraic
//     inverse of the gate's tableau.
//   - flows (V104): every declared flow holds on the gate itself, sampled
//     on random Bell-pair witnesses.
//   - decomposed_flows (V105): the same flows hold on the decomposition.
//   - decomposition_required (V106): unitary gates declare a decomposition.
//
// # Witnesses
//
// The EPR witness for an n-qubit gate entangles each target q with an
// ancilla q+n:
//
//	H 0
//	CX 0 2
//	H 1
//	CX 1 3
//
// Flow targets are qubit 0, qubits 0 and 1 for pair gates, and the pinned
// product pattern gates.MPPDecompositionTargets for MPP.
//
// # Profiles
//
// A run can be configured from YAML:
//
//	name: quick
//	witnesses: 64
//	gates: [H, CX, MPP]
//	checks: [flows, decomposed_flows]
//
// # Determinism
//
// Each gate is validated with an RNG seeded from Options.Seed xor the gate
// id, so a report depends only on its options and never on scheduling.
package harness
