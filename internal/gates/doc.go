// Package gates is the catalog of every gate the stabilizer toolchain recognizes.
//
// The catalog (GateData) is built once during package initialization and is
// immutable afterwards. It is safe for concurrent use without locking.
// GateData and Data.Items are exported for zero-cost indexing only; the
// package offers no way to change them and callers must not write to them.
//
// LAYOUT:
//
// Dense ids: every gate lives in Data.Items at the slot equal to its id.
// Slot 0 (NotAGate) is the sentinel; its flags are NoGateFlag and it is
// never returned by a name lookup.
//
// Hashed names: every canonical name and alias occupies its own slot of a
// fixed-size table. Aliases point straight at the canonical id, so lookups
// never chain. Case is ignored for ASCII letters: "cnot", "CNOT" and "ZCX"
// all resolve to CX.
//
// Lookup: Has and At perform one hash, one index and one case-insensitive
// compare. Neither allocates on success.
//
// HEAVY DATA:
//
// Tableaus, decompositions and flows are produced on demand by each gate's
// ExtraDataFunc. Gate.Tableau and Gate.Flows parse fresh values on every
// call; callers that need them repeatedly should keep their own copy.
//
// CONSTRUCTION FAILURES:
//
// A static description that breaks the registry invariants (slot/id
// mismatch, zero flags on a real gate, duplicate names, unitary gates
// without a decomposition, unresolvable hash collisions) makes package
// initialization panic with a *CatalogError naming the gate.
package gates
