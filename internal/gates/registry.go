package gates

import (
	"fmt"
	"iter"
	"slices"
)

// hashEntry is one slot of the hashed-name table. The id of an empty slot is NotAGate.
type hashEntry struct {
	name string
	id   GateType
}

// gateDef is the static description of one gate consumed by buildData.
type gateDef struct {
	gate    Gate
	aliases []string
}

// Data is the gate catalog: contiguous storage indexed by dense id plus a
// perfectly hashed, case-insensitive name table covering every canonical
// name and alias.
//
// A Data value is immutable after construction and safe for concurrent use.
type Data struct {
	// Items holds every gate at the slot equal to its id. Items[0] is the sentinel.
	// It is read-only; lookups hand out pointers into it.
	Items [NumGates]Gate

	hashed  [TableSize]hashEntry
	aliases [NumGates][]string
	salt    uint32
}

// GateData is the process-wide gate catalog, built during package initialization.
// Callers must not write through it or reassign it.
var GateData = mustBuildData(catalogDefs())

func mustBuildData(defs []gateDef) *Data {
	d, err := buildData(defs)
	if err != nil {
		panic(err)
	}
	return d
}

// buildData places every definition at its dense slot, checks the static
// invariants and searches for a salt under which all names hash to distinct
// slots. Any violation is an InitializationFailure naming the gate.
func buildData(defs []gateDef) (*Data, error) {
	d := &Data{}
	filled := [NumGates]bool{}

	for _, def := range defs {
		g := def.gate
		if int(g.ID) >= NumGates {
			return nil, newInitializationError(g.Name, "id %d is outside the catalog (%d slots)", g.ID, NumGates)
		}
		if filled[g.ID] {
			return nil, newInitializationError(g.Name, "slot %d already holds %q", g.ID, d.Items[g.ID].Name)
		}
		filled[g.ID] = true
		d.Items[g.ID] = g
		d.aliases[g.ID] = def.aliases
	}

	// Slot 0 is the sentinel.
	if !filled[NotAGate] || d.Items[NotAGate].ID != NotAGate || d.Items[NotAGate].Flags != NoGateFlag {
		return nil, newInitializationError(d.Items[NotAGate].Name, "slot 0 must hold the sentinel with NO_GATE_FLAG")
	}

	for k := 1; k < NumGates; k++ {
		if !filled[k] {
			return nil, newInitializationError("", "slot %d holds no gate", k)
		}
		if err := checkDef(&d.Items[k], d.aliases[k]); err != nil {
			return nil, err
		}
		inv := d.Items[k].BestCandidateInverseID
		if int(inv) >= NumGates || inv == NotAGate {
			return nil, newInitializationError(d.Items[k].Name, "inverse id %d does not name a gate", inv)
		}
		if d.Items[k].Has(GateIsUnitary) && !d.Items[inv].Has(GateIsUnitary) {
			return nil, newInitializationError(d.Items[k].Name, "unitary gate names non-unitary inverse %s", d.Items[inv].Name)
		}
	}

	if err := d.placeNames(maxHashSalts); err != nil {
		return nil, err
	}
	return d, nil
}

// checkDef enforces the per-gate rules: nonzero flags, name syntax and
// unitary gates carrying a decomposition and tableau.
func checkDef(g *Gate, aliases []string) error {
	if g.Flags == NoGateFlag {
		return newInitializationError(g.Name, "real gate at slot %d has NO_GATE_FLAG", g.ID)
	}
	if g.ExtraDataFunc == nil {
		return newInitializationError(g.Name, "missing extra data")
	}
	for _, name := range append([]string{g.Name}, aliases...) {
		if err := checkName(name); err != nil {
			return newInitializationError(g.Name, "name %q: %v", name, err)
		}
	}
	if g.Has(GateTargetsPairs) && g.Has(GateIsSingleQubitGate) {
		return newInitializationError(g.Name, "gate cannot both target pairs and be single-qubit")
	}
	if g.Has(GateIsUnitary) {
		extra := g.ExtraDataFunc()
		if extra.HSCXMRDecomposition == "" {
			return newInitializationError(g.Name, "unitary gate has no H/S/CX/M/R decomposition")
		}
		want := 2
		if g.Has(GateTargetsPairs) {
			want = 4
		}
		if len(extra.TableauData) != want {
			return newInitializationError(g.Name, "unitary gate needs %d tableau images, has %d", want, len(extra.TableauData))
		}
	}
	return nil
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 0x80 {
			return fmt.Errorf("non-ASCII byte at %d", i)
		}
		if c <= ' ' || c == 0x7f {
			return fmt.Errorf("whitespace or control byte at %d", i)
		}
	}
	return nil
}

// placeNames finds the first salt below limit under which every canonical
// name and alias lands in its own slot, then fills the hashed-name table.
func (d *Data) placeNames(limit uint32) error {
	type named struct {
		name string
		id   GateType
	}
	var names []named
	seen := map[string]GateType{}
	for k := 1; k < NumGates; k++ {
		for _, name := range append([]string{d.Items[k].Name}, d.aliases[k]...) {
			key := foldKey(name)
			if prev, ok := seen[key]; ok {
				return newInitializationError(d.Items[k].Name, "name %q is already registered by %s", name, d.Items[prev].Name)
			}
			seen[key] = GateType(k)
			names = append(names, named{name: name, id: GateType(k)})
		}
	}

	for salt := uint32(0); salt < limit; salt++ {
		var used [TableSize]bool
		ok := true
		for _, n := range names {
			slot := hashName(n.name, salt)
			if used[slot] {
				ok = false
				break
			}
			used[slot] = true
		}
		if !ok {
			continue
		}
		d.salt = salt
		for _, n := range names {
			d.hashed[hashName(n.name, salt)] = hashEntry{name: n.name, id: n.id}
		}
		return nil
	}
	return newInitializationError("", "no collision-free hash salt among the first %d for %d names", limit, len(names))
}

func foldKey(name string) string {
	b := []byte(name)
	for i := range b {
		b[i] = upperASCII(b[i])
	}
	return string(b)
}

// InverseOf returns the entry of d named by g's BestCandidateInverseID.
func (d *Data) InverseOf(g *Gate) *Gate {
	return &d.Items[g.BestCandidateInverseID]
}

// NameToHash returns the hashed-name table slot for name under this catalog's salt.
func (d *Data) NameToHash(name string) uint16 {
	return hashName(name, d.salt)
}

// Has reports whether name (or an alias) is registered, ignoring ASCII case.
func (d *Data) Has(name string) bool {
	e := &d.hashed[hashName(name, d.salt)]
	return e.id != NotAGate && asciiEqualFold(e.name, name)
}

// At returns the canonical gate for name. Lookup performs one hash, one
// index and one case-insensitive compare; it never allocates on success.
// Unregistered names fail with an UnknownGate *CatalogError.
func (d *Data) At(name string) (*Gate, error) {
	e := &d.hashed[hashName(name, d.salt)]
	if e.id == NotAGate || !asciiEqualFold(e.name, name) {
		return nil, newUnknownGate(name)
	}
	return &d.Items[e.id], nil
}

// MustAt is like At but panics on error.
// Use only in tests or with names known to be registered.
func (d *Data) MustAt(name string) *Gate {
	g, err := d.At(name)
	if err != nil {
		panic(err)
	}
	return g
}

// Slot returns the name and id stored at a hashed-name table slot.
// Empty slots return ("", NotAGate).
func (d *Data) Slot(slot uint16) (string, GateType) {
	e := d.hashed[slot&(TableSize-1)]
	return e.name, e.id
}

// Names yields every occupied hashed-name table entry in slot order.
func (d *Data) Names() iter.Seq2[string, GateType] {
	return func(yield func(string, GateType) bool) {
		for _, e := range d.hashed {
			if e.id == NotAGate {
				continue
			}
			if !yield(e.name, e.id) {
				return
			}
		}
	}
}

// Aliases returns the alternative names of the gate with the given id.
func (d *Data) Aliases(id GateType) []string {
	if int(id) >= NumGates {
		return nil
	}
	return slices.Clone(d.aliases[id])
}

// All yields every real gate in id order, skipping the sentinel.
func (d *Data) All() iter.Seq[*Gate] {
	return func(yield func(*Gate) bool) {
		for k := 1; k < NumGates; k++ {
			if !yield(&d.Items[k]) {
				return
			}
		}
	}
}

// Len returns the number of real gates.
func (d *Data) Len() int {
	return NumGates - 1
}
