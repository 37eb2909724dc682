package gates

import (
	"fmt"

	"github.com/roach88/gatecat/internal/flow"
	"github.com/roach88/gatecat/internal/tableau"
)

// GateType is the dense identifier of a gate. It doubles as the index of the
// gate's slot in Data.Items; NotAGate (0) is the reserved sentinel slot.
type GateType uint8

// Special ArgCount values.
const (
	// ArgCountVariable accepts any number of parens arguments.
	ArgCountVariable uint8 = 0xFF
	// ArgCountZeroOrOne accepts either no arguments or exactly one.
	ArgCountZeroOrOne uint8 = 0xFE
)

// ExtraGateData is the heavier per-gate description, produced on demand.
// All fields reference static strings; parsed forms are built by the Gate
// helpers on every call.
type ExtraGateData struct {
	// Category groups gates in listings and exports.
	Category string

	// Help is a short human-readable description.
	Help string

	// TableauData holds the X images followed by the Z images of a unitary
	// gate, e.g. {"+XX", "+IX", "+ZI", "+ZZ"} for CX. Nil for non-unitary gates.
	TableauData []string

	// HSCXMRDecomposition is circuit text realizing the gate with only
	// H, S, CX, M and R, acting on qubit 0 (and 1 for pair gates).
	// Empty when no decomposition is available.
	HSCXMRDecomposition string

	// Flows holds the stabilizer flows of the gate on its canonical targets,
	// in the text form accepted by flow.Parse.
	Flows []string
}

// Gate is the immutable descriptor of one catalog entry.
type Gate struct {
	// Name is the canonical display name.
	Name string

	// ID equals the index of the gate's slot in Data.Items.
	ID GateType

	// BestCandidateInverseID names a gate whose tableau is the inverse of
	// this gate's tableau. For non-unitary gates it is a related gate and
	// carries no algebraic guarantee.
	BestCandidateInverseID GateType

	// ArgCount is the number of parens arguments, or ArgCountVariable /
	// ArgCountZeroOrOne.
	ArgCount uint8

	// Flags is the behavioral bitset. NoGateFlag marks the sentinel.
	Flags GateFlags

	// ExtraDataFunc lazily yields the category, help, tableau, decomposition
	// and flows. Never nil on a registered gate.
	ExtraDataFunc func() ExtraGateData
}

// Has reports whether the gate carries every bit of flag.
func (g *Gate) Has(flag GateFlags) bool {
	return g.Flags.Has(flag)
}

// ExtraData returns the lazily produced extra data. The sentinel returns the zero value.
func (g *Gate) ExtraData() ExtraGateData {
	if g.ExtraDataFunc == nil {
		return ExtraGateData{}
	}
	return g.ExtraDataFunc()
}

// Decomposition returns the H/S/CX/M/R circuit text for the gate.
// Fails with ErrDecompositionNotAvailable when the catalog declares none.
func (g *Gate) Decomposition() (string, error) {
	d := g.ExtraData().HSCXMRDecomposition
	if d == "" {
		return "", newDecompositionNotAvailable(g.Name)
	}
	return d, nil
}

// Tableau returns a freshly built tableau for a unitary gate.
// Fails with ErrNotUnitary for every other gate.
func (g *Gate) Tableau() (*tableau.Tableau, error) {
	if !g.Has(GateIsUnitary) {
		return nil, newNotUnitary(g.Name)
	}
	t, err := tableau.FromGateData(g.ExtraData().TableauData)
	if err != nil {
		return nil, fmt.Errorf("gate %s: %w", g.Name, err)
	}
	return t, nil
}

// MustTableau is like Tableau but panics on error.
// Use only in tests or when the gate is known to be unitary.
func (g *Gate) MustTableau() *tableau.Tableau {
	t, err := g.Tableau()
	if err != nil {
		panic(err)
	}
	return t
}

// Flows parses the declared stabilizer flows. Gates without flows return an empty slice.
func (g *Gate) Flows() ([]flow.Flow, error) {
	texts := g.ExtraData().Flows
	flows := make([]flow.Flow, 0, len(texts))
	for _, text := range texts {
		f, err := flow.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("gate %s: %w", g.Name, err)
		}
		flows = append(flows, f)
	}
	return flows, nil
}

// Inverse returns the GateData entry named by BestCandidateInverseID.
// Gates taken from another Data resolve through Data.InverseOf.
func (g *Gate) Inverse() *Gate {
	return GateData.InverseOf(g)
}

// AcceptsArgCount reports whether n parens arguments are valid for the gate.
func (g *Gate) AcceptsArgCount(n int) bool {
	switch g.ArgCount {
	case ArgCountVariable:
		return true
	case ArgCountZeroOrOne:
		return n == 0 || n == 1
	default:
		return n == int(g.ArgCount)
	}
}

func (g *Gate) String() string {
	return g.Name
}
