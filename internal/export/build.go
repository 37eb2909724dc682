package export

import (
	"strconv"

	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/ir"
)

// Build translates the catalog into its exported document, gates in id
// order. The sentinel is not exported.
func Build(d *gates.Data) ir.CatalogDoc {
	doc := ir.CatalogDoc{Version: ir.DocVersion, Gates: make([]ir.GateDoc, 0, d.Len())}
	for g := range d.All() {
		doc.Gates = append(doc.Gates, GateDoc(d, g))
	}
	return doc
}

// GateDoc translates a single gate.
func GateDoc(d *gates.Data, g *gates.Gate) ir.GateDoc {
	extra := g.ExtraData()
	aliases := d.Aliases(g.ID)
	if aliases == nil {
		aliases = []string{}
	}
	return ir.GateDoc{
		Name:          g.Name,
		ID:            int(g.ID),
		Aliases:       aliases,
		Flags:         g.Flags.Names(),
		ArgCount:      ArgCountString(g.ArgCount),
		Inverse:       d.Items[g.BestCandidateInverseID].Name,
		Category:      extra.Category,
		Help:          extra.Help,
		Tableau:       extra.TableauData,
		Decomposition: extra.HSCXMRDecomposition,
		Flows:         extra.Flows,
	}
}

// ArgCountString renders an argument count the way exported documents spell it.
func ArgCountString(n uint8) string {
	switch n {
	case gates.ArgCountVariable:
		return "variable"
	case gates.ArgCountZeroOrOne:
		return "0|1"
	default:
		return strconv.Itoa(int(n))
	}
}
