package ir

// GateDoc is the exported description of one gate.
type GateDoc struct {
	Name    string   `json:"name" yaml:"name"`
	ID      int      `json:"id" yaml:"id"`
	Aliases []string `json:"aliases" yaml:"aliases"`
	Flags   []string `json:"flags" yaml:"flags"`

	// ArgCount is a decimal count, "variable" or "0|1".
	ArgCount string `json:"arg_count" yaml:"arg_count"`

	// Inverse is the canonical name of the best candidate inverse.
	Inverse string `json:"inverse" yaml:"inverse"`

	Category      string   `json:"category" yaml:"category"`
	Help          string   `json:"help" yaml:"help"`
	Tableau       []string `json:"tableau,omitempty" yaml:"tableau,omitempty"`
	Decomposition string   `json:"decomposition,omitempty" yaml:"decomposition,omitempty"`
	Flows         []string `json:"flows,omitempty" yaml:"flows,omitempty"`
}

// CatalogDoc is the exported description of the whole catalog, gates in id order.
type CatalogDoc struct {
	Version string    `json:"version" yaml:"version"`
	Gates   []GateDoc `json:"gates" yaml:"gates"`
}

// Canonical renders the gate as an IRObject. Optional fields are omitted
// when empty so the canonical form matches the JSON tags.
func (g GateDoc) Canonical() IRObject {
	obj := IRObject{
		"name":      IRString(g.Name),
		"id":        IRInt(g.ID),
		"aliases":   Strings(g.Aliases),
		"flags":     Strings(g.Flags),
		"arg_count": IRString(g.ArgCount),
		"inverse":   IRString(g.Inverse),
		"category":  IRString(g.Category),
		"help":      IRString(g.Help),
	}
	if len(g.Tableau) > 0 {
		obj["tableau"] = Strings(g.Tableau)
	}
	if g.Decomposition != "" {
		obj["decomposition"] = IRString(g.Decomposition)
	}
	if len(g.Flows) > 0 {
		obj["flows"] = Strings(g.Flows)
	}
	return obj
}

// Canonical renders the catalog as an IRObject.
func (c CatalogDoc) Canonical() IRObject {
	gates := make(IRArray, len(c.Gates))
	for i, g := range c.Gates {
		gates[i] = g.Canonical()
	}
	return IRObject{
		"version": IRString(c.Version),
		"gates":   gates,
	}
}

// Gate returns the document of the named gate (canonical name, exact case).
func (c CatalogDoc) Gate(name string) (GateDoc, bool) {
	for _, g := range c.Gates {
		if g.Name == name {
			return g, true
		}
	}
	return GateDoc{}, false
}
