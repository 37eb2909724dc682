package harness

// Check names one cross-validation applied to a gate.
type Check string

const (
	// CheckStructure verifies the registry bookkeeping of one gate (V1).
	CheckStructure Check = "structure"
	// CheckDecompositionRequired verifies that a unitary declares a decomposition.
	CheckDecompositionRequired Check = "decomposition_required"
	// CheckDecomposition compares the gate against its decomposition on an EPR witness (V2).
	CheckDecomposition Check = "decomposition"
	// CheckInverse compares the declared inverse's tableau with the algebraic inverse (V3).
	CheckInverse Check = "inverse"
	// CheckFlows samples the declared flows on the gate itself (V4).
	CheckFlows Check = "flows"
	// CheckDecomposedFlows samples the declared flows on the decomposition (V5).
	CheckDecomposedFlows Check = "decomposed_flows"
)

// AllChecks lists every check in report order.
var AllChecks = []Check{
	CheckStructure,
	CheckDecompositionRequired,
	CheckDecomposition,
	CheckInverse,
	CheckFlows,
	CheckDecomposedFlows,
}

// Code returns the stable finding code of the check.
func (c Check) Code() string {
	switch c {
	case CheckStructure:
		return "V101"
	case CheckDecomposition:
		return "V102"
	case CheckInverse:
		return "V103"
	case CheckFlows:
		return "V104"
	case CheckDecomposedFlows:
		return "V105"
	case CheckDecompositionRequired:
		return "V106"
	}
	return "V100"
}

// ParseCheck resolves a check name as written in profiles and flags.
func ParseCheck(name string) (Check, bool) {
	for _, c := range AllChecks {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Finding is the outcome of one check on one gate.
type Finding struct {
	Gate    string `json:"gate"`
	Check   Check  `json:"check"`
	Code    string `json:"code"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func pass(gate string, c Check) Finding {
	return Finding{Gate: gate, Check: c, Code: c.Code(), OK: true}
}

func fail(gate string, c Check, message string) Finding {
	return Finding{Gate: gate, Check: c, Code: c.Code(), Message: message}
}

// Report collects the findings of a validation run in gate id order.
type Report struct {
	Seed      int64     `json:"seed"`
	Witnesses int       `json:"witnesses"`
	Findings  []Finding `json:"findings"`
}

// Passed returns the number of passing findings.
func (r *Report) Passed() int {
	n := 0
	for _, f := range r.Findings {
		if f.OK {
			n++
		}
	}
	return n
}

// Failed returns the number of failing findings.
func (r *Report) Failed() int {
	return len(r.Findings) - r.Passed()
}

// OK reports whether every finding passed.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

// Failures returns the failing findings.
func (r *Report) Failures() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if !f.OK {
			out = append(out, f)
		}
	}
	return out
}
