package gates

func pauliGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "I",
			ID:                     GateI,
			BestCandidateInverseID: GateI,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "A_Pauli Gates",
					Help:                "The identity gate. Does nothing to the target qubits.",
					TableauData:         []string{"+X", "+Z"},
					HSCXMRDecomposition: "H 0\nH 0",
					Flows:               []string{"X -> X", "Z -> Z"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "X",
			ID:                     GateX,
			BestCandidateInverseID: GateX,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "A_Pauli Gates",
					Help:                "The Pauli X gate. The bit flip gate.",
					TableauData:         []string{"+X", "-Z"},
					HSCXMRDecomposition: "H 0\nS 0\nS 0\nH 0",
					Flows:               []string{"X -> X", "Z -> -Z"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "Y",
			ID:                     GateY,
			BestCandidateInverseID: GateY,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "A_Pauli Gates",
					Help:                "The Pauli Y gate.",
					TableauData:         []string{"-X", "-Z"},
					HSCXMRDecomposition: "S 0\nS 0\nH 0\nS 0\nS 0\nH 0",
					Flows:               []string{"X -> -X", "Z -> -Z"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "Z",
			ID:                     GateZ,
			BestCandidateInverseID: GateZ,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "A_Pauli Gates",
					Help:                "The Pauli Z gate. The phase flip gate.",
					TableauData:         []string{"-X", "+Z"},
					HSCXMRDecomposition: "S 0\nS 0",
					Flows:               []string{"X -> -X", "Z -> Z"},
				}
			},
		}},
	}
}
