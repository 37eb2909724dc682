package gates

func hadamardGates() []gateDef {
	return []gateDef{
		{
			gate: Gate{
				Name:                   "H",
				ID:                     GateH,
				BestCandidateInverseID: GateH,
				Flags:                  unitary1,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "B_Single Qubit Clifford Gates",
						Help:                "The Hadamard gate. Swaps the X and Z axes.",
						TableauData:         []string{"+Z", "+X"},
						HSCXMRDecomposition: "H 0",
						Flows:               []string{"X -> Z", "Z -> X"},
					}
				},
			},
			aliases: []string{"H_XZ"},
		},
		{gate: Gate{
			Name:                   "H_XY",
			ID:                     GateHXY,
			BestCandidateInverseID: GateHXY,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "A variant of the Hadamard gate that swaps the X and Y axes (instead of X and Z).",
					TableauData:         []string{"+Y", "-Z"},
					HSCXMRDecomposition: "H 0\nS 0\nS 0\nH 0\nS 0",
					Flows:               []string{"X -> Y", "Z -> -Z"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "H_YZ",
			ID:                     GateHYZ,
			BestCandidateInverseID: GateHYZ,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "A variant of the Hadamard gate that swaps the Y and Z axes (instead of X and Z).",
					TableauData:         []string{"-X", "+Y"},
					HSCXMRDecomposition: "H 0\nS 0\nH 0\nS 0\nS 0",
					Flows:               []string{"X -> -X", "Z -> Y"},
				}
			},
		}},
	}
}
