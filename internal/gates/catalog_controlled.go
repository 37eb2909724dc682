package gates

func controlledGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "XCX",
			ID:                     GateXCX,
			BestCandidateInverseID: GateXCX,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "The X-controlled X gate. Applies X to the second qubit when the first is in the |-> state.",
					TableauData:         []string{"+XI", "+IX", "+ZX", "+XZ"},
					HSCXMRDecomposition: "H 0\nCX 0 1\nH 0",
					Flows:               []string{"X_ -> X_", "_X -> _X", "Z_ -> ZX", "_Z -> XZ"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "XCY",
			ID:                     GateXCY,
			BestCandidateInverseID: GateXCY,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "The X-controlled Y gate. Applies Y to the second qubit when the first is in the |-> state.",
					TableauData:         []string{"+XI", "+XX", "+ZY", "+XZ"},
					HSCXMRDecomposition: "H 0\nS 1\nS 1\nS 1\nCX 0 1\nS 1\nH 0",
					Flows:               []string{"X_ -> X_", "_X -> XX", "Z_ -> ZY", "_Z -> XZ"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "XCZ",
			ID:                     GateXCZ,
			BestCandidateInverseID: GateXCZ,
			Flags:                  unitary2 | GateCanTargetBits,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "The X-controlled Z gate. Equivalent to a CX with the roles of the qubits swapped.",
					TableauData:         []string{"+XI", "+XX", "+ZZ", "+IZ"},
					HSCXMRDecomposition: "CX 1 0",
					Flows:               []string{"X_ -> X_", "_X -> XX", "Z_ -> ZZ", "_Z -> _Z"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "YCX",
			ID:                     GateYCX,
			BestCandidateInverseID: GateYCX,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "The Y-controlled X gate. Applies X to the second qubit when the first is in the |-i> state.",
					TableauData:         []string{"+XX", "+IX", "+ZX", "+YZ"},
					HSCXMRDecomposition: "H 0\nS 0\nH 0\nCX 0 1\nH 0\nS 0\nS 0\nS 0\nH 0",
					Flows:               []string{"X_ -> XX", "_X -> _X", "Z_ -> ZX", "_Z -> YZ"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "YCY",
			ID:                     GateYCY,
			BestCandidateInverseID: GateYCY,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "The Y-controlled Y gate. Applies Y to the second qubit when the first is in the |-i> state.",
					TableauData:         []string{"+XY", "+YX", "+ZY", "+YZ"},
					HSCXMRDecomposition: "H 0\nS 0\nH 0\nS 1\nS 1\nS 1\nCX 0 1\nS 1\nH 0\nS 0\nS 0\nS 0\nH 0",
					Flows:               []string{"X_ -> XY", "_X -> YX", "Z_ -> ZY", "_Z -> YZ"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "YCZ",
			ID:                     GateYCZ,
			BestCandidateInverseID: GateYCZ,
			Flags:                  unitary2 | GateCanTargetBits,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "The Y-controlled Z gate. Equivalent to a CY with the roles of the qubits swapped.",
					TableauData:         []string{"+XZ", "+YX", "+ZZ", "+IZ"},
					HSCXMRDecomposition: "S 0\nS 0\nS 0\nCX 1 0\nS 0",
					Flows:               []string{"X_ -> XZ", "_X -> YX", "Z_ -> ZZ", "_Z -> _Z"},
				}
			},
		}},
		{
			gate: Gate{
				Name:                   "CX",
				ID:                     GateCX,
				BestCandidateInverseID: GateCX,
				Flags:                  unitary2 | GateCanTargetBits,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "C_Two Qubit Clifford Gates",
						Help:                "The Z-controlled X gate. Applies X to the second qubit when the first is in the |1> state. The control may be a measurement record or sweep bit.",
						TableauData:         []string{"+XX", "+IX", "+ZI", "+ZZ"},
						HSCXMRDecomposition: "CX 0 1",
						Flows:               []string{"X_ -> XX", "_X -> _X", "Z_ -> Z_", "_Z -> ZZ"},
					}
				},
			},
			aliases: []string{"CNOT", "ZCX"},
		},
		{
			gate: Gate{
				Name:                   "CY",
				ID:                     GateCY,
				BestCandidateInverseID: GateCY,
				Flags:                  unitary2 | GateCanTargetBits,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "C_Two Qubit Clifford Gates",
						Help:                "The Z-controlled Y gate. Applies Y to the second qubit when the first is in the |1> state.",
						TableauData:         []string{"+XY", "+ZX", "+ZI", "+ZZ"},
						HSCXMRDecomposition: "S 1\nS 1\nS 1\nCX 0 1\nS 1",
						Flows:               []string{"X_ -> XY", "_X -> ZX", "Z_ -> Z_", "_Z -> ZZ"},
					}
				},
			},
			aliases: []string{"ZCY"},
		},
		{
			gate: Gate{
				Name:                   "CZ",
				ID:                     GateCZ,
				BestCandidateInverseID: GateCZ,
				Flags:                  unitary2 | GateCanTargetBits,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "C_Two Qubit Clifford Gates",
						Help:                "The Z-controlled Z gate. Negates the amplitude of the |11> state.",
						TableauData:         []string{"+XZ", "+ZX", "+ZI", "+IZ"},
						HSCXMRDecomposition: "H 1\nCX 0 1\nH 1",
						Flows:               []string{"X_ -> XZ", "_X -> ZX", "Z_ -> Z_", "_Z -> _Z"},
					}
				},
			},
			aliases: []string{"ZCZ"},
		},
	}
}
