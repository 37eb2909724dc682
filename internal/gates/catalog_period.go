package gates

func period3Gates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "C_XYZ",
			ID:                     GateCXYZ,
			BestCandidateInverseID: GateCZYX,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "Right handed period 3 axis cycling gate, sending X -> Y -> Z -> X.",
					TableauData:         []string{"+Y", "+X"},
					HSCXMRDecomposition: "S 0\nS 0\nS 0\nH 0",
					Flows:               []string{"X -> Y", "Z -> X"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "C_ZYX",
			ID:                     GateCZYX,
			BestCandidateInverseID: GateCXYZ,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "Left handed period 3 axis cycling gate, sending Z -> Y -> X -> Z.",
					TableauData:         []string{"+Z", "+Y"},
					HSCXMRDecomposition: "H 0\nS 0",
					Flows:               []string{"X -> Z", "Z -> Y"},
				}
			},
		}},
	}
}

func period4Gates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "SQRT_X",
			ID:                     GateSqrtX,
			BestCandidateInverseID: GateSqrtXDag,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "Principal square root of the X gate. Phases the amplitude of |-> by i.",
					TableauData:         []string{"+X", "-Y"},
					HSCXMRDecomposition: "H 0\nS 0\nH 0",
					Flows:               []string{"X -> X", "Z -> -Y"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_X_DAG",
			ID:                     GateSqrtXDag,
			BestCandidateInverseID: GateSqrtX,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "Adjoint of the principal square root of the X gate. Phases the amplitude of |-> by -i.",
					TableauData:         []string{"+X", "+Y"},
					HSCXMRDecomposition: "H 0\nS 0\nS 0\nS 0\nH 0",
					Flows:               []string{"X -> X", "Z -> Y"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_Y",
			ID:                     GateSqrtY,
			BestCandidateInverseID: GateSqrtYDag,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "Principal square root of the Y gate. Phases the amplitude of |-i> by i.",
					TableauData:         []string{"-Z", "+X"},
					HSCXMRDecomposition: "S 0\nS 0\nH 0",
					Flows:               []string{"X -> -Z", "Z -> X"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_Y_DAG",
			ID:                     GateSqrtYDag,
			BestCandidateInverseID: GateSqrtY,
			Flags:                  unitary1,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "B_Single Qubit Clifford Gates",
					Help:                "Adjoint of the principal square root of the Y gate. Phases the amplitude of |-i> by -i.",
					TableauData:         []string{"+Z", "-X"},
					HSCXMRDecomposition: "H 0\nS 0\nS 0",
					Flows:               []string{"X -> Z", "Z -> -X"},
				}
			},
		}},
		{
			gate: Gate{
				Name:                   "S",
				ID:                     GateS,
				BestCandidateInverseID: GateSDag,
				Flags:                  unitary1,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "B_Single Qubit Clifford Gates",
						Help:                "Principal square root of the Z gate. Phases the amplitude of |1> by i.",
						TableauData:         []string{"+Y", "+Z"},
						HSCXMRDecomposition: "S 0",
						Flows:               []string{"X -> Y", "Z -> Z"},
					}
				},
			},
			aliases: []string{"SQRT_Z"},
		},
		{
			gate: Gate{
				Name:                   "S_DAG",
				ID:                     GateSDag,
				BestCandidateInverseID: GateS,
				Flags:                  unitary1,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "B_Single Qubit Clifford Gates",
						Help:                "Adjoint of the principal square root of the Z gate. Phases the amplitude of |1> by -i.",
						TableauData:         []string{"-Y", "+Z"},
						HSCXMRDecomposition: "S 0\nS 0\nS 0",
						Flows:               []string{"X -> -Y", "Z -> Z"},
					}
				},
			},
			aliases: []string{"SQRT_Z_DAG"},
		},
	}
}
