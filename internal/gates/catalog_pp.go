package gates

func pauliProductGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "SQRT_XX",
			ID:                     GateSqrtXX,
			BestCandidateInverseID: GateSqrtXXDag,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Phases the -1 eigenspace of the XX observable by i.",
					TableauData:         []string{"+XI", "+IX", "-YX", "-XY"},
					HSCXMRDecomposition: "H 0\nH 1\nCX 0 1\nS 1\nCX 0 1\nH 0\nH 1",
					Flows:               []string{"X_ -> X_", "_X -> _X", "Z_ -> -YX", "_Z -> -XY"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_XX_DAG",
			ID:                     GateSqrtXXDag,
			BestCandidateInverseID: GateSqrtXX,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Phases the -1 eigenspace of the XX observable by -i.",
					TableauData:         []string{"+XI", "+IX", "+YX", "+XY"},
					HSCXMRDecomposition: "H 0\nH 1\nCX 0 1\nS 1\nS 1\nS 1\nCX 0 1\nH 0\nH 1",
					Flows:               []string{"X_ -> X_", "_X -> _X", "Z_ -> YX", "_Z -> XY"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_YY",
			ID:                     GateSqrtYY,
			BestCandidateInverseID: GateSqrtYYDag,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Phases the -1 eigenspace of the YY observable by i.",
					TableauData:         []string{"-ZY", "-YZ", "+XY", "+YX"},
					HSCXMRDecomposition: "H 0\nS 0\nH 0\nH 1\nS 1\nH 1\nCX 0 1\nS 1\nCX 0 1\nH 0\nS 0\nS 0\nS 0\nH 0\nH 1\nS 1\nS 1\nS 1\nH 1",
					Flows:               []string{"X_ -> -ZY", "_X -> -YZ", "Z_ -> XY", "_Z -> YX"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_YY_DAG",
			ID:                     GateSqrtYYDag,
			BestCandidateInverseID: GateSqrtYY,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Phases the -1 eigenspace of the YY observable by -i.",
					TableauData:         []string{"+ZY", "+YZ", "-XY", "-YX"},
					HSCXMRDecomposition: "H 0\nS 0\nH 0\nH 1\nS 1\nH 1\nCX 0 1\nS 1\nS 1\nS 1\nCX 0 1\nH 0\nS 0\nS 0\nS 0\nH 0\nH 1\nS 1\nS 1\nS 1\nH 1",
					Flows:               []string{"X_ -> ZY", "_X -> YZ", "Z_ -> -XY", "_Z -> -YX"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_ZZ",
			ID:                     GateSqrtZZ,
			BestCandidateInverseID: GateSqrtZZDag,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Phases the -1 eigenspace of the ZZ observable by i.",
					TableauData:         []string{"+YZ", "+ZY", "+ZI", "+IZ"},
					HSCXMRDecomposition: "CX 0 1\nS 1\nCX 0 1",
					Flows:               []string{"X_ -> YZ", "_X -> ZY", "Z_ -> Z_", "_Z -> _Z"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SQRT_ZZ_DAG",
			ID:                     GateSqrtZZDag,
			BestCandidateInverseID: GateSqrtZZ,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Phases the -1 eigenspace of the ZZ observable by -i.",
					TableauData:         []string{"-YZ", "-ZY", "+ZI", "+IZ"},
					HSCXMRDecomposition: "CX 0 1\nS 1\nS 1\nS 1\nCX 0 1",
					Flows:               []string{"X_ -> -YZ", "_X -> -ZY", "Z_ -> Z_", "_Z -> _Z"},
				}
			},
		}},
	}
}

// MPPDecompositionTargets is the target pattern the MPP decomposition and
// flows are written for: the product X0*Y1*Z2 followed by X3*X4.
const MPPDecompositionTargets = "X0*Y1*Z2 X3*X4"

func mppGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "MPP",
			ID:                     GateMPP,
			BestCandidateInverseID: GateMPP,
			ArgCount:               ArgCountZeroOrOne,
			Flags:                  GateProducesResults | GateIsMeasurement | GateTargetsPauliString | GateArgsAreDisjointProbabilities,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "P_Generalized Pauli Product Gates",
					Help:     "Measures Pauli products. Factors of one product are joined by '*'; each product records one result.",
					// Written for MPPDecompositionTargets.
					HSCXMRDecomposition: "S 1 1 1\nH 0 1 3 4\nCX 1 0 2 0 4 3\nM 0 3\nCX 2 0 1 0 4 3\nH 0 1 3 4\nS 1",
					Flows: []string{
						"XYZ__ -> XYZ__",
						"___XX -> ___XX",
						"XYZ__ -> rec(-2)",
						"___XX -> rec(-1)",
						"1 -> XYZ__ xor rec(-2)",
						"1 -> ___XX xor rec(-1)",
						"X____ -> X____",
						"_Y___ -> _Y___",
						"__Z__ -> __Z__",
						"ZZ___ -> ZZ___",
						"___X_ -> ___X_",
					},
				}
			},
		}},
	}
}
