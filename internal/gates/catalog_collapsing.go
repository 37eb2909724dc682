package gates

const (
	measureFlags = GateProducesResults | GateIsMeasurement | GateIsSingleQubitGate | GateArgsAreDisjointProbabilities
	resetFlags   = GateIsReset | GateIsSingleQubitGate
)

func collapsingGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "MX",
			ID:                     GateMX,
			BestCandidateInverseID: GateMX,
			ArgCount:               ArgCountZeroOrOne,
			Flags:                  measureFlags,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "L_Collapsing Gates",
					Help:                "X-basis measurement. Projects each target into |+> or |-> and records 0 or 1. The parens argument is a result flip probability.",
					HSCXMRDecomposition: "H 0\nM 0\nH 0",
					Flows:               []string{"X -> X", "X -> rec(-1)", "1 -> X xor rec(-1)"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "MY",
			ID:                     GateMY,
			BestCandidateInverseID: GateMY,
			ArgCount:               ArgCountZeroOrOne,
			Flags:                  measureFlags,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "L_Collapsing Gates",
					Help:                "Y-basis measurement. Projects each target into |i> or |-i> and records 0 or 1. The parens argument is a result flip probability.",
					HSCXMRDecomposition: "S 0\nS 0\nS 0\nH 0\nM 0\nH 0\nS 0",
					Flows:               []string{"Y -> Y", "Y -> rec(-1)", "1 -> Y xor rec(-1)"},
				}
			},
		}},
		{
			gate: Gate{
				Name:                   "M",
				ID:                     GateM,
				BestCandidateInverseID: GateM,
				ArgCount:               ArgCountZeroOrOne,
				Flags:                  measureFlags,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "L_Collapsing Gates",
						Help:                "Z-basis measurement. Projects each target into |0> or |1> and records 0 or 1. The parens argument is a result flip probability.",
						HSCXMRDecomposition: "M 0",
						Flows:               []string{"Z -> Z", "Z -> rec(-1)", "1 -> Z xor rec(-1)"},
					}
				},
			},
			aliases: []string{"MZ"},
		},
		{gate: Gate{
			Name:                   "MRX",
			ID:                     GateMRX,
			BestCandidateInverseID: GateMRX,
			ArgCount:               ArgCountZeroOrOne,
			Flags:                  measureFlags | GateIsReset,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "L_Collapsing Gates",
					Help:                "X-basis demolition measurement. Measures each target in the X basis, then resets it to |+>.",
					HSCXMRDecomposition: "H 0\nM 0\nR 0\nH 0",
					Flows:               []string{"X -> rec(-1)", "1 -> X"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "MRY",
			ID:                     GateMRY,
			BestCandidateInverseID: GateMRY,
			ArgCount:               ArgCountZeroOrOne,
			Flags:                  measureFlags | GateIsReset,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "L_Collapsing Gates",
					Help:                "Y-basis demolition measurement. Measures each target in the Y basis, then resets it to |i>.",
					HSCXMRDecomposition: "S 0\nS 0\nS 0\nH 0\nM 0\nR 0\nH 0\nS 0",
					Flows:               []string{"Y -> rec(-1)", "1 -> Y"},
				}
			},
		}},
		{
			gate: Gate{
				Name:                   "MR",
				ID:                     GateMR,
				BestCandidateInverseID: GateMR,
				ArgCount:               ArgCountZeroOrOne,
				Flags:                  measureFlags | GateIsReset,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "L_Collapsing Gates",
						Help:                "Z-basis demolition measurement. Measures each target in the Z basis, then resets it to |0>.",
						HSCXMRDecomposition: "M 0\nR 0",
						Flows:               []string{"Z -> rec(-1)", "1 -> Z"},
					}
				},
			},
			aliases: []string{"MRZ"},
		},
		{gate: Gate{
			Name:                   "RX",
			ID:                     GateRX,
			BestCandidateInverseID: GateMX,
			ArgCount:               0,
			Flags:                  resetFlags,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "L_Collapsing Gates",
					Help:                "X-basis reset. Forces each target into |+>.",
					HSCXMRDecomposition: "H 0\nR 0\nH 0",
					Flows:               []string{"1 -> X"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "RY",
			ID:                     GateRY,
			BestCandidateInverseID: GateMY,
			ArgCount:               0,
			Flags:                  resetFlags,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "L_Collapsing Gates",
					Help:                "Y-basis reset. Forces each target into |i>.",
					HSCXMRDecomposition: "S 0\nS 0\nS 0\nH 0\nR 0\nH 0\nS 0",
					Flows:               []string{"1 -> Y"},
				}
			},
		}},
		{
			gate: Gate{
				Name:                   "R",
				ID:                     GateR,
				BestCandidateInverseID: GateM,
				ArgCount:               0,
				Flags:                  resetFlags,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category:            "L_Collapsing Gates",
						Help:                "Z-basis reset. Forces each target into |0>.",
						HSCXMRDecomposition: "R 0",
						Flows:               []string{"1 -> Z"},
					}
				},
			},
			aliases: []string{"RZ"},
		},
	}
}
