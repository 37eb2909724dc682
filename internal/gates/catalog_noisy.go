package gates

const noiseFlags = GateIsNoise | GateArgsAreDisjointProbabilities

func noiseGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "DEPOLARIZE1",
			ID:                     GateDepolarize1,
			BestCandidateInverseID: GateDepolarize1,
			ArgCount:               1,
			Flags:                  noiseFlags | GateIsSingleQubitGate,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "Single qubit depolarizing error. With probability p applies X, Y or Z chosen uniformly at random.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "DEPOLARIZE2",
			ID:                     GateDepolarize2,
			BestCandidateInverseID: GateDepolarize2,
			ArgCount:               1,
			Flags:                  noiseFlags | GateTargetsPairs,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "Two qubit depolarizing error. With probability p applies one of the 15 non-identity two-qubit Paulis chosen uniformly at random.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "X_ERROR",
			ID:                     GateXError,
			BestCandidateInverseID: GateXError,
			ArgCount:               1,
			Flags:                  noiseFlags | GateIsSingleQubitGate,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "Applies a Pauli X with probability p.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "Y_ERROR",
			ID:                     GateYError,
			BestCandidateInverseID: GateYError,
			ArgCount:               1,
			Flags:                  noiseFlags | GateIsSingleQubitGate,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "Applies a Pauli Y with probability p.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "Z_ERROR",
			ID:                     GateZError,
			BestCandidateInverseID: GateZError,
			ArgCount:               1,
			Flags:                  noiseFlags | GateIsSingleQubitGate,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "Applies a Pauli Z with probability p.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "PAULI_CHANNEL_1",
			ID:                     GatePauliChannel1,
			BestCandidateInverseID: GatePauliChannel1,
			ArgCount:               3,
			Flags:                  noiseFlags | GateIsSingleQubitGate,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "A single qubit Pauli error channel with explicit probabilities px, py, pz for X, Y and Z.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "PAULI_CHANNEL_2",
			ID:                     GatePauliChannel2,
			BestCandidateInverseID: GatePauliChannel2,
			ArgCount:               15,
			Flags:                  noiseFlags | GateTargetsPairs,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "A two qubit Pauli error channel with explicit probabilities for IX, IY, IZ, XI, XX, ..., ZZ in that order.",
				}
			},
		}},
		{
			gate: Gate{
				Name:                   "E",
				ID:                     GateE,
				BestCandidateInverseID: GateE,
				ArgCount:               1,
				Flags:                  noiseFlags | GateTargetsPauliString | GateIsNotFusable,
				ExtraDataFunc: func() ExtraGateData {
					return ExtraGateData{
						Category: "F_Noise Channels",
						Help:     "Probabilistically applies a Pauli product error and starts a new correlated error chain.",
					}
				},
			},
			aliases: []string{"CORRELATED_ERROR"},
		},
		{gate: Gate{
			Name:                   "ELSE_CORRELATED_ERROR",
			ID:                     GateElseCorrelatedError,
			BestCandidateInverseID: GateElseCorrelatedError,
			ArgCount:               1,
			Flags:                  noiseFlags | GateTargetsPauliString | GateIsNotFusable,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "F_Noise Channels",
					Help:     "Applies a Pauli product error with probability p, but only when no earlier error in the current correlated chain fired.",
				}
			},
		}},
	}
}
