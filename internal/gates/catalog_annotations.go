package gates

func annotationGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "DETECTOR",
			ID:                     GateDetector,
			BestCandidateInverseID: GateDetector,
			ArgCount:               ArgCountVariable,
			Flags:                  GateOnlyTargetsMeasurementRecord | GateIsNotFusable,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Z_Annotations",
					Help:     "Annotates that a set of measurement results has a deterministic parity in the absence of noise. Parens arguments are optional coordinates.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "OBSERVABLE_INCLUDE",
			ID:                     GateObservableInclude,
			BestCandidateInverseID: GateObservableInclude,
			ArgCount:               1,
			Flags:                  GateOnlyTargetsMeasurementRecord | GateIsNotFusable | GateArgsAreUnsignedIntegers,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Z_Annotations",
					Help:     "Adds measurement results to a logical observable. The parens argument is the observable index.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "TICK",
			ID:                     GateTick,
			BestCandidateInverseID: GateTick,
			ArgCount:               0,
			Flags:                  GateIsNotFusable | GateTakesNoTargets,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Z_Annotations",
					Help:     "Marks the end of a layer of parallel operations.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "QUBIT_COORDS",
			ID:                     GateQubitCoords,
			BestCandidateInverseID: GateQubitCoords,
			ArgCount:               ArgCountVariable,
			Flags:                  GateIsNotFusable,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Z_Annotations",
					Help:     "Annotates the location of qubits. The parens arguments are coordinates.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "SHIFT_COORDS",
			ID:                     GateShiftCoords,
			BestCandidateInverseID: GateShiftCoords,
			ArgCount:               ArgCountVariable,
			Flags:                  GateIsNotFusable | GateTakesNoTargets,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Z_Annotations",
					Help:     "Offsets the coordinates of later QUBIT_COORDS and DETECTOR annotations.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "REPEAT",
			ID:                     GateRepeat,
			BestCandidateInverseID: GateRepeat,
			ArgCount:               0,
			Flags:                  GateIsBlock | GateIsNotFusable,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Y_Control Flow",
					Help:     "Repeats the instructions in its block a fixed number of times.",
				}
			},
		}},
		{gate: Gate{
			Name:                   "MPAD",
			ID:                     GateMPad,
			BestCandidateInverseID: GateMPad,
			ArgCount:               ArgCountZeroOrOne,
			Flags:                  GateProducesResults | GateArgsAreDisjointProbabilities,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category: "Z_Annotations",
					Help:     "Pads the measurement record with the listed bits (0 or 1) without touching any qubit. The parens argument is a flip probability.",
				}
			},
		}},
	}
}
