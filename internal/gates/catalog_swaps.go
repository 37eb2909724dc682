package gates

func swapGates() []gateDef {
	return []gateDef{
		{gate: Gate{
			Name:                   "SWAP",
			ID:                     GateSwap,
			BestCandidateInverseID: GateSwap,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Swaps two qubits.",
					TableauData:         []string{"+IX", "+XI", "+IZ", "+ZI"},
					HSCXMRDecomposition: "CX 0 1\nCX 1 0\nCX 0 1",
					Flows:               []string{"X_ -> _X", "_X -> X_", "Z_ -> _Z", "_Z -> Z_"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "ISWAP",
			ID:                     GateISwap,
			BestCandidateInverseID: GateISwapDag,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Swaps two qubits and phases the -1 eigenspace of the ZZ observable by i.",
					TableauData:         []string{"+ZY", "+YZ", "+IZ", "+ZI"},
					HSCXMRDecomposition: "S 0\nS 1\nH 1\nCX 0 1\nH 1\nCX 0 1\nCX 1 0\nCX 0 1",
					Flows:               []string{"X_ -> ZY", "_X -> YZ", "Z_ -> _Z", "_Z -> Z_"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "CXSWAP",
			ID:                     GateCXSwap,
			BestCandidateInverseID: GateSwapCX,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "A combination CX-and-SWAP gate. Applies a CX, then swaps the qubits.",
					TableauData:         []string{"+XX", "+XI", "+IZ", "+ZZ"},
					HSCXMRDecomposition: "CX 1 0\nCX 0 1",
					Flows:               []string{"X_ -> XX", "_X -> X_", "Z_ -> _Z", "_Z -> ZZ"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "SWAPCX",
			ID:                     GateSwapCX,
			BestCandidateInverseID: GateCXSwap,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "A combination SWAP-and-CX gate. Swaps the qubits, then applies a CX.",
					TableauData:         []string{"+IX", "+XX", "+ZZ", "+ZI"},
					HSCXMRDecomposition: "CX 0 1\nCX 1 0",
					Flows:               []string{"X_ -> _X", "_X -> XX", "Z_ -> ZZ", "_Z -> Z_"},
				}
			},
		}},
		{gate: Gate{
			Name:                   "ISWAP_DAG",
			ID:                     GateISwapDag,
			BestCandidateInverseID: GateISwap,
			Flags:                  unitary2,
			ExtraDataFunc: func() ExtraGateData {
				return ExtraGateData{
					Category:            "C_Two Qubit Clifford Gates",
					Help:                "Swaps two qubits and phases the -1 eigenspace of the ZZ observable by -i.",
					TableauData:         []string{"-ZY", "-YZ", "+IZ", "+ZI"},
					HSCXMRDecomposition: "CX 0 1\nCX 1 0\nCX 0 1\nH 1\nCX 0 1\nH 1\nS 0\nS 0\nS 0\nS 1\nS 1\nS 1",
					Flows:               []string{"X_ -> -ZY", "_X -> -YZ", "Z_ -> _Z", "_Z -> Z_"},
				}
			},
		}},
	}
}
