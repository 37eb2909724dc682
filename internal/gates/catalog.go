package gates

// Dense gate ids. The order groups gates by family; it carries no meaning
// beyond being stable for the lifetime of the process.
const (
	NotAGate GateType = iota

	GateDetector
	GateObservableInclude
	GateTick
	GateQubitCoords
	GateShiftCoords
	GateRepeat
	GateMPad

	GateMX
	GateMY
	GateM
	GateMRX
	GateMRY
	GateMR
	GateRX
	GateRY
	GateR

	GateXCX
	GateXCY
	GateXCZ
	GateYCX
	GateYCY
	GateYCZ
	GateCX
	GateCY
	GateCZ

	GateH
	GateHXY
	GateHYZ

	GateDepolarize1
	GateDepolarize2
	GateXError
	GateYError
	GateZError
	GatePauliChannel1
	GatePauliChannel2
	GateE
	GateElseCorrelatedError

	GateI
	GateX
	GateY
	GateZ
	GateCXYZ
	GateCZYX

	GateSqrtX
	GateSqrtXDag
	GateSqrtY
	GateSqrtYDag
	GateS
	GateSDag

	GateSqrtXX
	GateSqrtXXDag
	GateSqrtYY
	GateSqrtYYDag
	GateSqrtZZ
	GateSqrtZZDag

	GateMPP
	GateSwap
	GateISwap
	GateCXSwap
	GateSwapCX
	GateISwapDag

	numGateTypes
)

// NumGates is the number of slots in Data.Items, sentinel included.
const NumGates = int(numGateTypes)

// Flag sets shared by whole families.
const (
	unitary1 = GateIsUnitary | GateIsSingleQubitGate
	unitary2 = GateIsUnitary | GateTargetsPairs
)

// catalogDefs returns the static description of every gate, sentinel first.
func catalogDefs() []gateDef {
	defs := []gateDef{{gate: Gate{Name: "NOT_A_GATE", ID: NotAGate, BestCandidateInverseID: NotAGate}}}
	defs = append(defs, annotationGates()...)
	defs = append(defs, collapsingGates()...)
	defs = append(defs, controlledGates()...)
	defs = append(defs, hadamardGates()...)
	defs = append(defs, noiseGates()...)
	defs = append(defs, pauliGates()...)
	defs = append(defs, period3Gates()...)
	defs = append(defs, period4Gates()...)
	defs = append(defs, pauliProductGates()...)
	defs = append(defs, mppGates()...)
	defs = append(defs, swapGates()...)
	return defs
}
