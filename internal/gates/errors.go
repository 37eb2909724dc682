package gates

import (
	"errors"
	"fmt"
)

// CatalogErrorCode categorizes catalog errors.
type CatalogErrorCode string

const (
	// ErrCodeUnknownGate indicates a name that is not registered.
	ErrCodeUnknownGate CatalogErrorCode = "UNKNOWN_GATE"

	// ErrCodeInitialization indicates a static description that violates
	// the registry invariants. Fatal: the package refuses to initialize.
	ErrCodeInitialization CatalogErrorCode = "INITIALIZATION_FAILURE"

	// ErrCodeDecompositionNotAvailable indicates a gate without an
	// H/S/CX/M/R decomposition.
	ErrCodeDecompositionNotAvailable CatalogErrorCode = "DECOMPOSITION_NOT_AVAILABLE"

	// ErrCodeNotUnitary indicates a tableau request on a non-unitary gate.
	ErrCodeNotUnitary CatalogErrorCode = "NOT_UNITARY"
)

// Sentinel errors matched by CatalogError.Is.
var (
	ErrUnknownGate               = errors.New("unknown gate")
	ErrInitialization            = errors.New("gate catalog initialization failure")
	ErrDecompositionNotAvailable = errors.New("decomposition not available")
	ErrNotUnitary                = errors.New("gate is not unitary")
)

// CatalogError is returned by catalog lookups and construction.
type CatalogError struct {
	// Code identifies the error category.
	Code CatalogErrorCode

	// Gate names the offending gate (or the name that failed to resolve).
	Gate string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Gate != "" {
		return fmt.Sprintf("%s: %s (gate=%s)", e.Code, e.Message, e.Gate)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches the sentinel error for the code.
func (e *CatalogError) Is(target error) bool {
	switch e.Code {
	case ErrCodeUnknownGate:
		return target == ErrUnknownGate
	case ErrCodeInitialization:
		return target == ErrInitialization
	case ErrCodeDecompositionNotAvailable:
		return target == ErrDecompositionNotAvailable
	case ErrCodeNotUnitary:
		return target == ErrNotUnitary
	}
	return false
}

// IsUnknownGate returns true if the error is an unknown gate lookup failure.
// Uses errors.As to handle wrapped errors.
func IsUnknownGate(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeUnknownGate
	}
	return false
}

func newUnknownGate(name string) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeUnknownGate,
		Gate:    name,
		Message: "gate name is not registered",
	}
}

func newInitializationError(gate, format string, args ...any) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeInitialization,
		Gate:    gate,
		Message: fmt.Sprintf(format, args...),
	}
}

func newDecompositionNotAvailable(gate string) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeDecompositionNotAvailable,
		Gate:    gate,
		Message: "catalog declares no H/S/CX/M/R decomposition",
	}
}

func newNotUnitary(gate string) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeNotUnitary,
		Gate:    gate,
		Message: "only unitary gates have a tableau",
	}
}
