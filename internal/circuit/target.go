package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetKind distinguishes the target forms an instruction can carry.
type TargetKind uint8

const (
	// TargetQubit is a plain qubit index, e.g. "5" or "!5".
	TargetQubit TargetKind = iota
	// TargetPauli is a Pauli-typed qubit, e.g. "X5" or "!Z2".
	TargetPauli
	// TargetRecord is a measurement record lookback, e.g. "rec[-1]".
	TargetRecord
	// TargetSweep is a sweep bit, e.g. "sweep[3]".
	TargetSweep
	// TargetCombiner joins the factors of a Pauli product ("*").
	TargetCombiner
)

// Target is one operand of an instruction.
type Target struct {
	Kind TargetKind

	// Value is the qubit index, the (negative) record offset or the sweep index.
	Value int

	// Pauli is 'X', 'Y' or 'Z' for TargetPauli.
	Pauli byte

	// Inverted flips the reported result of a measurement target.
	Inverted bool
}

// Qubit returns a plain qubit target.
func Qubit(q int) Target {
	return Target{Kind: TargetQubit, Value: q}
}

// InvertedQubit returns a qubit target whose measurement result is flipped.
func InvertedQubit(q int) Target {
	return Target{Kind: TargetQubit, Value: q, Inverted: true}
}

// PauliTarget returns a Pauli-typed target such as X3.
func PauliTarget(p byte, q int, inverted bool) Target {
	return Target{Kind: TargetPauli, Value: q, Pauli: p, Inverted: inverted}
}

// Rec returns a measurement record target. k must be negative.
func Rec(k int) Target {
	return Target{Kind: TargetRecord, Value: k}
}

// Sweep returns a sweep bit target.
func Sweep(k int) Target {
	return Target{Kind: TargetSweep, Value: k}
}

// Combiner returns the '*' target joining Pauli product factors.
func Combiner() Target {
	return Target{Kind: TargetCombiner}
}

// IsQubit reports whether the target addresses a qubit (plain or Pauli-typed).
func (t Target) IsQubit() bool {
	return t.Kind == TargetQubit || t.Kind == TargetPauli
}

// IsClassicalBit reports whether the target is a record or sweep bit.
func (t Target) IsClassicalBit() bool {
	return t.Kind == TargetRecord || t.Kind == TargetSweep
}

func (t Target) String() string {
	switch t.Kind {
	case TargetCombiner:
		return "*"
	case TargetRecord:
		return "rec[" + strconv.Itoa(t.Value) + "]"
	case TargetSweep:
		return "sweep[" + strconv.Itoa(t.Value) + "]"
	}
	var b strings.Builder
	if t.Inverted {
		b.WriteByte('!')
	}
	if t.Kind == TargetPauli {
		b.WriteByte(t.Pauli)
	}
	b.WriteString(strconv.Itoa(t.Value))
	return b.String()
}

// ParseTarget parses a single target token.
func ParseTarget(tok string) (Target, error) {
	if tok == "*" {
		return Combiner(), nil
	}
	if inner, ok := bracketed(tok, "rec["); ok {
		k, err := strconv.Atoi(inner)
		if err != nil || k >= 0 {
			return Target{}, fmt.Errorf("record target %q must have a negative offset", tok)
		}
		return Rec(k), nil
	}
	if inner, ok := bracketed(tok, "sweep["); ok {
		k, err := strconv.Atoi(inner)
		if err != nil || k < 0 {
			return Target{}, fmt.Errorf("sweep target %q must have a non-negative index", tok)
		}
		return Sweep(k), nil
	}

	s := tok
	inverted := false
	if strings.HasPrefix(s, "!") {
		inverted = true
		s = s[1:]
	}
	var p byte
	if s != "" {
		switch c := s[0] &^ 0x20; c {
		case 'X', 'Y', 'Z':
			p = c
			s = s[1:]
		}
	}
	q, err := parseIndex(s)
	if err != nil {
		return Target{}, fmt.Errorf("target %q: %w", tok, err)
	}
	if p != 0 {
		return PauliTarget(p, q, inverted), nil
	}
	return Target{Kind: TargetQubit, Value: q, Inverted: inverted}, nil
}

func bracketed(tok, prefix string) (string, bool) {
	if !strings.HasPrefix(tok, prefix) || !strings.HasSuffix(tok, "]") {
		return "", false
	}
	return tok[len(prefix) : len(tok)-1], true
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing qubit index")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("qubit index %q is not a non-negative integer", s)
		}
	}
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("qubit index %q: %w", s, err)
	}
	return q, nil
}
