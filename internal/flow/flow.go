// Package flow defines stabilizer flows and their text form.
//
// A flow P -> Q xor rec(-k)... asserts that a circuit maps the input Pauli
// product P to the output Pauli product Q, where the sign of Q is
// additionally flipped by the xor of the listed measurement results.
//
// Text forms:
//
//	X_ -> XX
//	Z -> rec(-1)
//	1 -> Z xor rec(-1)
//	XYZ__ -> -XYZ__ xor rec(-2) xor rec(-1)
//
// "1" stands for the identity on either side. Record targets count back
// from the end of the circuit's measurement record.
package flow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/gatecat/internal/pauli"
)

// Flow is a stabilizer flow.
type Flow struct {
	// Input is the Pauli product before the circuit.
	Input pauli.PauliString

	// Output is the Pauli product after the circuit.
	Output pauli.PauliString

	// Measurements lists record offsets (negative, -1 is the most recent
	// result) whose xor is folded into the output.
	Measurements []int
}

// ParseError reports malformed flow text.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse flow %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errNoArrow = errors.New("expected exactly one '->'")

// Parse parses the text form of a flow.
func Parse(text string) (Flow, error) {
	lhs, rhs, ok := strings.Cut(text, "->")
	if !ok || strings.Contains(rhs, "->") {
		return Flow{}, &ParseError{Text: text, Err: errNoArrow}
	}

	var f Flow
	in, err := parseProduct(strings.TrimSpace(lhs))
	if err != nil {
		return Flow{}, &ParseError{Text: text, Err: fmt.Errorf("input: %w", err)}
	}
	f.Input = in

	sawPauli := false
	for _, term := range strings.Split(rhs, " xor ") {
		term = strings.TrimSpace(term)
		if strings.HasPrefix(term, "rec(") {
			k, err := parseRec(term)
			if err != nil {
				return Flow{}, &ParseError{Text: text, Err: err}
			}
			f.Measurements = append(f.Measurements, k)
			continue
		}
		if sawPauli {
			return Flow{}, &ParseError{Text: text, Err: fmt.Errorf("output has more than one pauli product")}
		}
		sawPauli = true
		out, err := parseProduct(term)
		if err != nil {
			return Flow{}, &ParseError{Text: text, Err: fmt.Errorf("output: %w", err)}
		}
		f.Output = out
	}
	return f, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or on static data.
func MustParse(text string) Flow {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

func parseProduct(s string) (pauli.PauliString, error) {
	switch s {
	case "1", "+1":
		return pauli.PauliString{}, nil
	case "-1":
		return pauli.PauliString{Sign: true}, nil
	case "":
		return pauli.PauliString{}, fmt.Errorf("empty pauli product")
	}
	return pauli.Parse(s)
}

func parseRec(term string) (int, error) {
	if !strings.HasSuffix(term, ")") {
		return 0, fmt.Errorf("malformed record target %q", term)
	}
	k, err := strconv.Atoi(term[len("rec(") : len(term)-1])
	if err != nil || k >= 0 {
		return 0, fmt.Errorf("record target %q must have a negative offset", term)
	}
	return k, nil
}

// NumQubits returns the width needed to hold both sides of the flow.
func (f Flow) NumQubits() int {
	return max(f.Input.NumQubits(), f.Output.NumQubits())
}

// String renders the flow in the form accepted by Parse.
func (f Flow) String() string {
	var b strings.Builder
	b.WriteString(productString(f.Input))
	b.WriteString(" -> ")
	terms := []string{}
	if !f.Output.IsIdentity() || f.Output.Sign || len(f.Measurements) == 0 {
		terms = append(terms, productString(f.Output))
	}
	for _, k := range f.Measurements {
		terms = append(terms, "rec("+strconv.Itoa(k)+")")
	}
	b.WriteString(strings.Join(terms, " xor "))
	return b.String()
}

func productString(p pauli.PauliString) string {
	if p.IsIdentity() {
		if p.Sign {
			return "-1"
		}
		return "1"
	}
	s := p.String()
	if !p.Sign {
		s = s[1:]
	}
	return s
}
