// Package pauli provides exact Pauli strings for stabilizer computations.
//
// A PauliString is a tensor product of single-qubit Pauli letters with an
// overall sign of +1 or -1. Products of Pauli strings are tracked exactly:
// the phase of a product is reported as a power of i so that callers can
// detect anticommuting (imaginary) products instead of silently losing them.
//
// Text forms:
//
//	+X_Z     dense, '_' or 'I' for identity, optional leading sign
//	-X0*Z3   sparse, qubit-indexed factors joined by '*'
package pauli

import (
	"fmt"
	"strconv"
	"strings"
)

// PauliString is a signed tensor product of Pauli letters.
// Sign is true when the overall sign is -1.
type PauliString struct {
	Sign bool
	Xs   []bool
	Zs   []bool
}

// New returns the identity Pauli string on n qubits.
func New(n int) PauliString {
	return PauliString{Xs: make([]bool, n), Zs: make([]bool, n)}
}

// Single returns the Pauli string on n qubits with letter c ('X', 'Y' or 'Z') on qubit q.
func Single(n, q int, c byte) PauliString {
	p := New(n)
	p.SetLetter(q, c)
	return p
}

// NumQubits returns the length of the string.
func (p PauliString) NumQubits() int {
	return len(p.Xs)
}

// Letter returns 'I', 'X', 'Y' or 'Z' for qubit q. Qubits past the end are 'I'.
func (p PauliString) Letter(q int) byte {
	if q >= len(p.Xs) {
		return 'I'
	}
	return letterOf(p.Xs[q], p.Zs[q])
}

// SetLetter overwrites the letter on qubit q, growing the string if needed.
// Unknown letters are treated as identity.
func (p *PauliString) SetLetter(q int, c byte) {
	if q >= len(p.Xs) {
		p.grow(q + 1)
	}
	switch c {
	case 'X':
		p.Xs[q], p.Zs[q] = true, false
	case 'Y':
		p.Xs[q], p.Zs[q] = true, true
	case 'Z':
		p.Xs[q], p.Zs[q] = false, true
	default:
		p.Xs[q], p.Zs[q] = false, false
	}
}

// Clone returns a deep copy.
func (p PauliString) Clone() PauliString {
	c := PauliString{Sign: p.Sign, Xs: make([]bool, len(p.Xs)), Zs: make([]bool, len(p.Zs))}
	copy(c.Xs, p.Xs)
	copy(c.Zs, p.Zs)
	return c
}

// Resized returns a copy padded with identity (or truncated) to n qubits.
func (p PauliString) Resized(n int) PauliString {
	c := New(n)
	c.Sign = p.Sign
	copy(c.Xs, p.Xs)
	copy(c.Zs, p.Zs)
	return c
}

func (p *PauliString) grow(n int) {
	xs := make([]bool, n)
	zs := make([]bool, n)
	copy(xs, p.Xs)
	copy(zs, p.Zs)
	p.Xs, p.Zs = xs, zs
}

// Weight returns the number of non-identity letters.
func (p PauliString) Weight() int {
	w := 0
	for k := range p.Xs {
		if p.Xs[k] || p.Zs[k] {
			w++
		}
	}
	return w
}

// IsIdentity reports whether every letter is the identity (the sign is ignored).
func (p PauliString) IsIdentity() bool {
	return p.Weight() == 0
}

// Equal reports whether p and q have the same sign and letters.
// Missing trailing qubits compare as identity.
func (p PauliString) Equal(q PauliString) bool {
	if p.Sign != q.Sign {
		return false
	}
	n := max(len(p.Xs), len(q.Xs))
	for k := 0; k < n; k++ {
		if p.Letter(k) != q.Letter(k) {
			return false
		}
	}
	return true
}

// Commutes reports whether p and q commute.
func (p PauliString) Commutes(q PauliString) bool {
	n := min(len(p.Xs), len(q.Xs))
	anti := false
	for k := 0; k < n; k++ {
		if (p.Xs[k] && q.Zs[k]) != (p.Zs[k] && q.Xs[k]) {
			anti = !anti
		}
	}
	return !anti
}

// String returns the dense form, e.g. "+X_Z".
func (p PauliString) String() string {
	var b strings.Builder
	b.Grow(len(p.Xs) + 1)
	if p.Sign {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	for k := range p.Xs {
		c := letterOf(p.Xs[k], p.Zs[k])
		if c == 'I' {
			c = '_'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// SparseString returns the sparse form, e.g. "-X0*Z3". The identity renders as "+I".
func (p PauliString) SparseString() string {
	var b strings.Builder
	if p.Sign {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	first := true
	for k := range p.Xs {
		c := letterOf(p.Xs[k], p.Zs[k])
		if c == 'I' {
			continue
		}
		if !first {
			b.WriteByte('*')
		}
		first = false
		b.WriteByte(c)
		b.WriteString(strconv.Itoa(k))
	}
	if first {
		b.WriteByte('I')
	}
	return b.String()
}

// Parse parses a dense ("+X_Z") or sparse ("-X0*Z3") Pauli string.
func Parse(text string) (PauliString, error) {
	s := strings.TrimSpace(text)
	var p PauliString
	if s == "" {
		return p, fmt.Errorf("parse pauli string: empty text")
	}
	switch s[0] {
	case '-':
		p.Sign = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if strings.ContainsAny(s, "0123456789") {
		if err := parseSparse(&p, s); err != nil {
			return PauliString{}, fmt.Errorf("parse pauli string %q: %w", text, err)
		}
		return p, nil
	}
	p.Xs = make([]bool, len(s))
	p.Zs = make([]bool, len(s))
	for k := 0; k < len(s); k++ {
		switch s[k] {
		case 'I', '_', 'X', 'Y', 'Z':
			p.SetLetter(k, s[k])
		default:
			return PauliString{}, fmt.Errorf("parse pauli string %q: unexpected character %q", text, s[k])
		}
	}
	return p, nil
}

func parseSparse(p *PauliString, s string) error {
	for _, term := range strings.Split(s, "*") {
		term = strings.TrimSpace(term)
		if len(term) < 2 {
			return fmt.Errorf("malformed factor %q", term)
		}
		c := term[0]
		if c != 'X' && c != 'Y' && c != 'Z' {
			return fmt.Errorf("factor %q must start with X, Y or Z", term)
		}
		q, err := strconv.Atoi(term[1:])
		if err != nil || q < 0 {
			return fmt.Errorf("factor %q has a bad qubit index", term)
		}
		if p.Letter(q) != 'I' {
			return fmt.Errorf("qubit %d appears twice", q)
		}
		p.SetLetter(q, c)
	}
	return nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or on static data.
func MustParse(text string) PauliString {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func letterOf(x, z bool) byte {
	switch {
	case x && z:
		return 'Y'
	case x:
		return 'X'
	case z:
		return 'Z'
	default:
		return 'I'
	}
}
