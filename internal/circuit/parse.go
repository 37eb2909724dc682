package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/gatecat/internal/gates"
)

// ParseError reports a problem in circuit text with its 1-based line number.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads circuit text. Unknown gate names surface as a *ParseError
// wrapping the catalog's UnknownGate error.
func Parse(text string) (*Circuit, error) {
	root := New()
	type frame struct {
		circuit *Circuit
		reps    uint64
		line    int
	}
	stack := []frame{{circuit: root}}

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := raw
		if k := strings.IndexByte(line, '#'); k >= 0 {
			line = line[:k]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fail := func(err error) (*Circuit, error) {
			return nil, &ParseError{Line: lineNo, Text: strings.TrimSpace(raw), Err: err}
		}

		if line == "}" {
			if len(stack) == 1 {
				return fail(fmt.Errorf("unmatched '}'"))
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := stack[len(stack)-1].circuit.AppendRepeat(top.reps, top.circuit); err != nil {
				return fail(err)
			}
			continue
		}

		name, rest := splitName(line)
		g, err := gates.GateData.At(name)
		if err != nil {
			return fail(err)
		}

		if g.Has(gates.GateIsBlock) {
			fields := strings.Fields(rest)
			if len(fields) != 2 || fields[1] != "{" {
				return fail(fmt.Errorf("expected 'REPEAT <count> {'"))
			}
			reps, err := strconv.ParseUint(fields[0], 10, 64)
			if err != nil || reps == 0 {
				return fail(fmt.Errorf("repeat count %q must be a positive integer", fields[0]))
			}
			stack = append(stack, frame{circuit: New(), reps: reps, line: lineNo})
			continue
		}

		args, rest, err := parseArgs(rest)
		if err != nil {
			return fail(err)
		}
		targets, err := parseTargets(rest)
		if err != nil {
			return fail(err)
		}
		if err := stack[len(stack)-1].circuit.Append(g, targets, args); err != nil {
			return fail(err)
		}
	}

	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, &ParseError{Line: top.line, Text: "REPEAT", Err: fmt.Errorf("unterminated REPEAT block")}
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or on static data.
func MustParse(text string) *Circuit {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

func splitName(line string) (string, string) {
	end := strings.IndexAny(line, " \t(")
	if end < 0 {
		return line, ""
	}
	return line[:end], line[end:]
}

func parseArgs(rest string) ([]float64, string, error) {
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") {
		return nil, rest, nil
	}
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return nil, "", fmt.Errorf("unterminated parens arguments")
	}
	inner := strings.TrimSpace(rest[1:end])
	var args []float64
	if inner != "" {
		for _, field := range strings.Split(inner, ",") {
			a, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, "", fmt.Errorf("argument %q is not a number", strings.TrimSpace(field))
			}
			args = append(args, a)
		}
	}
	return args, rest[end+1:], nil
}

func parseTargets(rest string) ([]Target, error) {
	var targets []Target
	for _, tok := range strings.Fields(strings.ReplaceAll(rest, "*", " * ")) {
		t, err := ParseTarget(tok)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
