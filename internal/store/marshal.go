package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/ir"
)

// marshalChecks stores the selected checks as a canonical JSON array.
func marshalChecks(checks []harness.Check) (string, error) {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = string(c)
	}
	data, err := ir.MarshalCanonical(names)
	if err != nil {
		return "", fmt.Errorf("marshal checks: %w", err)
	}
	return string(data), nil
}

func unmarshalChecks(data string) ([]harness.Check, error) {
	var names []string
	if err := json.Unmarshal([]byte(data), &names); err != nil {
		return nil, fmt.Errorf("unmarshal checks: %w", err)
	}
	checks := make([]harness.Check, 0, len(names))
	for _, name := range names {
		c, ok := harness.ParseCheck(name)
		if !ok {
			return nil, fmt.Errorf("unmarshal checks: unknown check %q", name)
		}
		checks = append(checks, c)
	}
	return checks, nil
}

// checksOf lists the distinct checks of a report in first-seen order.
func checksOf(report *harness.Report) []harness.Check {
	seen := make(map[harness.Check]bool)
	var checks []harness.Check
	for _, f := range report.Findings {
		if !seen[f.Check] {
			seen[f.Check] = true
			checks = append(checks, f.Check)
		}
	}
	return checks
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
