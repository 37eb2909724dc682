package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/gatecat/internal/ir"
)

// Canonical renders the report as an ir object for canonical JSON.
// Messages are omitted when empty so passing findings stay compact.
func (r *Report) Canonical() ir.IRObject {
	findings := make(ir.IRArray, len(r.Findings))
	for i, f := range r.Findings {
		obj := ir.IRObject{
			"gate":  ir.IRString(f.Gate),
			"check": ir.IRString(string(f.Check)),
			"code":  ir.IRString(f.Code),
			"ok":    ir.IRBool(f.OK),
		}
		if f.Message != "" {
			obj["message"] = ir.IRString(f.Message)
		}
		findings[i] = obj
	}
	return ir.IRObject{
		"seed":      ir.IRInt(r.Seed),
		"witnesses": ir.IRInt(r.Witnesses),
		"passed":    ir.IRInt(r.Passed()),
		"failed":    ir.IRInt(r.Failed()),
		"findings":  findings,
	}
}

// AssertGolden compares the canonical JSON of report against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	data, err := ir.MarshalCanonical(report.Canonical())
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
