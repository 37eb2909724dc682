package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/ir"
)

func catalogWith(names ...string) ir.CatalogDoc {
	doc := ir.CatalogDoc{Version: ir.DocVersion}
	for _, name := range names {
		doc.Gates = append(doc.Gates, GateDoc(gates.GateData, gates.GateData.MustAt(name)))
	}
	return doc
}

func TestBuildCatalog(t *testing.T) {
	doc := Build(gates.GateData)

	assert.Equal(t, ir.DocVersion, doc.Version)
	require.Len(t, doc.Gates, gates.GateData.Len())
	for i, g := range doc.Gates {
		assert.Equal(t, i+1, g.ID, "gate %s", g.Name)
	}

	h, ok := doc.Gate("H")
	require.True(t, ok)
	assert.Equal(t, int(gates.GateH), h.ID)
	assert.Equal(t, []string{"H_XZ"}, h.Aliases)
	assert.Equal(t, []string{"GATE_IS_UNITARY", "GATE_IS_SINGLE_QUBIT_GATE"}, h.Flags)
	assert.Equal(t, "0", h.ArgCount)
	assert.Equal(t, "H", h.Inverse)
	assert.Equal(t, []string{"+Z", "+X"}, h.Tableau)
	assert.Equal(t, "H 0", h.Decomposition)

	cx, ok := doc.Gate("CX")
	require.True(t, ok)
	assert.Equal(t, []string{"CNOT", "ZCX"}, cx.Aliases)

	s, ok := doc.Gate("S")
	require.True(t, ok)
	assert.Equal(t, "S_DAG", s.Inverse)

	m, ok := doc.Gate("M")
	require.True(t, ok)
	assert.Equal(t, "0|1", m.ArgCount)
	assert.Empty(t, m.Tableau)
	assert.Contains(t, m.Flows, "Z -> rec(-1)")

	_, ok = doc.Gate("NOT_A_GATE")
	assert.False(t, ok)
	for _, g := range doc.Gates {
		assert.NotNil(t, g.Aliases, "gate %s", g.Name)
	}
}

func TestArgCountString(t *testing.T) {
	assert.Equal(t, "variable", ArgCountString(gates.ArgCountVariable))
	assert.Equal(t, "0|1", ArgCountString(gates.ArgCountZeroOrOne))
	assert.Equal(t, "0", ArgCountString(0))
	assert.Equal(t, "15", ArgCountString(15))
}

func TestBuildFingerprintStable(t *testing.T) {
	a := ir.MustCatalogFingerprint(Build(gates.GateData))
	b := ir.MustCatalogFingerprint(Build(gates.GateData))
	assert.Equal(t, a, b)
}

func TestWriteJSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, catalogWith("H"), FormatJSON))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export_h_json", buf.Bytes())
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	doc := Build(gates.GateData)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatYAML))
	assert.Contains(t, buf.String(), "version: \"1\"")

	var back ir.CatalogDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, doc, back)
}

func TestWriteCUE(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, catalogWith("H", "M"), FormatCUE))

	out := buf.String()
	assert.Contains(t, out, "package catalog")
	assert.Contains(t, out, "catalog:")
	assert.Contains(t, out, `"H 0"`)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, catalogWith("H"), Format("toml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown export format "xml"`)
}

func TestCheckCatalog(t *testing.T) {
	assert.NoError(t, Check(Build(gates.GateData)))
}

func TestCheckWrittenFiles(t *testing.T) {
	doc := Build(gates.GateData)
	for _, tt := range []struct {
		format   Format
		filename string
	}{
		{FormatJSON, "catalog.json"},
		{FormatYAML, "catalog.yaml"},
		{FormatCUE, "catalog.cue"},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, doc, tt.format))
			assert.NoError(t, CheckBytes(tt.filename, buf.Bytes()))
		})
	}
}

func TestCheckSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *ir.CatalogDoc)
		want   string
	}{
		{"unknown flag", func(doc *ir.CatalogDoc) { doc.Gates[0].Flags = []string{"GATE_IS_FAST"} }, "flags"},
		{"lowercase name", func(doc *ir.CatalogDoc) { doc.Gates[0].Name = "h" }, "name"},
		{"unitary without tableau", func(doc *ir.CatalogDoc) { doc.Gates[0].Tableau = nil }, "tableau"},
		{"bad tableau image", func(doc *ir.CatalogDoc) { doc.Gates[0].Tableau = []string{"Z", "+X"} }, "tableau"},
		{"flow without arrow", func(doc *ir.CatalogDoc) { doc.Gates[0].Flows = []string{"X Z"} }, "flows"},
		{"bad arg count", func(doc *ir.CatalogDoc) { doc.Gates[0].ArgCount = "some" }, "arg_count"},
		{"empty help", func(doc *ir.CatalogDoc) { doc.Gates[0].Help = "" }, "help"},
		{"version", func(doc *ir.CatalogDoc) { doc.Version = "2" }, "version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := catalogWith("H", "M")
			tt.mutate(&doc)

			err := Check(doc)
			require.Error(t, err)
			var errs SchemaErrors
			require.True(t, errors.As(err, &errs))
			assert.NotEmpty(t, errs)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckReferenceViolations(t *testing.T) {
	doc := catalogWith("H", "M")
	doc.Gates[1].Inverse = "NOPE"

	err := Check(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[E104]")
	assert.Contains(t, err.Error(), "gates[1].inverse")
}

func TestCheckBytesPositions(t *testing.T) {
	doc := catalogWith("H")
	doc.Gates[0].Name = "h"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatJSON))

	err := CheckBytes("bad.json", buf.Bytes())
	require.Error(t, err)
	var errs SchemaErrors
	require.True(t, errors.As(err, &errs))
	require.NotEmpty(t, errs)
	assert.True(t, errs[0].Pos.IsValid())
	assert.Contains(t, errs[0].Field, "name")
}

func TestCheckBytesMalformed(t *testing.T) {
	assert.Error(t, CheckBytes("catalog.json", []byte(`{"version":`)))
	assert.ErrorContains(t, CheckBytes("catalog.toml", []byte("x")), "unsupported extension")
}

func TestSchemaErrorFormat(t *testing.T) {
	e := &SchemaError{Field: "gates.0.name", Message: "invalid value"}
	assert.Equal(t, "gates.0.name: invalid value", e.Error())

	errs := SchemaErrors{e, {Field: "version", Message: "conflict"}}
	assert.Equal(t, "catalog does not match schema (2 errors): gates.0.name: invalid value; version: conflict", errs.Error())
}
