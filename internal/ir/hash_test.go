package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() CatalogDoc {
	return CatalogDoc{
		Version: DocVersion,
		Gates: []GateDoc{
			{
				Name:          "H",
				ID:            1,
				Aliases:       []string{"H_XZ"},
				Flags:         []string{"GATE_IS_UNITARY"},
				ArgCount:      "0",
				Inverse:       "H",
				Category:      "B_Single Qubit Clifford Gates",
				Help:          "The Hadamard gate.",
				Tableau:       []string{"+Z", "+X"},
				Decomposition: "H 0",
				Flows:         []string{"X -> Z", "Z -> X"},
			},
		},
	}
}

func TestCatalogFingerprintDeterministic(t *testing.T) {
	a := MustCatalogFingerprint(sampleCatalog())
	b := MustCatalogFingerprint(sampleCatalog())
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	_, err := hex.DecodeString(a)
	assert.NoError(t, err)
}

func TestCatalogFingerprintChangesWithContent(t *testing.T) {
	base := MustCatalogFingerprint(sampleCatalog())

	doc := sampleCatalog()
	doc.Gates[0].Flows = []string{"X -> Z"}
	assert.NotEqual(t, base, MustCatalogFingerprint(doc))

	doc = sampleCatalog()
	doc.Gates[0].Aliases = nil
	assert.NotEqual(t, base, MustCatalogFingerprint(doc))

	doc = sampleCatalog()
	doc.Version = "2"
	assert.NotEqual(t, base, MustCatalogFingerprint(doc))
}

func TestHashWithDomainSeparator(t *testing.T) {
	data := []byte(`{"a":1}`)

	h := sha256.New()
	h.Write([]byte(DomainCatalog))
	h.Write([]byte{0x00})
	h.Write(data)
	want := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, want, hashWithDomain(DomainCatalog, data))
	assert.NotEqual(t, hashWithDomain(DomainCatalog, data), hashWithDomain(DomainReport, data))
}

func TestReportDigest(t *testing.T) {
	a, err := ReportDigest(IRObject{"passed": IRInt(3)})
	require.NoError(t, err)
	b, err := ReportDigest(IRObject{"passed": IRInt(4)})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = ReportDigest(IRObject{"bad": nil})
	assert.Error(t, err)
}

func TestCatalogDocCanonical(t *testing.T) {
	doc := sampleCatalog()
	doc.Gates = append(doc.Gates, GateDoc{
		Name:     "TICK",
		ID:       2,
		Aliases:  []string{},
		Flags:    []string{"GATE_TAKES_NO_TARGETS"},
		ArgCount: "0",
		Inverse:  "TICK",
		Category: "Z_Annotations",
		Help:     "Marks the end of a layer.",
	})

	data, err := MarshalCanonical(doc.Canonical())
	require.NoError(t, err)

	want := `{"gates":[` +
		`{"aliases":["H_XZ"],"arg_count":"0","category":"B_Single Qubit Clifford Gates","decomposition":"H 0",` +
		`"flags":["GATE_IS_UNITARY"],"flows":["X -> Z","Z -> X"],"help":"The Hadamard gate.","id":1,"inverse":"H",` +
		`"name":"H","tableau":["+Z","+X"]},` +
		`{"aliases":[],"arg_count":"0","category":"Z_Annotations","flags":["GATE_TAKES_NO_TARGETS"],` +
		`"help":"Marks the end of a layer.","id":2,"inverse":"TICK","name":"TICK"}` +
		`],"version":"1"}`
	assert.Equal(t, want, string(data))
}

func TestCatalogDocGate(t *testing.T) {
	doc := sampleCatalog()
	g, ok := doc.Gate("H")
	require.True(t, ok)
	assert.Equal(t, 1, g.ID)

	_, ok = doc.Gate("h")
	assert.False(t, ok)
}
