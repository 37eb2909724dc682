package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", IRString("hello"), `"hello"`},
		{"empty string", IRString(""), `""`},
		{"int", IRInt(42), "42"},
		{"negative int", IRInt(-100), "-100"},
		{"min int64", IRInt(-9223372036854775808), "-9223372036854775808"},
		{"bool", IRBool(true), "true"},
		{"go bool", false, "false"},
		{"go int", 7, "7"},
		{"go strings", []string{"a", "b"}, `["a","b"]`},
		{"empty array", IRArray{}, "[]"},
		{"empty object", IRObject{}, "{}"},
		{"nested", IRObject{"z": IRObject{"b": IRInt(1), "a": IRInt(2)}, "a": IRArray{IRBool(false)}}, `{"a":[false],"z":{"a":2,"b":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalUTF16Ordering(t *testing.T) {
	// U+1F600 encodes as the surrogate pair D83D DE00, which sorts before
	// U+FFFF in UTF-16 even though its UTF-8 bytes sort after.
	obj := IRObject{"\uffff": IRInt(1), "\U0001F600": IRInt(2)}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":2,\"\uffff\":1}", string(result))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	result, err := MarshalCanonical(IRString("a<b && c>d"))
	require.NoError(t, err)
	assert.Equal(t, `"a<b && c>d"`, string(result))
}

func TestMarshalCanonicalEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "H 0\nS 0", `"H 0\nS 0"`},
		{"line separator", "a\u2028b", "\"a\u2028b\""},
		{"paragraph separator", "a\u2029b", "\"a\u2029b\""},
		{"literal backslash u2028", `a\u2028b`, `"a\\u2028b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(IRString(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalNFC(t *testing.T) {
	decomposed := "e\u0301"
	composed := "\u00e9"

	a, err := MarshalCanonical(IRObject{decomposed: IRString(decomposed)})
	require.NoError(t, err)
	b, err := MarshalCanonical(IRObject{composed: IRString(composed)})
	require.NoError(t, err)

	assert.Equal(t, string(b), string(a))
}

func TestMarshalCanonicalRejects(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"null", nil, "null is forbidden"},
		{"float", 1.5, "floats are forbidden"},
		{"nested null", IRObject{"p": IRArray{IRInt(1), nil}}, `value for key "p": array[1]: null is forbidden`},
		{"struct", struct{}{}, "unsupported type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MarshalCanonical(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMarshalCanonicalIdempotent(t *testing.T) {
	obj := IRObject{"b": Strings([]string{"X -> Z", "Z -> X"}), "a": IRInt(3)}
	first, err := MarshalCanonical(obj)
	require.NoError(t, err)
	for range 5 {
		again, err := MarshalCanonical(obj)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSortedKeys(t *testing.T) {
	obj := IRObject{"zebra": IRInt(1), "alpha": IRInt(2), "Beta": IRInt(3), "": IRInt(4)}
	assert.Equal(t, []string{"", "Beta", "alpha", "zebra"}, obj.SortedKeys())
	assert.Empty(t, IRObject{}.SortedKeys())
}
