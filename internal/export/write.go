package export

import (
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gatecat/internal/ir"
)

// Format selects the encoding of an exported catalog.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatJSON, FormatYAML, FormatCUE}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want json, yaml or cue)", name)
}

// Write encodes doc to w.
//
// JSON output is the canonical encoding used for fingerprints, followed by a
// newline. CUE output is a `package catalog` file with the document under
// the `catalog` field.
func Write(w io.Writer, doc ir.CatalogDoc, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatCUE:
		return writeCUE(w, doc)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func writeJSON(w io.Writer, doc ir.CatalogDoc) error {
	data, err := ir.MarshalCanonical(doc.Canonical())
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, doc ir.CatalogDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

func writeCUE(w io.Writer, doc ir.CatalogDoc) error {
	ctx := cuecontext.New()
	v := ctx.Encode(doc)
	if err := v.Err(); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", formatCUEError(err))
	}

	var expr ast.Expr
	switch n := v.Syntax(cue.Final(), cue.Concrete(true)).(type) {
	case ast.Expr:
		expr = n
	case *ast.File:
		expr = &ast.StructLit{Elts: n.Decls}
	default:
		return fmt.Errorf("failed to encode catalog: unexpected syntax node %T", n)
	}

	file := &ast.File{Decls: []ast.Decl{
		&ast.Package{Name: ast.NewIdent("catalog")},
		&ast.Field{Label: ast.NewIdent("catalog"), Value: expr},
	}}
	src, err := format.Node(file)
	if err != nil {
		return fmt.Errorf("failed to format catalog: %w", err)
	}
	_, err = w.Write(src)
	return err
}
