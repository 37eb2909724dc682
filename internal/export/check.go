package export

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/roach88/gatecat/internal/ir"
)

//go:embed schema.cue
var schemaSource string

// SchemaError is one violation of the #Catalog schema, with the source
// position of the offending value when one is known.
type SchemaError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SchemaErrors collects every violation found in one document.
type SchemaErrors []*SchemaError

func (e SchemaErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("catalog does not match schema (%d errors): %s", len(e), strings.Join(msgs, "; "))
}

// Check unifies doc with the embedded #Catalog schema and then applies the
// cross-reference rules of Validate. It returns nil or SchemaErrors.
func Check(doc ir.CatalogDoc) error {
	ctx := cuecontext.New()
	if err := checkValue(ctx, ctx.Encode(doc)); err != nil {
		return err
	}
	if errs := Validate(doc); len(errs) > 0 {
		out := make(SchemaErrors, len(errs))
		for i, ve := range errs {
			out[i] = &SchemaError{Field: ve.Field, Message: fmt.Sprintf("[%s] %s", ve.Code, ve.Message)}
		}
		return out
	}
	return nil
}

// CheckBytes checks a previously exported document. The format is taken
// from the file extension (.json, .yaml, .yml or .cue); reported positions
// refer to filename.
func CheckBytes(filename string, data []byte) error {
	ctx := cuecontext.New()

	var v cue.Value
	switch ext := filepath.Ext(filename); ext {
	case ".json":
		expr, err := cuejson.Extract(filename, data)
		if err != nil {
			return formatCUEError(err)
		}
		v = ctx.BuildExpr(expr)
	case ".yaml", ".yml":
		f, err := cueyaml.Extract(filename, data)
		if err != nil {
			return formatCUEError(err)
		}
		v = ctx.BuildFile(f)
	case ".cue":
		v = ctx.CompileBytes(data, cue.Filename(filename)).LookupPath(cue.ParsePath("catalog"))
	default:
		return fmt.Errorf("cannot check %s: unsupported extension %q", filename, ext)
	}
	if err := v.Err(); err != nil {
		return formatCUEError(err)
	}
	return checkValue(ctx, v)
}

func checkValue(ctx *cue.Context, v cue.Value) error {
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid catalog schema: %w", err)
	}
	unified := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError converts CUE errors into SchemaErrors, keeping the first
// position of each.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	out := make(SchemaErrors, 0, len(errs))
	for _, e := range errs {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "catalog"
		}
		format, args := e.Msg()
		se := &SchemaError{Field: field, Message: fmt.Sprintf(format, args...)}
		if positions := errors.Positions(e); len(positions) > 0 {
			se.Pos = positions[0]
		}
		out = append(out, se)
	}
	return out
}
