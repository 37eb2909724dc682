package export

import (
	"fmt"

	"github.com/roach88/gatecat/internal/ir"
)

// Cross-reference error codes (E100-E199). The CUE schema covers the shape
// of each gate; these rules relate gates to each other.
const (
	ErrUnsupportedVersion = "E101" // document version is not ir.DocVersion
	ErrIDOrder            = "E102" // ids must be strictly increasing
	ErrDuplicateName      = "E103" // name or alias used twice (case-insensitive)
	ErrUnknownInverse     = "E104" // inverse names no gate in the document
	ErrInverseNotMutual   = "E105" // unitary inverse pair does not point back
)

// ValidationError is one cross-reference violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks the relations between gates of doc and returns every
// violation found.
func Validate(doc ir.CatalogDoc) []ValidationError {
	var errs []ValidationError

	if doc.Version != ir.DocVersion {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %q, want %q", doc.Version, ir.DocVersion),
			Code:    ErrUnsupportedVersion,
		})
	}

	byName := make(map[string]int, len(doc.Gates))
	owner := make(map[string]string)
	claim := func(field, name, gate string) {
		key := foldName(name)
		if prev, ok := owner[key]; ok {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("name %q already used by %s", name, prev),
				Code:    ErrDuplicateName,
			})
			return
		}
		owner[key] = gate
	}

	prevID := 0
	for i, g := range doc.Gates {
		field := fmt.Sprintf("gates[%d]", i)
		if g.ID <= prevID {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: fmt.Sprintf("id %d does not follow %d", g.ID, prevID),
				Code:    ErrIDOrder,
			})
		}
		prevID = g.ID

		byName[g.Name] = i
		claim(field+".name", g.Name, g.Name)
		for j, a := range g.Aliases {
			claim(fmt.Sprintf("%s.aliases[%d]", field, j), a, g.Name)
		}
	}

	for i, g := range doc.Gates {
		field := fmt.Sprintf("gates[%d].inverse", i)
		j, ok := byName[g.Inverse]
		if !ok {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("inverse %q of %s is not in the catalog", g.Inverse, g.Name),
				Code:    ErrUnknownInverse,
			})
			continue
		}
		if len(g.Tableau) > 0 && doc.Gates[j].Inverse != g.Name {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s names %s as inverse but %s names %s", g.Name, g.Inverse, g.Inverse, doc.Gates[j].Inverse),
				Code:    ErrInverseNotMutual,
			})
		}
	}

	return errs
}

func foldName(name string) string {
	b := []byte(name)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
