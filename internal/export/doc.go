// Package export turns the gate catalog into documents other tools can read.
//
// Build produces an ir.CatalogDoc; Write encodes it as canonical JSON, YAML
// or CUE. Check verifies a document against the embedded CUE schema
// (schema.cue, definition #Catalog) and the cross-reference rules of
// Validate. CheckBytes does the same for a file written earlier, reporting
// positions inside that file.
package export
