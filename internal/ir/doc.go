// Package ir holds the exported document types of the gate catalog and
// their canonical encoding.
//
// ir imports nothing internal; the gates package is translated into these
// types by the export package.
//
// Key constraints:
//   - NO float types anywhere; catalog data is exact
//   - All JSON tags use snake_case
//   - Fingerprints hash canonical JSON only, never encoding/json output
package ir
