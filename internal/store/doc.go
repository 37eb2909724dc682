// Package store provides SQLite-backed durable storage for validation runs.
//
// Each call to WriteRun records one harness.Report:
//   - validation_runs: one row per run with its seed, witness count,
//     catalog fingerprint and the digest of the canonical report
//   - validation_findings: one row per finding, in report order
//
// # Ordering
//
// Runs carry a seq assigned inside the write transaction. All listings
// order by seq, never by wall time, so two stores fed the same runs list
// them identically. Findings keep the index they had in the report.
//
// # Integrity
//
// ReadReport rebuilds the report from its rows and recomputes the digest;
// a mismatch is returned as ErrDigestMismatch.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
