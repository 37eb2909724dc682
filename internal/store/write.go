package store

import (
	"context"
	"fmt"

	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/ir"
)

// RunMeta describes the circumstances of a run that the report itself
// does not carry.
type RunMeta struct {
	// CatalogFingerprint identifies the catalog the report was produced against.
	CatalogFingerprint string

	// Profile names the validation profile, empty for flag-driven runs.
	Profile string

	// Checks lists the selected checks. When nil, the checks present in
	// the report are recorded.
	Checks []harness.Check
}

// WriteRun records a report and all of its findings in one transaction and
// returns the stored run, including its id and seq.
func (s *Store) WriteRun(ctx context.Context, report *harness.Report, meta RunMeta) (Run, error) {
	if meta.CatalogFingerprint == "" {
		return Run{}, fmt.Errorf("write run: catalog fingerprint is required")
	}

	digest, err := ir.ReportDigest(report.Canonical())
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	checks := meta.Checks
	if checks == nil {
		checks = checksOf(report)
	}
	checksJSON, err := marshalChecks(checks)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM validation_runs`).Scan(&seq); err != nil {
		return Run{}, fmt.Errorf("write run: next seq: %w", err)
	}

	run := Run{
		ID:                 s.ids.Generate(),
		Seq:                seq,
		CatalogFingerprint: meta.CatalogFingerprint,
		ReportDigest:       digest,
		ToolVersion:        ir.ToolVersion,
		Profile:            meta.Profile,
		Seed:               report.Seed,
		Witnesses:          report.Witnesses,
		Checks:             checks,
		Passed:             report.Passed(),
		Failed:             report.Failed(),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO validation_runs
		(id, seq, catalog_fingerprint, report_digest, tool_version, profile, seed, witnesses, checks, passed, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.CatalogFingerprint,
		run.ReportDigest,
		run.ToolVersion,
		run.Profile,
		run.Seed,
		run.Witnesses,
		checksJSON,
		run.Passed,
		run.Failed,
	)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO validation_findings
		(run_id, idx, gate, check_name, code, ok, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Run{}, fmt.Errorf("write run: prepare findings: %w", err)
	}
	defer stmt.Close()

	for i, f := range report.Findings {
		if _, err := stmt.ExecContext(ctx, run.ID, i, f.Gate, string(f.Check), f.Code, boolToInt(f.OK), f.Message); err != nil {
			return Run{}, fmt.Errorf("write run: finding %d (%s %s): %w", i, f.Gate, f.Check, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("write run: commit: %w", err)
	}
	return run, nil
}

// DeleteRun removes a run and its findings. Deleting an unknown id is not an error.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM validation_runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}
