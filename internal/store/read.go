package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/ir"
)

// ErrDigestMismatch is returned by ReadReport when the stored findings no
// longer hash to the digest recorded with the run.
var ErrDigestMismatch = errors.New("report digest mismatch")

// Run is one stored validation run.
type Run struct {
	ID                 string          `json:"id"`
	Seq                int64           `json:"seq"`
	CatalogFingerprint string          `json:"catalog_fingerprint"`
	ReportDigest       string          `json:"report_digest"`
	ToolVersion        string          `json:"tool_version"`
	Profile            string          `json:"profile,omitempty"`
	Seed               int64           `json:"seed"`
	Witnesses          int             `json:"witnesses"`
	Checks             []harness.Check `json:"checks"`
	Passed             int             `json:"passed"`
	Failed             int             `json:"failed"`
}

// OK reports whether every finding of the run passed.
func (r Run) OK() bool {
	return r.Failed == 0
}

// GateFinding is a finding together with the run it belongs to.
type GateFinding struct {
	RunID   string
	RunSeq  int64
	Finding harness.Finding
}

const runColumns = `id, seq, catalog_fingerprint, report_digest, tool_version, profile, seed, witnesses, checks, passed, failed`

// ReadRun retrieves a single run by id.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM validation_runs WHERE id = ?`, id)
	return scanRun(row)
}

// LatestRun returns the run with the highest seq.
// Returns sql.ErrNoRows on an empty store.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM validation_runs ORDER BY seq DESC LIMIT 1`)
	return scanRun(row)
}

// ListRuns returns every run ordered by seq ascending. When limit is
// positive only the newest limit runs are returned, still in ascending order.
//
// Returns an empty slice (not nil) on an empty store.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM validation_runs ORDER BY seq ASC`
	var args []any
	if limit > 0 {
		query = `SELECT ` + runColumns + ` FROM (
			SELECT ` + runColumns + ` FROM validation_runs ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadFindings returns the findings of a run in report order.
// Returns an empty slice (not nil) for unknown runs.
func (s *Store) ReadFindings(ctx context.Context, runID string) ([]harness.Finding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gate, check_name, code, ok, message
		FROM validation_findings
		WHERE run_id = ?
		ORDER BY idx ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query findings: %w", err)
	}
	defer rows.Close()

	findings := []harness.Finding{}
	for rows.Next() {
		f, err := scanFinding(rows)
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate findings: %w", err)
	}
	return findings, nil
}

// ReadReport rebuilds the report of a run and verifies it against the
// stored digest.
func (s *Store) ReadReport(ctx context.Context, runID string) (*harness.Report, error) {
	run, err := s.ReadRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	findings, err := s.ReadFindings(ctx, runID)
	if err != nil {
		return nil, err
	}

	report := &harness.Report{Seed: run.Seed, Witnesses: run.Witnesses, Findings: findings}
	digest, err := ir.ReportDigest(report.Canonical())
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if digest != run.ReportDigest {
		return nil, fmt.Errorf("read report %s: %w (stored %s, computed %s)", runID, ErrDigestMismatch, run.ReportDigest, digest)
	}
	return report, nil
}

// GateHistory returns every finding recorded for a gate across runs,
// ordered by run seq then report order. When failedOnly is set, passing
// findings are skipped.
func (s *Store) GateHistory(ctx context.Context, gate string, failedOnly bool) ([]GateFinding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.seq, f.gate, f.check_name, f.code, f.ok, f.message
		FROM validation_findings f
		JOIN validation_runs r ON f.run_id = r.id
		WHERE f.gate = ? AND (? = 0 OR f.ok = 0)
		ORDER BY r.seq ASC, f.idx ASC
	`, gate, boolToInt(failedOnly))
	if err != nil {
		return nil, fmt.Errorf("query gate history: %w", err)
	}
	defer rows.Close()

	history := []GateFinding{}
	for rows.Next() {
		var gf GateFinding
		var check string
		var ok int
		if err := rows.Scan(&gf.RunID, &gf.RunSeq, &gf.Finding.Gate, &check, &gf.Finding.Code, &ok, &gf.Finding.Message); err != nil {
			return nil, fmt.Errorf("scan gate history: %w", err)
		}
		gf.Finding.Check = harness.Check(check)
		gf.Finding.OK = ok != 0
		history = append(history, gf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gate history: %w", err)
	}
	return history, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var checks string
	err := sc.Scan(
		&run.ID,
		&run.Seq,
		&run.CatalogFingerprint,
		&run.ReportDigest,
		&run.ToolVersion,
		&run.Profile,
		&run.Seed,
		&run.Witnesses,
		&checks,
		&run.Passed,
		&run.Failed,
	)
	if err == sql.ErrNoRows {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	run.Checks, err = unmarshalChecks(checks)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

func scanFinding(sc scanner) (harness.Finding, error) {
	var f harness.Finding
	var check string
	var ok int
	if err := sc.Scan(&f.Gate, &check, &f.Code, &ok, &f.Message); err != nil {
		return harness.Finding{}, fmt.Errorf("scan finding: %w", err)
	}
	f.Check = harness.Check(check)
	f.OK = ok != 0
	return f, nil
}
