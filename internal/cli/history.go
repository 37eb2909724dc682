package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Run      string
	Gate     string
	Failed   bool
}

// RunReport is the JSON payload of history --run.
type RunReport struct {
	Run      store.Run         `json:"run"`
	Findings []harness.Finding `json:"findings"`
}

// GateHistoryEntry is one row of history --gate.
type GateHistoryEntry struct {
	RunID   string `json:"run_id"`
	RunSeq  int64  `json:"run_seq"`
	Check   string `json:"check"`
	Code    string `json:"code"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show validation runs recorded with validate --db",
		Long: `Show validation runs recorded in a run database.

Without further flags every run is listed in the order it was recorded.
--run shows the findings of one run after verifying its digest; --gate
lists the findings of one gate across runs.

Example:
  gatecat history --db runs.db --limit 5
  gatecat history --db runs.db --run 0190d2b4-7c1e-7a55-9e1b-3c2f5a6b7c8d
  gatecat history --db runs.db --gate cnot --failed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show only the newest N runs (0 = all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the findings of this run")
	cmd.Flags().StringVar(&opts.Gate, "gate", "", "show the findings of this gate across runs")
	cmd.Flags().BoolVar(&opts.Failed, "failed", false, "with --run or --gate, show only failing findings")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(opts.Database); err != nil {
		return formatter.Fail(ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.Database), err)
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "failed to open database", err)
	}
	defer st.Close()

	switch {
	case opts.Run != "":
		return showRun(opts, cmd, formatter, st)
	case opts.Gate != "":
		return showGateHistory(opts, cmd, formatter, st)
	default:
		return listRuns(opts, cmd, formatter, st)
	}
}

func listRuns(opts *HistoryOptions, cmd *cobra.Command, formatter *OutputFormatter, st *store.Store) error {
	runs, err := st.ListRuns(cmd.Context(), opts.Limit)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "failed to list runs", err)
	}
	if formatter.JSON() {
		return formatter.Success(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no runs recorded")
		return nil
	}
	return writeRunTable(formatter.Writer, runs)
}

func showRun(opts *HistoryOptions, cmd *cobra.Command, formatter *OutputFormatter, st *store.Store) error {
	run, err := st.ReadRun(cmd.Context(), opts.Run)
	if errors.Is(err, sql.ErrNoRows) {
		return formatter.Fail(ErrCodeNotFound, fmt.Sprintf("run not found: %s", opts.Run), nil)
	}
	if err != nil {
		return formatter.Fail(ErrCodeStore, "failed to read run", err)
	}
	report, err := st.ReadReport(cmd.Context(), opts.Run)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "failed to read report", err)
	}

	findings := report.Findings
	if opts.Failed {
		findings = report.Failures()
	}
	if findings == nil {
		findings = []harness.Finding{}
	}

	if formatter.JSON() {
		return formatter.Success(RunReport{Run: run, Findings: findings})
	}

	w := formatter.Writer
	fmt.Fprintf(w, "run %s (seq %d)\n", run.ID, run.Seq)
	fmt.Fprintf(w, "  seed %d, %d witnesses, %d passed, %d failed\n", run.Seed, run.Witnesses, run.Passed, run.Failed)
	fmt.Fprintf(w, "  catalog %s\n", run.CatalogFingerprint)
	if run.Profile != "" {
		fmt.Fprintf(w, "  profile %s\n", run.Profile)
	}
	for _, f := range findings {
		mark := "✓"
		if !f.OK {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s %s [%s]", mark, f.Gate, f.Check, f.Code)
		if f.Message != "" {
			fmt.Fprintf(w, ": %s", f.Message)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func showGateHistory(opts *HistoryOptions, cmd *cobra.Command, formatter *OutputFormatter, st *store.Store) error {
	g, err := gates.GateData.At(opts.Gate)
	if err != nil {
		return formatter.Fail(ErrCodeUnknownGate, fmt.Sprintf("unknown gate %q", opts.Gate), err)
	}

	history, err := st.GateHistory(cmd.Context(), g.Name, opts.Failed)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "failed to read gate history", err)
	}

	entries := make([]GateHistoryEntry, len(history))
	for i, h := range history {
		entries[i] = GateHistoryEntry{
			RunID:   h.RunID,
			RunSeq:  h.RunSeq,
			Check:   string(h.Finding.Check),
			Code:    h.Finding.Code,
			OK:      h.Finding.OK,
			Message: h.Finding.Message,
		}
	}
	if formatter.JSON() {
		return formatter.Success(entries)
	}
	if len(entries) == 0 {
		fmt.Fprintf(formatter.Writer, "no findings recorded for %s\n", g.Name)
		return nil
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tRUN\tCHECK\tCODE\tRESULT")
	for _, e := range entries {
		result := "ok"
		if !e.OK {
			result = e.Message
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.RunSeq, e.RunID, e.Check, e.Code, result)
	}
	return tw.Flush()
}

func writeRunTable(w io.Writer, runs []store.Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tID\tSEED\tWITNESSES\tPASSED\tFAILED\tPROFILE\tCATALOG")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.Seq, r.ID, r.Seed, r.Witnesses, r.Passed, r.Failed, orDash(r.Profile), shortFingerprint(r.CatalogFingerprint))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
