package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/gatecat/internal/export"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/harness"
	"github.com/roach88/gatecat/internal/ir"
	"github.com/roach88/gatecat/internal/store"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Witnesses   int
	Seed        int64
	Gates       []string
	Checks      []string
	Profile     string
	Database    string
	Parallelism int

	// IDs overrides the run id generator of the store (for testing).
	// If nil, the store uses UUIDv7 ids.
	IDs store.IDGenerator
}

// ValidationResult is the JSON payload of the validate command.
type ValidationResult struct {
	OK                 bool              `json:"ok"`
	Seed               int64             `json:"seed"`
	Witnesses          int               `json:"witnesses"`
	Passed             int               `json:"passed"`
	Failed             int               `json:"failed"`
	CatalogFingerprint string            `json:"catalog_fingerprint"`
	Profile            string            `json:"profile,omitempty"`
	RunID              string            `json:"run_id,omitempty"`
	Findings           []harness.Finding `json:"findings"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-validate catalog gates",
		Long: `Cross-validate every gate (or the selected gates) of the catalog.

Each gate is checked for registry bookkeeping, agreement with its H/S/CX/M/R
decomposition on an entangled witness, a correct inverse, and stabilizer
flows that hold on the gate and on its decomposition. Failing checks are
reported as findings; the command exits 1 when any finding fails.

Flags override the values of --profile.

Example:
  gatecat validate
  gatecat validate --gate CX --gate MPP --witnesses 1024 --seed 7
  gatecat validate --profile nightly.yaml --db runs.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Witnesses, "witnesses", harness.DefaultWitnesses, "random witnesses sampled per flow")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed of the per-gate random number generators")
	cmd.Flags().StringSliceVar(&opts.Gates, "gate", nil, "validate only these gates (repeatable, aliases allowed)")
	cmd.Flags().StringSliceVar(&opts.Checks, "check", nil, "run only these checks (repeatable)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "path to a YAML validation profile")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite database")
	cmd.Flags().IntVar(&opts.Parallelism, "parallelism", 0, "gates validated at once (0 = GOMAXPROCS)")

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	hopts, profile, err := validateOptions(opts, cmd)
	if err != nil {
		return formatter.Fail(ErrCodeProfile, "failed to load profile", err)
	}
	if hopts.Witnesses < 0 {
		return formatter.Fail(ErrCodeInvalidFlag, fmt.Sprintf("witnesses must be non-negative, got %d", hopts.Witnesses), nil)
	}
	for _, name := range opts.Checks {
		c, ok := harness.ParseCheck(name)
		if !ok {
			return formatter.Fail(ErrCodeInvalidFlag, fmt.Sprintf("unknown check %q", name), nil)
		}
		hopts.Checks = append(hopts.Checks, c)
	}
	hopts.Logger = logger

	fingerprint, err := ir.CatalogFingerprint(export.Build(gates.GateData))
	if err != nil {
		return formatter.Fail(ErrCodeGeneric, "failed to fingerprint catalog", err)
	}
	logger.Debug("catalog fingerprinted", "fingerprint", fingerprint)

	report, err := harness.Run(cmd.Context(), hopts)
	if err != nil {
		if gates.IsUnknownGate(err) {
			return formatter.Fail(ErrCodeUnknownGate, err.Error(), err)
		}
		return formatter.Fail(ErrCodeGeneric, "validation failed to run", err)
	}

	result := ValidationResult{
		OK:                 report.OK(),
		Seed:               report.Seed,
		Witnesses:          report.Witnesses,
		Passed:             report.Passed(),
		Failed:             report.Failed(),
		CatalogFingerprint: fingerprint,
		Profile:            profile,
		Findings:           report.Findings,
	}

	if opts.Database != "" {
		runID, err := recordRun(opts, cmd, report, store.RunMeta{
			CatalogFingerprint: fingerprint,
			Profile:            profile,
			Checks:             hopts.Checks,
		})
		if err != nil {
			return formatter.Fail(ErrCodeStore, "failed to record run", err)
		}
		logger.Info("run recorded", "id", runID, "db", opts.Database)
		result.RunID = runID
	}

	if formatter.JSON() {
		if !result.OK {
			return formatter.Failure(ErrCodeChecksFailed, failureSummary(result), result)
		}
		return formatter.Success(result)
	}

	writeValidationText(formatter.Writer, result, opts.Verbose)
	if !result.OK {
		return NewExitError(ExitFailure, failureSummary(result))
	}
	return nil
}

// validateOptions merges the profile (if any) with the flags the user set.
func validateOptions(opts *ValidateOptions, cmd *cobra.Command) (harness.Options, string, error) {
	var hopts harness.Options
	var profile string
	if opts.Profile != "" {
		p, err := harness.LoadProfile(opts.Profile)
		if err != nil {
			return harness.Options{}, "", err
		}
		hopts = p.Options()
		profile = p.Name
	}

	flags := cmd.Flags()
	override := func(name string) bool {
		return opts.Profile == "" || flags.Changed(name)
	}
	if override("witnesses") {
		hopts.Witnesses = opts.Witnesses
	}
	if override("seed") {
		hopts.Seed = opts.Seed
	}
	if override("parallelism") {
		hopts.Parallelism = opts.Parallelism
	}
	if len(opts.Gates) > 0 {
		hopts.Gates = opts.Gates
	}
	if len(opts.Checks) > 0 {
		hopts.Checks = nil
	}
	return hopts, profile, nil
}

func recordRun(opts *ValidateOptions, cmd *cobra.Command, report *harness.Report, meta store.RunMeta) (string, error) {
	var storeOpts []store.Option
	if opts.IDs != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(opts.IDs))
	}
	st, err := store.Open(opts.Database, storeOpts...)
	if err != nil {
		return "", err
	}
	defer st.Close()

	run, err := st.WriteRun(cmd.Context(), report, meta)
	if err != nil {
		return "", err
	}
	return run.ID, nil
}

func failureSummary(r ValidationResult) string {
	return fmt.Sprintf("%d of %d checks failed", r.Failed, r.Passed+r.Failed)
}

func writeValidationText(w io.Writer, r ValidationResult, verbose bool) {
	for _, f := range r.Findings {
		switch {
		case !f.OK:
			fmt.Fprintf(w, "✗ %s %s [%s]: %s\n", f.Gate, f.Check, f.Code, f.Message)
		case verbose:
			fmt.Fprintf(w, "✓ %s %s [%s]\n", f.Gate, f.Check, f.Code)
		}
	}

	runInfo := fmt.Sprintf("seed %d, %d witnesses", r.Seed, r.Witnesses)
	if r.Profile != "" {
		runInfo = fmt.Sprintf("profile %s, %s", r.Profile, runInfo)
	}
	if r.OK {
		fmt.Fprintf(w, "✓ %d checks passed (%s)\n", r.Passed, runInfo)
	} else {
		fmt.Fprintf(w, "✗ %s (%s)\n", failureSummary(r), runInfo)
	}
	if r.RunID != "" {
		fmt.Fprintf(w, "run %s recorded\n", r.RunID)
	}
}
