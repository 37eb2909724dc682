package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/gatecat/internal/gates"
)

// DefaultWitnesses is the number of random witnesses sampled per flow.
const DefaultWitnesses = 256

// Options configures a validation run. The zero value validates every gate
// with every check.
type Options struct {
	// Data is the catalog to validate. Nil means gates.GateData.
	Data *gates.Data

	// Gates restricts the run to the named gates (aliases allowed).
	// Empty means every gate plus the sentinel slot.
	Gates []string

	// Checks restricts the run to the listed checks. Empty means all.
	Checks []Check

	// Witnesses is the number of samples per flow; 0 means DefaultWitnesses.
	Witnesses int

	// Seed derives the per-gate RNGs. Runs with equal options are reproducible.
	Seed int64

	// Parallelism bounds the number of gates validated at once;
	// 0 means runtime.GOMAXPROCS(0).
	Parallelism int

	// Logger receives progress at debug level and failures at warn level.
	// Nil discards.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Data == nil {
		o.Data = gates.GateData
	}
	if len(o.Checks) == 0 {
		o.Checks = AllChecks
	}
	if o.Witnesses <= 0 {
		o.Witnesses = DefaultWitnesses
	}
	if o.Parallelism <= 0 {
		o.Parallelism = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Run validates the selected gates and returns every finding in gate id order.
//
// Gates are validated concurrently, each task owning its simulators and an
// RNG seeded with Seed ^ id. A failing check is recorded as a finding and
// never stops other checks. Unknown gate names fail before any work starts;
// cancelling ctx abandons the remaining gates and returns ctx's error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	slots, err := selectSlots(opts.Data, opts.Gates)
	if err != nil {
		return nil, err
	}

	report := &Report{Seed: opts.Seed, Witnesses: opts.Witnesses}
	if len(opts.Gates) == 0 && slices.Contains(opts.Checks, CheckStructure) {
		report.Findings = append(report.Findings, checkSentinel(opts.Data))
	}

	start := time.Now()
	results := make([][]Finding, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, slot := range slots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := opts.Data.Items[slot].Name
			rng := rand.New(rand.NewSource(opts.Seed ^ int64(slot)))
			results[i] = validateGate(opts.Data, slot, opts.Checks, opts.Witnesses, rng)
			for _, f := range results[i] {
				if !f.OK {
					log.Warn("check failed", "gate", name, "check", f.Check, "code", f.Code, "message", f.Message)
				}
			}
			log.Debug("gate validated", "gate", name, "checks", len(results[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation abandoned: %w", err)
	}

	for _, r := range results {
		report.Findings = append(report.Findings, r...)
	}
	log.Info("validation finished",
		"gates", len(slots),
		"passed", report.Passed(),
		"failed", report.Failed(),
		"elapsed", time.Since(start))
	return report, nil
}

// selectSlots resolves gate names to slots in id order, dropping duplicates.
func selectSlots(d *gates.Data, names []string) ([]gates.GateType, error) {
	if len(names) == 0 {
		slots := make([]gates.GateType, 0, d.Len())
		for g := range d.All() {
			slots = append(slots, g.ID)
		}
		return slots, nil
	}
	var slots []gates.GateType
	for _, name := range names {
		g, err := d.At(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(slots, g.ID) {
			slots = append(slots, g.ID)
		}
	}
	slices.Sort(slots)
	return slots, nil
}
