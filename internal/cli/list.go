package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/gatecat/internal/export"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/ir"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Flag     string
	Category string
}

// GateSummary is one row of the list command.
type GateSummary struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Flags    []string `json:"flags"`
	Category string   `json:"category"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every gate in the catalog",
		Long: `List every gate in id order with its aliases and flags.

Example:
  gatecat list
  gatecat list --flag GATE_IS_UNITARY
  gatecat list --category "F_Noise Channels" --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Flag, "flag", "", "only gates carrying this GATE_* flag")
	cmd.Flags().StringVar(&opts.Category, "category", "", "only gates in this category")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Flag != "" {
		if _, ok := gates.ParseFlag(opts.Flag); !ok {
			return formatter.Fail(ErrCodeInvalidFlag, fmt.Sprintf("unknown flag %q", opts.Flag), nil)
		}
	}

	doc := export.Build(gates.GateData)
	summaries := []GateSummary{}
	for _, g := range doc.Gates {
		if opts.Flag != "" && !slices.Contains(g.Flags, opts.Flag) {
			continue
		}
		if opts.Category != "" && g.Category != opts.Category {
			continue
		}
		summaries = append(summaries, summarize(g))
	}
	formatter.VerboseLog("%d of %d gates selected", len(summaries), len(doc.Gates))

	if formatter.JSON() {
		return formatter.Success(summaries)
	}
	if err := writeGateTable(formatter.Writer, summaries); err != nil {
		return formatter.Fail(ErrCodeWriteFailed, "failed to write gate table", err)
	}
	return nil
}

func summarize(g ir.GateDoc) GateSummary {
	return GateSummary{
		ID:       g.ID,
		Name:     g.Name,
		Aliases:  g.Aliases,
		Flags:    g.Flags,
		Category: g.Category,
	}
}

func writeGateTable(w io.Writer, rows []GateSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tALIASES\tFLAGS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Name, joinOrDash(r.Aliases, ","), joinOrDash(r.Flags, "|"))
	}
	return tw.Flush()
}

func joinOrDash(items []string, sep string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, sep)
}
