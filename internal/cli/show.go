package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gatecat/internal/export"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/ir"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <gate>",
		Short: "Show the full record of one gate",
		Long: `Show a gate's record: aliases, flags, argument count, inverse,
tableau, H/S/CX/M/R decomposition and stabilizer flows.

The name is matched case-insensitively and may be an alias.

Example:
  gatecat show cnot
  gatecat show S --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runShow(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	g, err := gates.GateData.At(name)
	if err != nil {
		return formatter.Fail(ErrCodeUnknownGate, fmt.Sprintf("unknown gate %q", name), err)
	}
	if g.Name != name {
		formatter.VerboseLog("%s resolves to %s", name, g.Name)
	}

	doc := export.GateDoc(gates.GateData, g)
	if formatter.JSON() {
		return formatter.Success(doc)
	}
	writeGateText(formatter.Writer, doc)
	return nil
}

func writeGateText(w io.Writer, g ir.GateDoc) {
	fmt.Fprintf(w, "%s (id %d)\n", g.Name, g.ID)
	field := func(label, value string) {
		fmt.Fprintf(w, "  %-14s%s\n", label+":", value)
	}
	field("aliases", joinOrDash(g.Aliases, ", "))
	field("flags", joinOrDash(g.Flags, "|"))
	field("arg count", g.ArgCount)
	field("inverse", g.Inverse)
	field("category", g.Category)
	field("help", g.Help)

	if len(g.Tableau) > 0 {
		fmt.Fprintln(w, "  tableau:")
		n := len(g.Tableau) / 2
		for k, image := range g.Tableau {
			axis, q := "X", k
			if k >= n {
				axis, q = "Z", k-n
			}
			fmt.Fprintf(w, "    %s%d -> %s\n", axis, q, image)
		}
	}
	if g.Decomposition != "" {
		fmt.Fprintln(w, "  decomposition:")
		for _, line := range strings.Split(g.Decomposition, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	if len(g.Flows) > 0 {
		fmt.Fprintln(w, "  flows:")
		for _, f := range g.Flows {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}
}
