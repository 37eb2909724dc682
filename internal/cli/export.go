package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/gatecat/internal/export"
	"github.com/roach88/gatecat/internal/gates"
	"github.com/roach88/gatecat/internal/ir"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As          string
	Output      string
	Check       bool
	Verify      string
	Fingerprint bool
}

// ExportResult is the JSON payload of export when the document goes to a file.
type ExportResult struct {
	Path        string `json:"path"`
	Format      string `json:"format"`
	Gates       int    `json:"gates"`
	Fingerprint string `json:"fingerprint"`
	Checked     bool   `json:"checked"`
}

// SchemaCheckResult is the payload of a failed or successful schema check.
type SchemaCheckResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON, YAML or CUE",
		Long: `Export the whole catalog in id order.

JSON output is canonical (sorted keys, no insignificant whitespace) and is
the input of the catalog fingerprint. --check validates the document
against the embedded CUE schema before writing it; --verify checks a file
exported earlier instead of exporting.

Example:
  gatecat export --as yaml -o catalog.yaml
  gatecat export --as cue --check
  gatecat export --verify catalog.json
  gatecat export --fingerprint`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", string(export.FormatJSON), "document format (json|yaml|cue)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the document to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "validate against the catalog schema before writing")
	cmd.Flags().StringVar(&opts.Verify, "verify", "", "check a previously exported file and exit")
	cmd.Flags().BoolVar(&opts.Fingerprint, "fingerprint", false, "print the catalog fingerprint and exit")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Verify != "" {
		return runVerify(formatter, opts.Verify)
	}

	format, err := export.ParseFormat(opts.As)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidFlag, err.Error(), nil)
	}

	doc := export.Build(gates.GateData)
	fingerprint, err := ir.CatalogFingerprint(doc)
	if err != nil {
		return formatter.Fail(ErrCodeGeneric, "failed to fingerprint catalog", err)
	}

	if opts.Fingerprint {
		if formatter.JSON() {
			return formatter.Success(map[string]string{"fingerprint": fingerprint})
		}
		fmt.Fprintln(formatter.Writer, fingerprint)
		return nil
	}

	if opts.Check {
		if err := export.Check(doc); err != nil {
			return schemaFailure(formatter, "catalog", err)
		}
		formatter.VerboseLog("catalog matches schema")
	}

	if opts.Output == "" {
		if err := export.Write(formatter.Writer, doc, format); err != nil {
			return formatter.Fail(ErrCodeWriteFailed, "failed to write catalog", err)
		}
		return nil
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return formatter.Fail(ErrCodeWriteFailed, fmt.Sprintf("cannot create %s", opts.Output), err)
	}
	if err := export.Write(f, doc, format); err != nil {
		f.Close()
		return formatter.Fail(ErrCodeWriteFailed, fmt.Sprintf("failed to write %s", opts.Output), err)
	}
	if err := f.Close(); err != nil {
		return formatter.Fail(ErrCodeWriteFailed, fmt.Sprintf("failed to write %s", opts.Output), err)
	}

	result := ExportResult{
		Path:        opts.Output,
		Format:      string(format),
		Gates:       len(doc.Gates),
		Fingerprint: fingerprint,
		Checked:     opts.Check,
	}
	if formatter.JSON() {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ wrote %d gates to %s (%s)\n", result.Gates, result.Path, result.Fingerprint)
	return nil
}

func runVerify(formatter *OutputFormatter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return formatter.Fail(ErrCodeNotFound, fmt.Sprintf("cannot read %s", path), err)
	}
	if err := export.CheckBytes(path, data); err != nil {
		return schemaFailure(formatter, path, err)
	}
	if formatter.JSON() {
		return formatter.Success(SchemaCheckResult{Valid: true})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s matches the catalog schema\n", path)
	return nil
}

// schemaFailure reports schema violations (exit 1). Errors that are not
// schema violations, such as an unsupported file extension, are command
// errors (exit 2).
func schemaFailure(formatter *OutputFormatter, subject string, err error) error {
	var schemaErrs export.SchemaErrors
	if !errors.As(err, &schemaErrs) {
		return formatter.Fail(ErrCodeSchema, fmt.Sprintf("cannot check %s", subject), err)
	}

	result := SchemaCheckResult{}
	for _, se := range schemaErrs {
		result.Errors = append(result.Errors, se.Error())
	}
	message := fmt.Sprintf("%s does not match the catalog schema (%d errors)", subject, len(schemaErrs))
	if formatter.JSON() {
		return formatter.Failure(ErrCodeSchema, message, result)
	}

	fmt.Fprintf(formatter.Writer, "✗ %s\n\n", message)
	for _, e := range result.Errors {
		fmt.Fprintf(formatter.Writer, "  %s\n", e)
	}
	return NewExitError(ExitFailure, message)
}
