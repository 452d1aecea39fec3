package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/cutsheet/internal/report"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <lines-file>",
		Short: "Reconstruct standards tables from extracted text lines",
		Long: `Reconstruct standards tables from extracted text lines.

Reads one text line per visual row (use "-" for stdin), classifies
headers and data rows, validates every row against the cut-order
invariants, and writes the full report. Flagged rows are retained and
marked, never dropped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseInput(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			verboseLog(cmd.ErrOrStderr(), rootOpts.Verbose,
				"parsed %d line(s): %d subtable(s), %d row(s), %d flag(s), %d diagnostic(s)",
				doc.LineCount, len(doc.Subtables), doc.RowCount(), doc.FlagCount(), len(doc.Diagnostics))

			return report.Render(cmd.OutOrStdout(), doc, rootOpts.Format)
		},
	}
	return cmd
}
