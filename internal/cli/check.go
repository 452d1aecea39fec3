package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command: an audit gate that fails
// when any row is flagged or any line is unparseable.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <lines-file>",
		Short:         "Exit non-zero if the document has any validation findings",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseInput(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if doc.Clean() {
				fmt.Fprintf(out, "ok: %d row(s) in %d subtable(s), no findings\n",
					doc.RowCount(), len(doc.Subtables))
				return nil
			}

			for _, st := range doc.Subtables {
				for _, row := range st.Rows {
					for _, f := range row.Flags {
						fmt.Fprintf(out, "%s\n", f)
					}
				}
			}
			for _, d := range doc.Diagnostics {
				fmt.Fprintf(out, "UNPARSEABLE: %s\n", d.Text)
			}
			return NewExitError(ExitAuditFailure,
				fmt.Sprintf("%d flag(s), %d unparseable line(s)", doc.FlagCount(), len(doc.Diagnostics)))
		},
	}
	return cmd
}
