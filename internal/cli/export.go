package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cutsheet/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	DBPath string
}

// NewExportCommand creates the export command, persisting a parse run
// to the SQLite audit store.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "export <lines-file>",
		Short:         "Parse and persist the run to the audit store",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseInput(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, err := store.Open(opts.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "opening audit store", err)
			}
			defer s.Close()

			if err := s.WriteRun(cmd.Context(), doc); err != nil {
				return WrapExitError(ExitCommandError, "writing run", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported run %s: %d row(s), %d flag(s)\n",
				doc.RunID, doc.RowCount(), doc.FlagCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "cutsheet.db", "audit store path")
	return cmd
}
