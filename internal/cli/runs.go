package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cutsheet/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	DBPath string
}

// NewRunsCommand creates the runs command, listing audit store runs.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "runs",
		Short:         "List parse runs in the audit store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(opts.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "opening audit store", err)
			}
			defer s.Close()

			runs, err := s.ListRuns(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "listing runs", err)
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %s  rows=%d flags=%d\n", r.ID, r.Source, r.RowCount, r.FlagCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "cutsheet.db", "audit store path")
	return cmd
}
