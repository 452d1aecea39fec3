package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cutsheet/internal/profile"
	"github.com/roach88/cutsheet/internal/report"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Profile string // optional CUE profile path
}

// NewRootCommand creates the root command for the cutsheet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cutsheet",
		Short: "cutsheet - motivational standards table auditor",
		Long: "Reconstructs motivational standards tables from extracted PDF text\n" +
			"and validates every row against the cut-order invariants.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, report.ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "", "CUE document profile (default: embedded USA Swimming profile)")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range report.ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadProfile resolves the profile flag to a compiled profile.
func loadProfile(opts *RootOptions) (*profile.Profile, error) {
	if opts.Profile == "" {
		return profile.Default(), nil
	}
	return profile.Load(opts.Profile)
}
