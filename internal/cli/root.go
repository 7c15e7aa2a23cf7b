// Package cli wires the semlist commands. Each subcommand lives in its own
// file and resolves the active database through the shared setup helpers,
// so the command functions stay small and testable.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations, configured in
// PersistentPreRunE once flags are parsed.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the semlist CLI and wires
// up logging and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "semlist",
		Short:         "Manage batched Outlook mailing lists",
		Long:          "semlist: maintain mailing-list databases grouped into Outlook-sized batches",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example:       rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().
		String("dir", "", "database directory (overrides config file and SEMLIST_DIR)")

	cmd.AddCommand(
		NewAddCmd(), NewRemoveCmd(), NewCheckCmd(), NewPrintCmd(),
		NewBatchesCmd(), NewStatCmd(), NewOptimizeCmd(),
		NewDBNewCmd(), NewDBDeleteCmd(), NewDBActivateCmd(),
		NewConfigShowCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Add a contact to the active list
  semlist add 'John Doe <john@doe.com>'

  # Add several contacts at once
  semlist add 'Ann Lee <ann@uni.edu>; bob@uni.edu'

  # Remove a contact
  semlist rem john@doe.com

  # Search with a case-insensitive regular expression
  semlist check 'ac\.ae$'

  # Print one batch in Outlook paste format, or everything
  semlist print 2
  semlist print all recipients.txt

  # Batch overview and statistics
  semlist batches
  semlist stat

  # Repack the batches to the minimum count
  semlist optimize

  # Manage database files
  semlist new SeminarList
  semlist activate SeminarList
  semlist del OldList`
