package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewConfigShowCmd creates the "config" command which prints the resolved
// configuration: database directory, active database, and whether the
// active file actually exists.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := resolveStore(cmd)
	if err != nil {
		return err
	}

	active, err := store.Active()
	if err != nil {
		return err
	}
	path, err := store.ActivePath()
	if err != nil {
		return err
	}

	cmd.Println("Current configuration:")
	cmd.Printf("  Database directory: %s\n", store.Dir())
	cmd.Printf("  Active database:    %s\n", active)

	if _, err := os.Stat(path); err == nil {
		cmd.Println("  Database exists:    yes")
	} else {
		cmd.Println("  Database exists:    no (file not found)")
		listAvailable(cmd, store)
	}
	return nil
}
