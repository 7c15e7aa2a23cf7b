package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dutykh/semlist/internal/config"
)

// NewDBActivateCmd creates the "activate" command which selects which
// database subsequent commands operate on.
func NewDBActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <name>",
		Short: "Select the active mailing-list database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBActivate(cmd, args[0])
		},
	}
}

func runDBActivate(cmd *cobra.Command, name string) error {
	store, err := resolveStore(cmd)
	if err != nil {
		return err
	}

	if err := store.Activate(name); err != nil {
		if errors.Is(err, config.ErrNoSuchDatabase) {
			cmd.Printf("Database %q not found in %s.\n", config.DatabaseFileName(name), store.Dir())
			listAvailable(cmd, store)
		}
		return err
	}

	logger.Info().Str("database", config.DatabaseFileName(name)).Msg("database activated")
	cmd.Printf("Database %s is now active.\n", config.DatabaseFileName(name))
	return nil
}

// listAvailable prints the databases present in the directory, if any.
func listAvailable(cmd *cobra.Command, store *config.ActiveStore) {
	names, err := store.List()
	if err != nil || len(names) == 0 {
		return
	}
	cmd.Println("Available databases:")
	for _, n := range names {
		cmd.Printf("  %s\n", n)
	}
}
