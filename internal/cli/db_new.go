package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dutykh/semlist/internal/maillist"
)

// NewDBNewCmd creates the "new" command which initializes an empty
// database file. Existing files are never overwritten.
func NewDBNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new, empty mailing-list database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBNew(cmd, args[0])
		},
	}
}

func runDBNew(cmd *cobra.Command, name string) error {
	store, err := resolveStore(cmd)
	if err != nil {
		return err
	}
	if err := store.EnsureExists(); err != nil {
		return err
	}

	path := store.DatabasePath(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database %s already exists; pick another name or delete it first", path)
	}

	db := maillist.New(name)
	if err := db.Save(path); err != nil {
		return err
	}
	logger.Info().Str("database", path).Msg("database created")
	cmd.Printf("Database %q created at %s.\n", name, path)
	cmd.Printf("Activate it with 'semlist activate %s'.\n", name)
	return nil
}
