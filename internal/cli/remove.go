package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dutykh/semlist/internal/maillist"
)

// NewRemoveCmd creates the "rem" command which deletes an address from the
// active database. A missing address is reported without failing the
// process and leaves the database untouched.
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rem <email>",
		Aliases: []string{"remove"},
		Short:   "Remove an email address from the active database",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0])
		},
	}
}

func runRemove(cmd *cobra.Command, email string) error {
	db, path, err := loadActive(cmd)
	if err != nil {
		return err
	}

	if err := db.Remove(email); err != nil {
		if errors.Is(err, maillist.ErrNotFound) {
			cmd.Printf("Email %q was not found in the database.\n", email)
			return nil
		}
		return err
	}

	if err := db.Save(path); err != nil {
		return err
	}
	logger.Info().Str("email", email).Msg("entry removed")
	cmd.Printf("Removed %s from %s.\n", email, db.Name)
	return nil
}
