package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dutykh/semlist/internal/config"
)

// NewDBDeleteCmd creates the "del" command which removes a database file
// after explicit confirmation. --yes skips the prompt for scripted use.
func NewDBDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "del <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a mailing-list database (asks for confirmation)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBDelete(cmd, args[0], yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "delete without asking for confirmation")
	return cmd
}

func runDBDelete(cmd *cobra.Command, name string, skipConfirm bool) error {
	store, err := resolveStore(cmd)
	if err != nil {
		return err
	}
	fileName := config.DatabaseFileName(name)

	if !skipConfirm && !confirmDelete(cmd.OutOrStdout(), cmd.InOrStdin(), fileName) {
		cmd.Println("Deletion cancelled.")
		return nil
	}

	if err := store.Delete(name); err != nil {
		return err
	}
	logger.Info().Str("database", fileName).Msg("database deleted")
	cmd.Printf("Database %s deleted.\n", fileName)
	return nil
}

// confirmDelete prompts for the destructive delete. The prompt defaults to
// "No": only an explicit "yes" proceeds, and EOF or a read error declines.
func confirmDelete(writer io.Writer, reader io.Reader, fileName string) bool {
	fmt.Fprintf(writer, "This permanently deletes the database '%s'.\n", fileName)
	fmt.Fprint(writer, "? Type 'yes' to confirm: ")

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "yes")
}
