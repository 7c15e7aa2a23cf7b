package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewCheckCmd creates the "check" command: a case-insensitive regular
// expression search over the active database's addresses and names.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <pattern>",
		Short: "List entries matching a regular expression",
		Example: `  # All addresses in one domain
  semlist check 'ac\.ae$'

  # Everyone named Lee
  semlist check lee`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Patterns may contain spaces; join like the shell split them.
			return runCheck(cmd, strings.Join(args, " "))
		},
	}
}

func runCheck(cmd *cobra.Command, pattern string) error {
	db, _, err := loadActive(cmd)
	if err != nil {
		return err
	}

	matches, err := db.Search(pattern)
	if err != nil {
		return err
	}

	cmd.Printf("Checking for pattern %q in database %q:\n", pattern, db.Name)
	var found int
	for e := range matches {
		cmd.Printf("  %s\n", e.FullEntry)
		found++
	}
	if found == 0 {
		cmd.Println("  No matches found.")
		return nil
	}
	cmd.Printf("%d match(es).\n", found)
	return nil
}
