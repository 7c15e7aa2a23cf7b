package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewAddCmd creates the "add" command. It accepts one or more arguments
// which are joined and parsed as semicolon-separated entries; every valid
// new address is appended, duplicates and malformed fragments are reported
// individually without blocking the rest.
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <entries...>",
		Short: "Add one or more email entries to the active database",
		Example: `  # A bare address
  semlist add john@doe.com

  # Name and address
  semlist add 'John Doe <john@doe.com>'

  # Several entries in one call
  semlist add '"Ann B. Lee" <ann@uni.edu>; bob@uni.edu'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, strings.Join(args, " "))
		},
	}
}

func runAdd(cmd *cobra.Command, text string) error {
	db, path, err := loadActive(cmd)
	if err != nil {
		return err
	}

	report, err := db.Add(text)
	if err != nil {
		return err
	}

	for _, e := range report.Added {
		cmd.Printf("Added %s\n", e.FullEntry)
	}
	for _, dup := range report.Duplicates {
		cmd.Printf("Skipping duplicate: %s\n", dup)
	}
	for _, bad := range report.Invalid {
		cmd.Printf("Skipping unparseable entry: %q\n", bad.Fragment)
	}

	if !report.Changed() {
		cmd.Println("No new entries to add.")
		return nil
	}

	if err := db.Save(path); err != nil {
		return err
	}
	logger.Info().
		Int("added", len(report.Added)).
		Int("duplicates", len(report.Duplicates)).
		Int("invalid", len(report.Invalid)).
		Msg("add completed")
	cmd.Printf("Added %d new entry(ies) to %s.\n", len(report.Added), db.Name)
	return nil
}
