package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// NewPrintCmd creates the "print" command which emits the Outlook paste
// block for one batch or for the whole database, to the terminal or to a
// file.
func NewPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <all|batch-number> [file]",
		Short: "Print emails in Outlook format",
		Example: `  # All batches to the terminal
  semlist print all

  # One batch
  semlist print 2

  # Silent mode: write to a file instead
  semlist print all recipients.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outFile string
			if len(args) > 1 {
				outFile = args[1]
			}
			return runPrint(cmd, args[0], outFile)
		},
	}
}

func runPrint(cmd *cobra.Command, target, outFile string) error {
	db, _, err := loadActive(cmd)
	if err != nil {
		return err
	}

	var block string
	if target == "all" {
		block = db.FormatAll()
	} else {
		id, convErr := strconv.Atoi(target)
		if convErr != nil {
			return fmt.Errorf("invalid batch number %q: expected 'all' or an integer", target)
		}
		block, err = db.FormatBatch(id)
		if err != nil {
			return err
		}
	}

	if outFile == "" {
		cmd.Print(block)
		return nil
	}

	if err := os.WriteFile(outFile, []byte(block), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}
	cmd.Printf("Wrote %s.\n", outFile)
	return nil
}
