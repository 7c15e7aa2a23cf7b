package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewBatchesCmd creates the "batches" command: a per-batch count table.
func NewBatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batches",
		Short: "Show the batches and how full each one is",
		Args:  cobra.NoArgs,
		RunE:  runBatches,
	}
}

func runBatches(cmd *cobra.Command, _ []string) error {
	db, _, err := loadActive(cmd)
	if err != nil {
		return err
	}

	stats := db.Stats()
	if stats.BatchCount == 0 {
		cmd.Println("No batches in the database.")
		return nil
	}

	cmd.Printf("Number of batches: %d\n", stats.BatchCount)

	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Batch\tEmails\tFree")
	fmt.Fprintln(w, "-----\t------\t----")
	for _, fill := range stats.PerBatch {
		fmt.Fprintf(w, "%d\t%d\t%d\n", fill.ID, fill.Count, db.Capacity()-fill.Count)
	}
	return w.Flush()
}
