package cli

import (
	"github.com/spf13/cobra"
)

// NewOptimizeCmd creates the "optimize" command which repacks the batches
// to the minimum count without reordering entries. Adding entries one at a
// time can leave partially filled batches behind; this consolidates them.
func NewOptimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Repack batches to the minimum number",
		Args:  cobra.NoArgs,
		RunE:  runOptimize,
	}
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	db, path, err := loadActive(cmd)
	if err != nil {
		return err
	}

	result, err := db.Optimize()
	if err != nil {
		return err
	}

	if !result.Changed {
		cmd.Printf("Database already optimal at %d batch(es).\n", result.After)
		return nil
	}

	if err := db.Save(path); err != nil {
		return err
	}
	logger.Info().
		Int("before", result.Before).
		Int("after", result.After).
		Msg("batches repacked")
	cmd.Printf("Optimized the database from %d to %d batch(es).\n",
		result.Before, result.After)
	return nil
}
