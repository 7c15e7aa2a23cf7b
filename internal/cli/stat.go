package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Styles for the stat summary block.
var (
	statTitleStyle = lipgloss.NewStyle().Bold(true)
	statLabelStyle = lipgloss.NewStyle().Faint(true).Width(22)
	statWarnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// NewStatCmd creates the "stat" command with detailed database statistics.
func NewStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Show detailed statistics about the active database",
		Args:  cobra.NoArgs,
		RunE:  runStat,
	}
}

func runStat(cmd *cobra.Command, _ []string) error {
	db, _, err := loadActive(cmd)
	if err != nil {
		return err
	}

	stats := db.Stats()
	printer := message.NewPrinter(language.English)

	cmd.Println(statTitleStyle.Render(fmt.Sprintf("Database: %s", db.Name)))
	statLine(cmd, "Created", db.Created)
	statLine(cmd, "Last modified", db.LastModified)
	statLine(cmd, "Total emails", printer.Sprintf("%d", stats.TotalEntries))
	statLine(cmd, "Batches", printer.Sprintf("%d", stats.BatchCount))
	statLine(cmd, "Batch capacity", printer.Sprintf("%d", db.Capacity()))

	if stats.BatchCount > 0 {
		statLine(cmd, "Min batch fill", printer.Sprintf("%d", stats.MinFill))
		statLine(cmd, "Max batch fill", printer.Sprintf("%d", stats.MaxFill))
		statLine(cmd, "Average batch fill", fmt.Sprintf("%.1f", stats.AvgFill))
	}

	// Should always be zero; anything else means the file was edited by
	// hand and needs attention.
	if stats.DuplicateEmails > 0 {
		cmd.Println(statWarnStyle.Render(
			fmt.Sprintf("Consistency check FAILED: %d duplicate email(s)", stats.DuplicateEmails)))
	} else {
		statLine(cmd, "Duplicate emails", "0 (consistent)")
	}

	if stats.BatchCount > 0 {
		cmd.Println()
		cmd.Println("Emails per batch:")
		for _, fill := range stats.PerBatch {
			cmd.Printf("  Batch %d: %d emails\n", fill.ID, fill.Count)
		}
	}
	return nil
}

func statLine(cmd *cobra.Command, label, value string) {
	cmd.Printf("%s %s\n", statLabelStyle.Render(label+":"), value)
}
