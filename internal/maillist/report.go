package maillist

import (
	"fmt"
	"strings"
)

// FormatBatch produces the Outlook-format text block for one batch: each
// entry's full_entry on its own line, in entry order. It returns
// ErrBatchNotFound when the id does not exist.
func (db *Database) FormatBatch(id int) (string, error) {
	for _, b := range db.Batches {
		if b.ID != id {
			continue
		}
		var sb strings.Builder
		for _, e := range b.Entries {
			sb.WriteString(e.FullEntry)
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("%w: id %d (database has %d batches)",
		ErrBatchNotFound, id, len(db.Batches))
}

// FormatAll produces the Outlook-format text block for the whole flattened
// database, batches joined in id order.
func (db *Database) FormatAll() string {
	var sb strings.Builder
	for _, b := range db.Batches {
		for _, e := range b.Entries {
			sb.WriteString(e.FullEntry)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// BatchFill is one batch's entry count in a Stats report.
type BatchFill struct {
	ID    int
	Count int
}

// Stats summarizes the database: totals, per-batch fill, and a duplicate
// consistency check that should always read zero given the add invariant.
type Stats struct {
	TotalEntries int
	BatchCount   int
	PerBatch     []BatchFill
	// DuplicateEmails counts entries beyond the first occurrence of each
	// normalized address. Non-zero means the file was edited outside the
	// tool.
	DuplicateEmails int
	MinFill         int
	MaxFill         int
	AvgFill         float64
}

// Stats computes the statistics report for the current database state.
func (db *Database) Stats() Stats {
	stats := Stats{BatchCount: len(db.Batches)}
	seen := make(map[string]struct{})

	for _, b := range db.Batches {
		count := len(b.Entries)
		stats.TotalEntries += count
		stats.PerBatch = append(stats.PerBatch, BatchFill{ID: b.ID, Count: count})

		if stats.MinFill == 0 || count < stats.MinFill {
			stats.MinFill = count
		}
		if count > stats.MaxFill {
			stats.MaxFill = count
		}

		for _, e := range b.Entries {
			if _, dup := seen[e.Email]; dup {
				stats.DuplicateEmails++
				continue
			}
			seen[e.Email] = struct{}{}
		}
	}

	if stats.BatchCount > 0 {
		stats.AvgFill = float64(stats.TotalEntries) / float64(stats.BatchCount)
	}
	return stats
}
