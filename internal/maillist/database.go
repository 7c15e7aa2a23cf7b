// Package maillist holds the in-memory mailing-list database: metadata,
// batched entries, and the add/remove/search/format/stats operations the
// command layer calls with already-parsed arguments.
package maillist

import (
	"time"

	"github.com/dutykh/semlist/internal/batch"
	"github.com/dutykh/semlist/internal/entry"
)

// dateLayout is the persisted form of the created/last_modified fields.
const dateLayout = "2006-01-02"

// Database aggregates the batched entries with list metadata. Entry order
// across the flattened batch sequence reflects insertion order; optimize
// repacks without reordering.
type Database struct {
	Name         string        `json:"name"`
	Created      string        `json:"created"`
	LastModified string        `json:"last_modified"`
	Batches      []batch.Batch `json:"batches"`

	// capacity overrides batch.DefaultCapacity when non-zero. Not
	// persisted; the file format has no capacity field.
	capacity int
}

// New creates an empty database with both timestamps set to today.
func New(name string) *Database {
	today := time.Now().Format(dateLayout)
	return &Database{
		Name:         name,
		Created:      today,
		LastModified: today,
	}
}

// SetCapacity overrides the per-batch entry limit. Zero or negative values
// reset to the default.
func (db *Database) SetCapacity(capacity int) {
	if capacity < batch.MinCapacity {
		capacity = 0
	}
	db.capacity = capacity
}

// Capacity returns the effective per-batch entry limit.
func (db *Database) Capacity() int {
	if db.capacity >= batch.MinCapacity {
		return db.capacity
	}
	return batch.DefaultCapacity
}

// Entries returns all entries in batch order. The slice is freshly built;
// mutating it does not touch the database.
func (db *Database) Entries() []entry.Entry {
	return batch.Flatten(db.Batches)
}

// Len returns the total entry count across all batches.
func (db *Database) Len() int {
	var n int
	for _, b := range db.Batches {
		n += len(b.Entries)
	}
	return n
}

// touch records a mutation in the last_modified field.
func (db *Database) touch() {
	db.LastModified = time.Now().Format(dateLayout)
}

// contains reports whether the normalized address already exists anywhere
// in the database.
func (db *Database) contains(normalized string) bool {
	for _, b := range db.Batches {
		for _, e := range b.Entries {
			if e.Email == normalized {
				return true
			}
		}
	}
	return false
}

// AddReport is the aggregated per-item result of one Add call. Each
// sub-entry of the input succeeds or fails independently.
type AddReport struct {
	// Added holds the entries appended to the database, in input order.
	Added []entry.Entry
	// Duplicates lists normalized addresses skipped because they already
	// exist. Skipping a duplicate is a per-entry result, not an error.
	Duplicates []string
	// Invalid collects the sub-entries no email address could be parsed
	// from.
	Invalid []*entry.ParseError
}

// Changed reports whether the call mutated the database.
func (r *AddReport) Changed() bool { return len(r.Added) > 0 }

// Add parses text into candidate entries and appends every candidate whose
// normalized email is not yet present. New entries go to the end of the
// logical entry sequence; the batches are then rebuilt around it, so ids
// stay contiguous. LastModified is bumped only when something was added.
func (db *Database) Add(text string) (*AddReport, error) {
	parsed, parseErrs := entry.Parse(text)
	report := &AddReport{Invalid: parseErrs}

	entries := db.Entries()
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Email] = struct{}{}
	}

	for _, e := range parsed {
		if _, dup := seen[e.Email]; dup {
			report.Duplicates = append(report.Duplicates, e.Email)
			continue
		}
		seen[e.Email] = struct{}{}
		entries = append(entries, e)
		report.Added = append(report.Added, e)
	}

	if !report.Changed() {
		return report, nil
	}

	batches, err := batch.Rebuild(entries, db.Capacity())
	if err != nil {
		return nil, err
	}
	db.Batches = batches
	db.touch()
	return report, nil
}

// Remove deletes every entry matching the normalized form of email and
// rebuilds the remaining entries into batches. It returns ErrNotFound, and
// leaves LastModified untouched, when no entry matches.
func (db *Database) Remove(email string) error {
	target := entry.NormalizeEmail(email)

	entries := db.Entries()
	kept := entries[:0:0]
	for _, e := range entries {
		if e.Email != target {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrNotFound
	}

	batches, err := batch.Rebuild(kept, db.Capacity())
	if err != nil {
		return err
	}
	db.Batches = batches
	db.touch()
	return nil
}

// OptimizeResult reports the batch counts before and after a repack.
type OptimizeResult struct {
	Before int
	After  int
	// Changed is false when the database was already optimally packed.
	Changed bool
}

// Optimize repacks the database to the minimum batch count for the current
// capacity, preserving entry order. It is idempotent: repacking an already
// optimal database changes nothing, including LastModified.
func (db *Database) Optimize() (OptimizeResult, error) {
	result := OptimizeResult{Before: len(db.Batches)}

	batches, err := batch.Optimize(db.Batches, db.Capacity())
	if err != nil {
		return result, err
	}
	result.After = len(batches)

	if !sameLayout(db.Batches, batches) {
		db.Batches = batches
		db.touch()
		result.Changed = true
	}
	return result, nil
}

// sameLayout reports whether two batch lists have identical chunk sizes.
// Optimize never reorders entries, so equal sizes mean an identical layout.
func sameLayout(a, b []batch.Batch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i].Entries) != len(b[i].Entries) || a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
