package maillist

import "errors"

// Common database errors. All are reported to the caller as values; the
// core never terminates the process.
var (
	// ErrNotFound indicates a remove target absent from the database.
	ErrNotFound = errors.New("email not found in database")

	// ErrBatchNotFound indicates a format/print target batch id out of range.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrBadPattern indicates a search pattern that does not compile as a
	// regular expression.
	ErrBadPattern = errors.New("invalid search pattern")

	// ErrCorrupted indicates a persisted database that violates the batch
	// capacity invariant. Unlike the others this one is fatal to the
	// invocation: the file must be repaired before further use.
	ErrCorrupted = errors.New("database file corrupted")
)
