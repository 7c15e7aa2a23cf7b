package batch

import (
	"errors"
	"fmt"

	"github.com/dutykh/semlist/internal/entry"
)

// Capacity limits.
const (
	// DefaultCapacity is the maximum number of entries per batch, matching
	// the Outlook recipient limit the lists are mailed with. One older
	// document quotes 57; 58 is the value the worked examples and current
	// lists use, so 58 is authoritative here.
	DefaultCapacity = 58

	// MinCapacity is the smallest capacity Rebuild accepts.
	MinCapacity = 1
)

// Common batching errors.
var (
	ErrInvalidCapacity = errors.New("batch capacity must be at least 1")
	ErrOverCapacity    = errors.New("batch exceeds capacity")
)

// Batch is a fixed-capacity, ordered group of entries. Ids are contiguous
// starting at 1 after any rebuild.
type Batch struct {
	ID      int           `json:"id"`
	Entries []entry.Entry `json:"emails"`
}

// Flatten concatenates all batches' entries in batch-id order, entry order
// preserved within each batch. A nil or empty batch list yields nil.
func Flatten(batches []Batch) []entry.Entry {
	var total int
	for _, b := range batches {
		total += len(b.Entries)
	}
	if total == 0 {
		return nil
	}

	entries := make([]entry.Entry, 0, total)
	for _, b := range batches {
		entries = append(entries, b.Entries...)
	}
	return entries
}

// Rebuild partitions entries into consecutive chunks of at most capacity,
// assigning ids 1..N in order. It never reorders entries, only regroups
// them. An empty entry list yields zero batches, not one empty batch.
func Rebuild(entries []entry.Entry, capacity int) ([]Batch, error) {
	if capacity < MinCapacity {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	var batches []Batch
	for start := 0; start < len(entries); start += capacity {
		end := min(start+capacity, len(entries))
		batches = append(batches, Batch{
			ID:      len(batches) + 1,
			Entries: entries[start:end:end],
		})
	}
	return batches, nil
}

// Optimize repacks batches to the minimum batch count for the given
// capacity, preserving global entry order. With the order fixed, greedy
// fill-in-order packing is optimal, so Optimize is simply Flatten followed
// by Rebuild; applying it twice yields an identical result.
func Optimize(batches []Batch, capacity int) ([]Batch, error) {
	return Rebuild(Flatten(batches), capacity)
}

// Validate checks the capacity invariant over a batch list. A batch found
// over capacity signals corrupted persisted state; the wrapped
// ErrOverCapacity identifies the offending batch.
func Validate(batches []Batch, capacity int) error {
	if capacity < MinCapacity {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	for _, b := range batches {
		if len(b.Entries) > capacity {
			return fmt.Errorf("%w: batch %d holds %d entries (capacity %d)",
				ErrOverCapacity, b.ID, len(b.Entries), capacity)
		}
	}
	return nil
}
