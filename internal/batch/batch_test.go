package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutykh/semlist/internal/entry"
)

// makeEntries builds n distinct entries with predictable addresses.
func makeEntries(n int) []entry.Entry {
	entries := make([]entry.Entry, n)
	for i := range entries {
		email := fmt.Sprintf("user%03d@example.com", i)
		entries[i] = entry.Entry{Email: email, FullEntry: "<" + email + ">;"}
	}
	return entries
}

func TestRebuild(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields zero batches", func(t *testing.T) {
		t.Parallel()
		batches, err := Rebuild(nil, DefaultCapacity)
		require.NoError(t, err)
		assert.Empty(t, batches)
	})

	t.Run("ids contiguous from one", func(t *testing.T) {
		t.Parallel()
		batches, err := Rebuild(makeEntries(130), DefaultCapacity)
		require.NoError(t, err)
		require.Len(t, batches, 3)
		for i, b := range batches {
			assert.Equal(t, i+1, b.ID)
		}
		assert.Len(t, batches[0].Entries, 58)
		assert.Len(t, batches[1].Entries, 58)
		assert.Len(t, batches[2].Entries, 14)
	})

	t.Run("invalid capacity rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Rebuild(makeEntries(3), 0)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("flatten of rebuild preserves order", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{1, 57, 58, 59, 200} {
			entries := makeEntries(n)
			batches, err := Rebuild(entries, DefaultCapacity)
			require.NoError(t, err)
			assert.Equal(t, entries, Flatten(batches), "n=%d", n)
		}
	})
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("nil batches", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Flatten(nil))
	})

	t.Run("concatenates in batch order", func(t *testing.T) {
		t.Parallel()
		entries := makeEntries(5)
		batches := []Batch{
			{ID: 1, Entries: entries[:2]},
			{ID: 2, Entries: entries[2:]},
		}
		assert.Equal(t, entries, Flatten(batches))
	})
}

func TestOptimize(t *testing.T) {
	t.Parallel()

	t.Run("three batches of thirty repack to two", func(t *testing.T) {
		t.Parallel()
		entries := makeEntries(90)
		batches := []Batch{
			{ID: 1, Entries: entries[:30]},
			{ID: 2, Entries: entries[30:60]},
			{ID: 3, Entries: entries[60:]},
		}

		packed, err := Optimize(batches, DefaultCapacity)
		require.NoError(t, err)
		require.Len(t, packed, 2)
		assert.Len(t, packed[0].Entries, 58)
		assert.Len(t, packed[1].Entries, 32)
		assert.Equal(t, entries, Flatten(packed))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		batches, err := Rebuild(makeEntries(75), 10)
		require.NoError(t, err)

		once, err := Optimize(batches, 10)
		require.NoError(t, err)
		twice, err := Optimize(once, 10)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("empty database optimizes to zero batches", func(t *testing.T) {
		t.Parallel()
		packed, err := Optimize(nil, DefaultCapacity)
		require.NoError(t, err)
		assert.Empty(t, packed)
	})

	t.Run("never exceeds capacity nor minimum batch count", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{1, 57, 58, 59, 116, 117, 300} {
			packed, err := Optimize([]Batch{{ID: 1, Entries: makeEntries(n)}}, DefaultCapacity)
			require.NoError(t, err)

			want := (n + DefaultCapacity - 1) / DefaultCapacity
			assert.Len(t, packed, want, "n=%d", n)
			for _, b := range packed {
				assert.LessOrEqual(t, len(b.Entries), DefaultCapacity)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("within capacity", func(t *testing.T) {
		t.Parallel()
		batches, err := Rebuild(makeEntries(100), DefaultCapacity)
		require.NoError(t, err)
		assert.NoError(t, Validate(batches, DefaultCapacity))
	})

	t.Run("over capacity reported with batch id", func(t *testing.T) {
		t.Parallel()
		batches := []Batch{{ID: 7, Entries: makeEntries(59)}}
		err := Validate(batches, DefaultCapacity)
		require.ErrorIs(t, err, ErrOverCapacity)
		assert.Contains(t, err.Error(), "batch 7")
	})
}
