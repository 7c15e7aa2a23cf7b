package maillist

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/dutykh/semlist/internal/entry"
)

// Search matches pattern case-insensitively against each entry's email and
// name fields and returns the matches as a lazy sequence. The sequence is
// finite and restartable: every range over it walks the current batches
// again, nothing is cached. A pattern that does not compile yields an
// error wrapping ErrBadPattern.
func (db *Database) Search(pattern string) (iter.Seq[entry.Entry], error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
	}

	return func(yield func(entry.Entry) bool) {
		for _, b := range db.Batches {
			for _, e := range b.Entries {
				if !re.MatchString(e.Email) && !re.MatchString(e.Name) {
					continue
				}
				if !yield(e) {
					return
				}
			}
		}
	}, nil
}
