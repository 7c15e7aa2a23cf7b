package maillist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dutykh/semlist/internal/batch"
)

// filePerm keeps database files private to the owner.
const filePerm = 0600

// Load reads a database from its JSON file and checks the capacity
// invariant. A batch over capacity means the persisted state is corrupted;
// the returned error wraps ErrCorrupted and the load fails.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading database file: %w", err)
	}

	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	if err := batch.Validate(db.Batches, db.Capacity()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return &db, nil
}

// Save writes the database back to its JSON file, indented for hand
// inspection. The whole file is rewritten; concurrent writers race and the
// last one wins, which is accepted for this tool.
func (db *Database) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	// Keep angle brackets literal so full_entry values stay readable.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(db); err != nil {
		return fmt.Errorf("marshaling database: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing database file: %w", err)
	}
	return nil
}
