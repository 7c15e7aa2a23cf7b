package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// activeFileName tracks which database file is currently selected. It
// lives inside the database directory, next to the databases.
const activeFileName = "config.json"

// Directory and file permissions for the database workspace.
const (
	dirPerm  = 0750
	filePerm = 0600
)

// ErrNoSuchDatabase indicates an activate/delete target file that does not
// exist in the database directory.
var ErrNoSuchDatabase = errors.New("database does not exist")

// activeState is the serialized form of the tracking file.
type activeState struct {
	ActiveDatabase string `json:"active_database"`
}

// ActiveStore manages the active-database tracking file for one database
// directory.
type ActiveStore struct {
	dir string
}

// NewActiveStore returns a store rooted at dir. Nothing is read or created
// until EnsureExists or Active is called.
func NewActiveStore(dir string) *ActiveStore {
	return &ActiveStore{dir: dir}
}

// Dir returns the database directory the store is rooted at.
func (s *ActiveStore) Dir() string { return s.dir }

func (s *ActiveStore) filePath() string {
	return filepath.Join(s.dir, activeFileName)
}

// EnsureExists creates the database directory and the tracking file,
// pointing at the default database, when either is missing.
func (s *ActiveStore) EnsureExists() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	if _, err := os.Stat(s.filePath()); err == nil {
		return nil
	}
	return s.save(activeState{ActiveDatabase: DatabaseFileName(DefaultDatabaseName)})
}

// Active returns the filename of the currently selected database, creating
// the tracking file with the default when needed.
func (s *ActiveStore) Active() (string, error) {
	if err := s.EnsureExists(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.filePath())
	if err != nil {
		return "", fmt.Errorf("reading active-database file: %w", err)
	}
	var state activeState
	if err := json.Unmarshal(data, &state); err != nil {
		return "", fmt.Errorf("parsing active-database file: %w", err)
	}
	if state.ActiveDatabase == "" {
		return DatabaseFileName(DefaultDatabaseName), nil
	}
	// Older files occasionally stored the directory prefix too.
	return filepath.Base(state.ActiveDatabase), nil
}

// ActivePath returns the full path of the currently selected database.
func (s *ActiveStore) ActivePath() (string, error) {
	name, err := s.Active()
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// Activate selects an existing database. It returns ErrNoSuchDatabase when
// the target file is missing: only databases that exist can be activated.
func (s *ActiveStore) Activate(name string) error {
	if err := s.EnsureExists(); err != nil {
		return err
	}

	fileName := DatabaseFileName(name)
	if _, err := os.Stat(filepath.Join(s.dir, fileName)); err != nil {
		return fmt.Errorf("%w: %s", ErrNoSuchDatabase, fileName)
	}
	return s.save(activeState{ActiveDatabase: fileName})
}

// Reset points the tracking file back at the default database.
func (s *ActiveStore) Reset() error {
	return s.save(activeState{ActiveDatabase: DatabaseFileName(DefaultDatabaseName)})
}

func (s *ActiveStore) save(state activeState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling active-database file: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, filePerm); err != nil {
		return fmt.Errorf("writing active-database file: %w", err)
	}
	return nil
}

// List returns the database filenames present in the directory, sorted,
// excluding the tracking file itself.
func (s *ActiveStore) List() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing database directory: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || name == activeFileName || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DatabaseFileName sanitizes a user-supplied database name into the
// filename used inside the database directory: path components are
// stripped and a .json suffix is guaranteed.
func DatabaseFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if !strings.HasSuffix(base, ".json") {
		base += ".json"
	}
	return base
}

// DatabasePath returns the full path a database name resolves to.
func (s *ActiveStore) DatabasePath(name string) string {
	return filepath.Join(s.dir, DatabaseFileName(name))
}

// Delete removes a database file. The caller is responsible for
// confirmation; this only touches the filesystem. When the deleted file
// was the active one, the tracking file is reset to the default database.
func (s *ActiveStore) Delete(name string) error {
	fileName := DatabaseFileName(name)
	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNoSuchDatabase, fileName)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting database file: %w", err)
	}

	active, err := s.Active()
	if err != nil {
		return err
	}
	if active == fileName {
		return s.Reset()
	}
	return nil
}
