// Package config resolves where the mailing-list databases live and which
// one is active. Tool settings come from an optional YAML file with
// environment overrides; the active database is tracked in a small JSON
// file next to the databases themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dutykh/semlist/internal/logging"
)

// Defaults for a fresh installation.
const (
	// DefaultDatabaseDir is where database files are kept when neither the
	// config file nor SEMLIST_DIR says otherwise.
	DefaultDatabaseDir = "dbase"

	// DefaultDatabaseName is the database a fresh config points at.
	DefaultDatabaseName = "MailingList"

	// configFileName is the per-user settings file under the home
	// directory.
	configFileName = ".semlist.yaml"
)

// Config holds the resolved tool settings.
type Config struct {
	// DatabaseDir is the directory holding the database JSON files and the
	// active-database tracking file.
	DatabaseDir string `yaml:"database_dir"`

	// Logging configures the CLI logger.
	Logging logging.Config `yaml:"logging"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		DatabaseDir: DefaultDatabaseDir,
		Logging:     logging.Config{Level: "info", Format: logging.FormatAuto},
	}
}

// Load resolves the configuration: defaults, then ~/.semlist.yaml when it
// exists, then environment variables. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	cfg := New()

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, configFileName)
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if dir := os.Getenv("SEMLIST_DIR"); dir != "" {
		cfg.DatabaseDir = dir
	}
	if level := os.Getenv("SEMLIST_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("SEMLIST_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}

	if cfg.DatabaseDir == "" {
		cfg.DatabaseDir = DefaultDatabaseDir
	}
	return cfg, nil
}
