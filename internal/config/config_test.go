package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	cfg := New()
	assert.Equal(t, DefaultDatabaseDir, cfg.DatabaseDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	// t.Setenv forbids t.Parallel; these subtests mutate the environment.

	t.Run("env overrides", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("SEMLIST_DIR", "/tmp/lists")
		t.Setenv("SEMLIST_LOG_LEVEL", "debug")
		t.Setenv("SEMLIST_LOG_FORMAT", "json")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/lists", cfg.DatabaseDir)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("config file read from home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("SEMLIST_DIR", "")
		t.Setenv("SEMLIST_LOG_LEVEL", "")
		t.Setenv("SEMLIST_LOG_FORMAT", "")

		yaml := "database_dir: /var/lists\nlogging:\n  level: warn\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, ".semlist.yaml"), []byte(yaml), 0600))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/var/lists", cfg.DatabaseDir)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("malformed config file is an error", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, ".semlist.yaml"), []byte("{{nope"), 0600))

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("missing config file falls back to defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("SEMLIST_DIR", "")
		t.Setenv("SEMLIST_LOG_LEVEL", "")
		t.Setenv("SEMLIST_LOG_FORMAT", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDatabaseDir, cfg.DatabaseDir)
	})
}
