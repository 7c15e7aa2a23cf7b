package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dutykh/semlist/internal/config"
	"github.com/dutykh/semlist/internal/logging"
	"github.com/dutykh/semlist/internal/maillist"
)

// setupLogging configures the package logger from the config file,
// environment, and the --debug flag, and attaches it to the command
// context so deeper calls can retrieve it with logging.FromContext.
func setupLogging(cmd *cobra.Command) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file must not silence logging entirely.
		cfg = config.New()
	}

	logCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = logging.FormatConsole
	}

	base := logging.New(cmd.ErrOrStderr(), logCfg)
	logger = logging.ComponentLogger(base, "cli")
	cmd.SetContext(logger.WithContext(cmd.Context()))

	if err != nil {
		logger.Warn().Err(err).Msg("config file unreadable, using defaults")
	}
}

// resolveStore loads the configuration, applies the --dir override, and
// returns the active-database store for the resolved directory.
func resolveStore(cmd *cobra.Command) (*config.ActiveStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dir := cfg.DatabaseDir
	if flagDir, _ := cmd.Flags().GetString("dir"); flagDir != "" {
		dir = flagDir
	}
	return config.NewActiveStore(dir), nil
}

// loadActive opens the currently selected database. The path comes back
// alongside the database so mutating commands can save to the same file.
func loadActive(cmd *cobra.Command) (*maillist.Database, string, error) {
	store, err := resolveStore(cmd)
	if err != nil {
		return nil, "", err
	}

	path, err := store.ActivePath()
	if err != nil {
		return nil, "", err
	}

	if _, err := os.Stat(path); err != nil {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		return nil, "", fmt.Errorf(
			"active database %s does not exist; create it with 'semlist new %s' or activate another",
			path, name)
	}

	db, err := maillist.Load(path)
	if err != nil {
		return nil, "", err
	}
	logger.Debug().Str("database", path).Int("entries", db.Len()).Msg("database loaded")
	return db, path, nil
}
