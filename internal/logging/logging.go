// Package logging configures zerolog for the CLI. Commands get a component
// logger attached to their context; packages retrieve it with FromContext.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Format selects the log output encoding.
const (
	// FormatConsole renders human-readable colored output.
	FormatConsole = "console"
	// FormatJSON emits one JSON object per line.
	FormatJSON = "json"
	// FormatAuto picks console on a terminal and JSON otherwise.
	FormatAuto = "auto"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name (debug, info, warn, error). Unknown
	// values fall back to info.
	Level string `yaml:"level"`
	// Format is one of FormatConsole, FormatJSON or FormatAuto.
	Format string `yaml:"format"`
}

// New builds a logger writing to w with the configured level and format.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if useConsole(w, cfg.Format) {
		out = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// useConsole decides whether the console writer applies: always for
// FormatConsole, never for FormatJSON, TTY-detected otherwise.
func useConsole(w io.Writer, format string) bool {
	switch format {
	case FormatConsole:
		return true
	case FormatJSON:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. It never returns nil behavior: logging through the
// result is always safe.
var FromContext = zerolog.Ctx
