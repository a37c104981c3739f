// Package logging builds slog loggers from the browser's logging
// settings. Components of the configuration subsystem receive an
// explicit *slog.Logger at construction instead of sharing a process
// global; Nop supplies a silent logger for callers that don't care.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Level names accepted by the logging.level setting, in increasing
// severity order.
var levelNames = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// LevelCritical is the severity used for the CRITICAL level name.
const LevelCritical = slog.LevelError + 4

// Options describes logger construction parameters.
type Options struct {
	// Level is one of DEBUG, INFO, WARNING, ERROR, CRITICAL
	// (case-insensitive). Empty means INFO.
	Level string

	// Format selects the handler: "text" (default) or "json".
	Format string

	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := slog.LevelInfo
	if opts.Level != "" {
		parsed, ok := ParseLevel(opts.Level)
		if !ok {
			return nil, fmt.Errorf("log level: unsupported value %q", opts.Level)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "text"
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(out, handlerOpts)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), nil
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a configured level name to a slog level.
// It reports false for names outside the supported set.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	case "CRITICAL":
		return LevelCritical, true
	default:
		return slog.LevelInfo, false
	}
}

// ValidLevel reports whether name is one of the exact accepted level
// names. Unlike ParseLevel, which is forgiving for logger construction
// options, the configured logging.level setting must match exactly.
func ValidLevel(name string) bool {
	return slices.Contains(levelNames, name)
}

// Levels returns the accepted level names in severity order.
func Levels() []string {
	out := make([]string, len(levelNames))
	copy(out, levelNames)
	return out
}
