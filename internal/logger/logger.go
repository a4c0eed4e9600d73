// Package logger builds the structured slog logger shared by the server and CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	// File is the path used when Output is "file".
	File string `mapstructure:"file"`
}

const defaultLogFile = "coderadar.log"

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output is resolved from cfg.Output.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output, _ = OpenOutput(cfg)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// OpenOutput resolves the configured output. The returned close function
// must be called on shutdown; it is a no-op for stdout and stderr.
func OpenOutput(cfg Config) (io.Writer, func()) {
	switch cfg.Output {
	case "stderr":
		return os.Stderr, func() {}
	case "file":
		path := cfg.File
		if path == "" {
			path = defaultLogFile
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			slog.Error("failed to open log file, falling back to stdout", "path", path, "error", err)
			return os.Stdout, func() {}
		}
		return f, func() { _ = f.Close() }
	default:
		return os.Stdout, func() {}
	}
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
