// Package logging builds the zerolog logger used across the application.
// The TUI owns the terminal, so logs go to a file unless debug output to
// stderr is requested.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and destination
type Config struct {
	Level   string
	File    string // empty means DefaultFile()
	Console bool   // write human-readable output to Stderr instead of a file
	Stderr  io.Writer
}

// Result is the configured logger plus the file it writes to, if any
type Result struct {
	Logger   zerolog.Logger
	FilePath string
	file     *os.File
}

// Close closes the log file handle, if one was opened
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// DefaultFile returns the default log file location
func DefaultFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "valuetracker", "valuetracker.log")
}

// New builds a logger from cfg. An unparsable level falls back to info.
func New(cfg Config) (*Result, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Console {
		out := cfg.Stderr
		if out == nil {
			out = os.Stderr
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
			Level(lvl).
			With().
			Timestamp().
			Logger()
		return &Result{Logger: logger}, nil
	}

	path := cfg.File
	if path == "" {
		path = DefaultFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &Result{Logger: logger, FilePath: path, file: f}, nil
}

// Component returns a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
