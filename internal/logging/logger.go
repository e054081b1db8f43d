// Package logging builds the structured logger used by the lvlp command.
// Records go to the given writer, or to a size-rotated file when Config.File
// is set.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrUnknownFormat indicates a Config.Format other than "text" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config describes the logger.
type Config struct {
	Level      string // debug, info, warn, error; empty means info
	Format     string // text or json; empty means text
	File       string // rotated log file; empty writes to the fallback writer
	MaxSize    int    // megabytes per file before rotation
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool   // gzip rotated files
}

// Logger is a *slog.Logger that owns its output.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

// New builds a Logger from cfg. fallback receives records when cfg.File is
// empty.
func New(cfg Config, fallback io.Writer) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := fallback
	var closer io.Closer
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out, closer = lj, lj
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(out, opts)
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Format, ErrUnknownFormat)
	}

	return &Logger{Logger: slog.New(handler), closer: closer}, nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("logging: level %q: %w", name, err)
	}

	return level, nil
}
