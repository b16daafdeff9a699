// Package logging builds the process *slog.Logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Brommah/contentfinal-sub002/internal/config"
)

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New creates a logger writing to stderr and, when cfg.File is set, to a
// size-rotated file. The returned closer releases the file.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit console writer.
func NewWithWriter(cfg config.LogConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	return NewWithLevel(cfg, console, new(slog.LevelVar))
}

// NewWithLevel sets level from cfg and builds a logger that follows it,
// so the level can be changed at runtime with SetLevel.
func NewWithLevel(cfg config.LogConfig, console io.Writer, level *slog.LevelVar) (*slog.Logger, io.Closer, error) {
	if err := SetLevel(level, cfg.Level); err != nil {
		return nil, nil, err
	}

	var (
		out    = console
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(console, rotator)
		closer = rotator
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	case config.LogFormatText, "":
		handler = slog.NewTextHandler(out, opts)
	default:
		_ = closer.Close()
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return slog.New(handler), closer, nil
}

// SetLevel parses name and stores it in level.
func SetLevel(level *slog.LevelVar, name string) error {
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	level.Set(l)
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
