// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Common field names used across layers.
const (
	FieldLayer     = "layer"
	FieldAdapter   = "adapter"
	FieldUseCase   = "usecase"
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldClientIP  = "client_ip"
	FieldURL       = "url"
)

// Config holds the logger settings.
type Config struct {
	Level  string
	Format string // "console" or "json"

	// File enables a rotating log file in addition to stderr.
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Setup builds the process logger. The returned function flushes and closes
// the log file, if any.
func Setup(cfg Config, stderr io.Writer) (zerolog.Logger, func(), error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var console io.Writer = stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}
	}

	cleanup := func() {}
	out := console

	if cfg.File != "" {
		// Owner-only, the log may contain request paths.
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(console, file)
		cleanup = func() { _ = file.Close() }
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if err != nil && cfg.Level != "" {
		logger.Warn().Str("invalid_level", cfg.Level).Msg("invalid log level, using info")
	}

	return logger, cleanup, nil
}

// Adapter returns a child logger tagged for a driving or driven adapter.
func Adapter(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str(FieldLayer, "adapter").Str(FieldAdapter, name).Logger()
}

// UseCase returns a child logger tagged for a use case.
func UseCase(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str(FieldLayer, "usecase").Str(FieldUseCase, name).Logger()
}
