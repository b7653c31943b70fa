// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/skillmesh/skillmesh-core/env"
)

// Format represents the log output format.
type Format int

const (
	// FormatJSON produces JSON-formatted output via [log/slog.JSONHandler].
	// This is the default, suitable for production services.
	FormatJSON Format = iota

	// FormatText produces human-readable output via [log/slog.TextHandler],
	// suitable for local development.
	FormatText
)

// Environment variables consulted by FromEnv.
const (
	// EnvLogFormat selects the output format: "json" or "text".
	EnvLogFormat = "SKILLMESH_LOG_FORMAT"
	// EnvLogLevel selects the minimum level: "debug", "info", "warn", "error".
	EnvLogLevel = "SKILLMESH_LOG_LEVEL"
)

// config holds the resolved configuration for creating a logger.
type config struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option configures the logger created by [New].
type Option func(*config)

// WithFormat sets the output format. The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithLevel sets the minimum log level. The default is [log/slog.LevelInfo].
// Accepts any [log/slog.Leveler], including [*log/slog.LevelVar] for dynamic
// level changes.
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the destination writer. The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// New creates a pre-configured [*log/slog.Logger] with the defaults used
// across the skillmesh ecosystem: JSON format, INFO level, stderr output,
// RFC3339 timestamps.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	return slog.New(handler)
}

// FromEnv creates a logger configured from SKILLMESH_LOG_FORMAT and
// SKILLMESH_LOG_LEVEL, read through the given environment reader.
// Unset or unrecognized values fall back to the package defaults.
// Explicit options win over the environment.
func FromEnv(reader env.Reader, opts ...Option) *slog.Logger {
	envOpts := make([]Option, 0, 2+len(opts))

	switch strings.ToLower(reader.Getenv(EnvLogFormat)) {
	case "text":
		envOpts = append(envOpts, WithFormat(FormatText))
	case "json":
		envOpts = append(envOpts, WithFormat(FormatJSON))
	}

	switch strings.ToLower(reader.Getenv(EnvLogLevel)) {
	case "debug":
		envOpts = append(envOpts, WithLevel(slog.LevelDebug))
	case "info":
		envOpts = append(envOpts, WithLevel(slog.LevelInfo))
	case "warn":
		envOpts = append(envOpts, WithLevel(slog.LevelWarn))
	case "error":
		envOpts = append(envOpts, WithLevel(slog.LevelError))
	}

	envOpts = append(envOpts, opts...)
	return New(envOpts...)
}

// Discard returns a logger that drops everything. Useful as a test default.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// replaceAttr formats the time attribute to RFC3339.
// All other attributes are passed through unchanged.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	}
	return a
}
