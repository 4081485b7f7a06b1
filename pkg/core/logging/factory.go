// ============================================================================
// bstr - Byte String Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers for the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/bstr/foundation/core/log"
	"github.com/msto63/bstr/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Destination (default: stderr)
	Output io.Writer

	// Correlation id; a random UUID is generated when empty
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  mdwlog.DefaultLevel().String(),
		Format: mdwlog.FormatText.String(),
	}
}

// NewLogger creates a foundation logger stamped with a correlation id
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	// ParseFormat falls back to text on unknown input
	format, _ := mdwlog.ParseFormat(cfg.Format)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(correlationID)
}

// FromConfig creates the CLI logger from loaded settings. verbose lowers the
// level to debug unless the configured level is already more detailed.
func FromConfig(name string, cfg *config.Config, verbose bool, output io.Writer) *mdwlog.Logger {
	level := cfg.Level()
	if verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}

	return NewLogger(LoggerConfig{
		Name:   name,
		Level:  level.String(),
		Format: cfg.General.LogFormat,
		Output: output,
	})
}

// KV converts alternating key-value pairs to fields. Non-string keys and a
// dangling last key are skipped.
func KV(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
