// Package log provides structured logging for the bstr tool and its libraries.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements leveled, structured logging with context
//              fields, a correlation id, four output formats and integration with
//              the bstr error type. Library packages stay silent; the command line
//              tool owns the logger and passes it down where timing or diagnostics
//              are wanted.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: goccy/go-json encoding, lipgloss console colors, severity-driven LogError
//
// Usage:
//
//	import mdwlog "github.com/msto63/bstr/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatLogfmt,
//		Name:   "bstr",
//	}).WithCorrelationID(id)
//
//	logger.Debug("parsing", mdwlog.Fields{"input": "0x1F", "base": 0})
//
//	timer := logger.StartTimer("atol")
//	n, err := numx.Atol(input, base)
//	if err != nil {
//		timer.StopWithError(err)
//		logger.LogError(err)
//	}
//	timer.Stop()
package log
