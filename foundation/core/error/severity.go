// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and the logger
//              can pick an appropriate reaction (log level, exit behaviour).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for parser, codec and string codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected caller input, e.g. a malformed literal
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a broken contract inside the program, e.g. a misused builder
	SeverityHigh

	// SeverityCritical indicates an error the process cannot recover from
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeBuilderInvalidated:
		return SeverityHigh

	case CodeInvalidBase, CodeEmptyInput, CodeInvalidLiteral, CodeIntegerOverflow,
		CodeMalformedSequence, CodeInvalidCodePoint,
		CodeEmptyDelimiter, CodeIndexOutOfRange, CodeMissingTerminator, CodeBufferOutOfRange,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
