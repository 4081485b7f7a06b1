// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the bstr foundation packages. Codes are stable identifiers that
//              callers and the CLI use to branch on failures without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced platform codes with byte-string, codec and parser codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Integer parsing
	CodeInvalidBase     Code = "NUMX_INVALID_BASE"
	CodeEmptyInput      Code = "NUMX_EMPTY_INPUT"
	CodeInvalidLiteral  Code = "NUMX_INVALID_LITERAL"
	CodeIntegerOverflow Code = "NUMX_INTEGER_OVERFLOW"

	// UTF-8 codec
	CodeMalformedSequence Code = "UTF8X_MALFORMED_SEQUENCE"
	CodeInvalidCodePoint  Code = "UTF8X_INVALID_CODE_POINT"

	// Strings and buffers
	CodeEmptyDelimiter     Code = "STRINGX_EMPTY_DELIMITER"
	CodeIndexOutOfRange    Code = "STRINGX_INDEX_OUT_OF_RANGE"
	CodeMissingTerminator  Code = "STRINGX_MISSING_TERMINATOR"
	CodeBufferOutOfRange   Code = "SLICEX_INDEX_OUT_OF_RANGE"
	CodeBuilderInvalidated Code = "STRINGX_BUILDER_INVALIDATED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidBase, CodeEmptyInput, CodeInvalidLiteral, CodeIntegerOverflow,
		CodeMalformedSequence, CodeInvalidCodePoint,
		CodeEmptyDelimiter, CodeIndexOutOfRange, CodeMissingTerminator, CodeBufferOutOfRange,
		CodeBuilderInvalidated,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidBase, CodeEmptyInput, CodeInvalidLiteral, CodeIntegerOverflow:
		return "parse"
	case CodeMalformedSequence, CodeInvalidCodePoint:
		return "encoding"
	case CodeEmptyDelimiter, CodeIndexOutOfRange, CodeMissingTerminator, CodeBufferOutOfRange,
		CodeBuilderInvalidated:
		return "string"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "parse", "encoding", "string":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
