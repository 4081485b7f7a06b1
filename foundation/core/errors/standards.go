// File: standards.go
// Title: Error Standards for the bstr Foundation
// Description: Module identifiers and the domain error constructors used by the
//              integer parser, the UTF-8 codec, the byte-string type, the buffer
//              and the configuration layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-16 v0.2.0: Parser, codec, string and config constructors

package errors

import mdwerror "github.com/msto63/bstr/foundation/core/error"

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleNumx    = "numx"
	ModuleUtf8x   = "utf8x"
	ModuleSlicex  = "slicex"
	ModuleConfig  = "config"
)

// =============================================================================
// NUMX: INTEGER PARSING
// =============================================================================

// InvalidBase reports a base outside {0} ∪ [2, 36]
func InvalidBase(input string, base int) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumx).
		Operation("atol").
		Messagef("cannot convert %q to integer with base %d: base must be >= 2 and <= 36, or 0", input, base).
		Code(mdwerror.CodeInvalidBase).
		Detail("input", input).
		Detail("base", base).
		Build()
}

// EmptyInput reports a zero-length numeral
func EmptyInput(input string, base int) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumx).
		Operation("atol").
		Messagef("cannot convert %q to integer with base %d: empty string", input, base).
		Code(mdwerror.CodeEmptyInput).
		Detail("input", input).
		Detail("base", base).
		Build()
}

// InvalidLiteral reports malformed digits, misplaced underscores, a bad
// prefix or trailing garbage
func InvalidLiteral(input string, base int) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumx).
		Operation("atol").
		Messagef("cannot convert %q to integer with base %d", input, base).
		Code(mdwerror.CodeInvalidLiteral).
		Detail("input", input).
		Detail("base", base).
		Build()
}

// IntegerOverflow reports a numeral that does not fit into int
func IntegerOverflow(input string, base int) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumx).
		Operation("atol").
		Messagef("cannot convert %q to integer with base %d: integer overflow", input, base).
		Code(mdwerror.CodeIntegerOverflow).
		Detail("input", input).
		Detail("base", base).
		Build()
}

// =============================================================================
// UTF8X: CODEC
// =============================================================================

// MalformedSequence reports bytes that are not exactly one well-formed UTF-8 character
func MalformedSequence(operation string, input []byte, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleUtf8x).
		Operation(operation).
		Messagef("malformed UTF-8 sequence %q: %s", input, reason).
		Code(mdwerror.CodeMalformedSequence).
		Detail("input", string(input)).
		Detail("reason", reason).
		Build()
}

// InvalidCodePoint reports a value outside the Unicode code space
func InvalidCodePoint(operation string, c uint32) *mdwerror.Error {
	return NewErrorBuilder(ModuleUtf8x).
		Operation(operation).
		Messagef("invalid code point 0x%X: must be <= 0x10FFFF", c).
		Code(mdwerror.CodeInvalidCodePoint).
		Detail("code_point", c).
		Build()
}

// =============================================================================
// STRINGX / SLICEX
// =============================================================================

// EmptyDelimiter reports a split with an empty separator
func EmptyDelimiter(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Message("empty delimiter").
		Code(mdwerror.CodeEmptyDelimiter).
		Build()
}

// IndexOutOfRange reports an index outside [-length, length)
func IndexOutOfRange(module, operation string, index, length int) *mdwerror.Error {
	code := mdwerror.CodeIndexOutOfRange
	if module == ModuleSlicex {
		code = mdwerror.CodeBufferOutOfRange
	}
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index %d out of range for length %d", index, length).
		Code(code).
		Detail("index", index).
		Detail("length", length).
		Build()
}

// MissingTerminator reports a raw buffer whose last byte is not zero
func MissingTerminator(operation string, length int) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("buffer of %d bytes does not end with a zero terminator", length).
		Code(mdwerror.CodeMissingTerminator).
		Detail("length", length).
		Build()
}

// BuilderInvalidated reports use of a builder after Build
func BuilderInvalidated(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Message("builder used after Build").
		Code(mdwerror.CodeBuilderInvalidated).
		Build()
}

// =============================================================================
// CONFIG
// =============================================================================

// ConfigError wraps a failure to locate, read or decode a configuration file
func ConfigError(operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("cannot %s configuration %s", operation, path).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Detail("path", path).
		Build()
}

// InvalidConfig reports a configuration value that fails validation
func InvalidConfig(field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration value %v for %s: %s", value, field, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Build()
}
