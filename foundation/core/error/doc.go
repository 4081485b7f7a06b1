// Package error provides structured error handling for the bstr foundation packages.
//
// Package: error
// Title: Structured Error Framework
// Description: This package implements an error type that carries a stable code,
//              a severity, the failing operation and details such as the offending
//              input. Every recoverable failure of the parser, the codec and the
//              string type is an *Error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Codes for parser, codec and string failures
//
// Usage:
//
//	import mdwerror "github.com/msto63/bstr/foundation/core/error"
//
//	err := mdwerror.New("cannot convert \"1__0\" to integer with base 10").
//		WithCode(mdwerror.CodeInvalidLiteral).
//		WithDetail("input", "1__0").
//		WithDetail("base", 10)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidLiteral) {
//		// reject the input
//	}
package error
