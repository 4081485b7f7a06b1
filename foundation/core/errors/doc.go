// Package errors provides the standard error constructors for all bstr foundation
// packages.
//
// Package: errors
// Title: Standard Error Handling API for the bstr Foundation
// Description: This package provides the ErrorBuilder and one constructor per
//              failure of the parser, the codec, the string type, the buffer and
//              the configuration layer. Every error carries the module and the
//              operation as details, plus the offending input where there is one.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-16 v0.2.0: Domain constructors for numx, utf8x, stringx, slicex and config
//
// # Error Creation
//
//   - InvalidBase, EmptyInput, InvalidLiteral, IntegerOverflow: numx.Atol failures
//   - MalformedSequence, InvalidCodePoint: utf8x.Ord and utf8x.Chr failures
//   - EmptyDelimiter, IndexOutOfRange, MissingTerminator, BuilderInvalidated: stringx and slicex
//   - ConfigError, InvalidConfig: configuration loading and validation
//   - InvalidInput, NotFound: generic failures
//
// # Error Analysis
//
//   - ExtractModule, ExtractOperation, IsModuleError, IsModuleOperation
//
// # Usage
//
//	err := errors.NewErrorBuilder(errors.ModuleStringx).
//		Operation("split").
//		Message("empty delimiter").
//		Code(mdwerror.CodeEmptyDelimiter).
//		Build()
//
//	if errors.IsModuleError(err, errors.ModuleStringx) {
//		// ...
//	}
package errors
