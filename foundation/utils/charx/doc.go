// Package charx classifies single ASCII bytes.
//
// Package: charx
// Title: ASCII Character Classes
// Description: Predicates (IsDigit, IsUpper, IsLower, IsSpace and friends), the
//              bit-5 case flip and immutable byte sets. The integer parser and
//              the byte-string algorithms build on these instead of the unicode
//              package because they operate on bytes, never on decoded runes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Usage:
//
//	if charx.IsSpace(b) { ... }
//	v, ok := charx.DigitValue('z') // 35, true
//	charx.Punctuation.Contains('!') // true
package charx
