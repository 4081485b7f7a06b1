// Package numx parses and sizes integers.
//
// Package: numx
// Title: Integer Parsing and Size Estimation
// Description: Atol is the byte-level integer parser behind the bstr tool and
//              stringx.String.Int. It accepts any base from 2 to 36 and Go-style
//              literals in base 0, tolerates surrounding whitespace and digit
//              separators, and reports overflow instead of wrapping.
//              DigitCount32, DigitCount64 and IntSize compute exact buffer sizes
//              for decimal rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Usage:
//
//	n, err := numx.Atol("0x_1F", 0)   // 31
//	n, err = numx.Atol(" -1_000 ", 10) // -1000
//	size := numx.IntSize(-42)          // 4: sign, two digits, terminator
package numx
