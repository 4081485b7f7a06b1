// File: format.go
// Title: Integer Formatting
// Description: Renders integers in base 2 to 36 with lowercase digits. Decimal
//              output is written into a buffer sized by IntSize.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package numx

import (
	"strconv"

	"github.com/msto63/bstr/foundation/core/errors"
)

// FormatInt renders n in the given base, the inverse of Atol for bases 2 to 36
func FormatInt(n int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", errors.InvalidBase(strconv.Itoa(n), base)
	}
	var buf []byte
	if base == 10 {
		buf = make([]byte, 0, IntSize(int64(n))-1)
	}
	return string(strconv.AppendInt(buf, int64(n), base)), nil
}

// AppendInt appends the decimal form of n to dst, growing dst at most once
func AppendInt(dst []byte, n int64) []byte {
	if need := IntSize(n) - 1; cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}
	return strconv.AppendInt(dst, n, 10)
}
