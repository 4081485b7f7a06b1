// File: atol.go
// Title: Multi-Base Integer Parser
// Description: Atol parses integer text in base 2 to 36, or in base 0 where the
//              literal describes its own base through a 0b, 0o or 0x prefix.
//              Underscores may separate digits. Overflow of int is detected on
//              every digit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package numx

import (
	"math"

	"github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/charx"
)

// MinBase and MaxBase bound the explicit bases Atol accepts; 0 selects
// auto-detection.
const (
	MinBase = 2
	MaxBase = 36
)

// Atol parses s as a signed integer in the given base.
//
// Leading and trailing whitespace is ignored, a single '+' or '-' may precede
// the numeral, and single underscores may stand between digits. With base 0
// the literal selects its base: 0b/0B for 2, 0o/0O for 8, 0x/0X for 16 and
// decimal otherwise, where a decimal literal must not start with 0 unless it
// is zero. With an explicit base of 2, 8 or 16 the matching prefix is accepted
// too. Directly after a prefix one underscore is allowed ("0x_1F").
//
// The error codes are NUMX_INVALID_BASE, NUMX_EMPTY_INPUT,
// NUMX_INVALID_LITERAL and NUMX_INTEGER_OVERFLOW.
func Atol[T ~string | ~[]byte](s T, base int) (int, error) {
	if base != 0 && (base < MinBase || base > MaxBase) {
		return 0, errors.InvalidBase(string(s), base)
	}
	if len(s) == 0 {
		return 0, errors.EmptyInput(string(s), base)
	}

	pos, negative := trimAndSign(s)

	realBase := base
	hasPrefix := false
	if base == 0 {
		realBase, pos = identifyBase(s, pos)
		if realBase < 0 {
			return 0, errors.InvalidLiteral(string(s), base)
		}
		hasPrefix = realBase != 10
	} else {
		pos, hasPrefix = skipBasePrefix(s, pos, base)
	}

	limit := uint64(math.MaxInt)
	if negative {
		limit++
	}
	ubase := uint64(realBase)

	var result uint64
	foundDigit := false
	lastUnderscore := !hasPrefix
	trailingSpace := false

	for ; pos < len(s); pos++ {
		c := s[pos]
		if c == '_' {
			if lastUnderscore {
				return 0, errors.InvalidLiteral(string(s), base)
			}
			lastUnderscore = true
			continue
		}
		if charx.IsSpace(c) {
			trailingSpace = true
			break
		}
		lastUnderscore = false

		d, ok := charx.DigitValue(c)
		if !ok || d >= realBase {
			return 0, errors.InvalidLiteral(string(s), base)
		}
		foundDigit = true

		if result > (limit-uint64(d))/ubase {
			return 0, errors.IntegerOverflow(string(s), base)
		}
		result = result*ubase + uint64(d)
	}

	if lastUnderscore || !foundDigit {
		return 0, errors.InvalidLiteral(string(s), base)
	}

	if trailingSpace {
		for ; pos < len(s); pos++ {
			if !charx.IsSpace(s[pos]) {
				return 0, errors.InvalidLiteral(string(s), base)
			}
		}
	}

	if negative {
		// limit allows exactly MaxInt+1, which wraps to MinInt
		return int(-result), nil
	}
	return int(result), nil
}

// Atoi parses s in base 10
func Atoi[T ~string | ~[]byte](s T) (int, error) {
	return Atol(s, 10)
}

// trimAndSign skips leading whitespace and one sign character
func trimAndSign[T ~string | ~[]byte](s T) (int, bool) {
	pos := 0
	for pos < len(s) && charx.IsSpace(s[pos]) {
		pos++
	}
	if pos < len(s) {
		switch s[pos] {
		case '-':
			return pos + 1, true
		case '+':
			return pos + 1, false
		}
	}
	return pos, false
}

// skipBasePrefix steps over a prefix that matches an explicit base of 2, 8 or 16
func skipBasePrefix[T ~string | ~[]byte](s T, pos, base int) (int, bool) {
	if pos+1 >= len(s) || s[pos] != '0' {
		return pos, false
	}
	if prefixBase(s[pos+1]) == base {
		return pos + 2, true
	}
	return pos, false
}

// identifyBase detects the base of a literal starting at pos. It returns -1
// for a decimal literal with a leading zero that is not zero.
func identifyBase[T ~string | ~[]byte](s T, pos int) (int, int) {
	if pos >= len(s)-1 {
		return 10, pos
	}

	first := s[pos]
	if first != '0' {
		if charx.IsDigit(first) {
			return 10, pos
		}
		return -1, pos
	}

	if b := prefixBase(s[pos+1]); b > 0 {
		return b, pos + 2
	}

	// only zeros, single underscores between them and trailing whitespace
	lastUnderscore := false
	for i := pos + 1; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if lastUnderscore {
				return -1, pos
			}
			lastUnderscore = true
			continue
		}
		lastUnderscore = false
		if charx.IsSpace(c) {
			break
		}
		if c != '0' {
			return -1, pos
		}
	}
	return 10, pos
}

// prefixBase maps the letter of a 0b, 0o or 0x prefix to its base
func prefixBase(c byte) int {
	switch charx.ToLower(c) {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'x':
		return 16
	}
	return 0
}
