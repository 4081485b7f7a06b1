// File: charx.go
// Title: ASCII Character Classification
// Description: Pure byte predicates over fixed ASCII ranges and single-byte case
//              conversion. No locale awareness: bytes >= 0x80 belong to no class.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package charx

// caseBit is the bit that separates 'A'..'Z' from 'a'..'z'
const caseBit = 0x20

// IsDigit reports whether b is in '0'..'9'
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsUpper reports whether b is in 'A'..'Z'
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLower reports whether b is in 'a'..'z'
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsSpace reports whether b is a space or in the contiguous range '\t'..'\r'
// (tab, line feed, vertical tab, form feed, carriage return).
func IsSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

// IsAlpha reports whether b is an ASCII letter
func IsAlpha(b byte) bool {
	return IsUpper(b) || IsLower(b)
}

// IsAlnum reports whether b is an ASCII letter or digit
func IsAlnum(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

// IsHexDigit reports whether b is in '0'..'9', 'a'..'f' or 'A'..'F'
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b|caseBit >= 'a' && b|caseBit <= 'f')
}

// IsPrintable reports whether b is a visible character or the space
func IsPrintable(b byte) bool {
	return b >= ' ' && b <= '~'
}

// ToLower maps 'A'..'Z' to 'a'..'z' and returns every other byte unchanged
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b ^ caseBit
	}
	return b
}

// ToUpper maps 'a'..'z' to 'A'..'Z' and returns every other byte unchanged
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b ^ caseBit
	}
	return b
}

// DigitValue returns the value of b as a base-36 digit: '0'..'9' are 0..9 and
// letters of either case are 10..35.
func DigitValue(b byte) (int, bool) {
	switch {
	case IsDigit(b):
		return int(b - '0'), true
	case IsLower(b):
		return int(b-'a') + 10, true
	case IsUpper(b):
		return int(b-'A') + 10, true
	}
	return 0, false
}
