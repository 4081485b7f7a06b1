// File: sets.go
// Title: ASCII Character Sets
// Description: Immutable byte sets for membership tests, mirroring the classic
//              string constants (whitespace, letters, digits, punctuation).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package charx

// Set is an immutable set of bytes
type Set struct {
	bits  [4]uint64
	chars string
}

// NewSet returns the set of the bytes in chars
func NewSet(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		if !s.Contains(b) {
			s.bits[b>>6] |= 1 << (b & 63)
			s.chars += chars[i : i+1]
		}
	}
	return s
}

// Contains reports whether b is a member of the set
func (s Set) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// String returns the members in first-seen order
func (s Set) String() string {
	return s.chars
}

// Len returns the number of members
func (s Set) Len() int {
	return len(s.chars)
}

var (
	Whitespace     = NewSet(" \t\n\v\f\r")
	ASCIILowercase = NewSet("abcdefghijklmnopqrstuvwxyz")
	ASCIIUppercase = NewSet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	ASCIILetters   = NewSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	Digits         = NewSet("0123456789")
	HexDigits      = NewSet("0123456789abcdefABCDEF")
	OctDigits      = NewSet("01234567")
	Punctuation    = NewSet("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")
	Printable      = NewSet("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ \t\n\r\v\f")
)
