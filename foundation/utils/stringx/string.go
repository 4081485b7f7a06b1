// File: string.go
// Title: Byte String Core
// Description: String owns a zero-terminated byte buffer. Buffers are never
//              modified after construction: Append installs a new buffer, so
//              plain Go assignment of a String is always safe. Clone is the
//              explicit deep copy, Take the move.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.3.0: Replaced helper functions with the String type

package stringx

import (
	"bytes"
	"fmt"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/numx"
	"github.com/msto63/bstr/foundation/utils/slicex"
	"github.com/msto63/bstr/foundation/utils/utf8x"
)

// String is a byte string backed by a zero-terminated buffer. The zero value
// is the empty String.
type String struct {
	buf slicex.Vec[byte]
}

// terminated returns a buffer of len(content)+1 bytes holding content and a terminator
func terminated(content []byte) String {
	if len(content) == 0 {
		return String{}
	}
	buf := make([]byte, len(content)+1)
	copy(buf, content)
	return String{buf: slicex.Adopt(buf)}
}

// New returns a String holding a copy of s
func New(s string) String {
	if len(s) == 0 {
		return String{}
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return String{buf: slicex.Adopt(buf)}
}

// FromBytes returns a String holding a copy of b
func FromBytes(b []byte) String {
	return terminated(b)
}

// FromBuffer takes ownership of buf, whose last byte must be the zero
// terminator. The caller must not modify buf afterwards.
func FromBuffer(buf []byte) (String, error) {
	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		return String{}, errors.MissingTerminator("from_buffer", len(buf))
	}
	return String{buf: slicex.Adopt(buf)}, nil
}

// FromRaw takes ownership of buf without checking the terminator. It is meant
// for producers that write the terminator themselves, such as utf8x.Chr.
func FromRaw(buf []byte) String {
	return String{buf: slicex.Adopt(buf)}
}

// FromView returns a String holding a copy of the viewed bytes
func FromView(v View) String {
	return terminated(v.data)
}

// FromStringer returns a String holding the result of v.String()
func FromStringer(v fmt.Stringer) String {
	return New(v.String())
}

// Chr returns the one-character String encoding code point c
func Chr(c uint32) (String, error) {
	buf, err := utf8x.Chr(c)
	if err != nil {
		return String{}, err
	}
	return FromRaw(buf), nil
}

// data returns the content without the terminator. The slice aliases the
// buffer and must not be modified.
func (s String) data() []byte {
	items := s.buf.Items()
	if len(items) == 0 {
		return nil
	}
	return items[:len(items)-1]
}

// Len returns the length in bytes, terminator excluded
func (s String) Len() int {
	if n := s.buf.Len(); n > 0 {
		return n - 1
	}
	return 0
}

// IsEmpty reports whether the String has no content
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// Bytes returns a copy of the content
func (s String) Bytes() []byte {
	return bytes.Clone(s.data())
}

// CBytes returns a copy of the content followed by the zero terminator
func (s String) CBytes() []byte {
	out := make([]byte, s.Len()+1)
	copy(out, s.data())
	return out
}

// String returns the content as a Go string
func (s String) String() string {
	return string(s.data())
}

// MarshalText encodes the String as its content
func (s String) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// Equal reports whether s and other hold the same bytes
func (s String) Equal(other String) bool {
	a, b := s.data(), other.data()
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	return bytes.Equal(a, b)
}

// Compare returns -1, 0 or +1 by lexicographic byte order
func (s String) Compare(other String) int {
	return bytes.Compare(s.data(), other.data())
}

// Hash returns the 64-bit xxHash of the content
func (s String) Hash() uint64 {
	return xxhash.Sum64(s.data())
}

// At returns the one-byte String at index i; negative indices count from the end
func (s String) At(i int) (String, error) {
	data := s.data()
	idx := i
	if idx < 0 {
		idx += len(data)
	}
	if idx < 0 || idx >= len(data) {
		return String{}, errors.IndexOutOfRange(errors.ModuleStringx, "at", i, len(data))
	}
	return terminated(data[idx : idx+1]), nil
}

// Concat returns s followed by other. An empty operand yields the other
// operand unchanged; otherwise exactly Len()+other.Len()+1 bytes are allocated.
func (s String) Concat(other String) String {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	a, b := s.data(), other.buf.Items()
	buf := make([]byte, len(a)+len(b))
	copy(buf, a)
	copy(buf[len(a):], b)
	return String{buf: slicex.Adopt(buf)}
}

// Append replaces the receiver's buffer with the concatenation of s and other.
// Other Strings sharing the old buffer are not affected.
func (s *String) Append(other String) {
	*s = s.Concat(other)
}

// Repeat returns s repeated n times; n <= 0 yields the empty String
func (s String) Repeat(n int) String {
	data := s.data()
	if n <= 0 || len(data) == 0 {
		return String{}
	}
	if len(data) > (math.MaxInt-1)/n {
		panic("stringx: Repeat count causes overflow")
	}
	buf := make([]byte, len(data)*n+1)
	for i := 0; i < n; i++ {
		copy(buf[i*len(data):], data)
	}
	return String{buf: slicex.Adopt(buf)}
}

// Clone returns a deep copy with its own buffer
func (s String) Clone() String {
	return String{buf: s.buf.Clone()}
}

// Take moves the buffer into the returned String and leaves s empty
func (s *String) Take() String {
	return String{buf: s.buf.Take()}
}

// Ord returns the code point of a String holding exactly one UTF-8 character
func (s String) Ord() (uint32, error) {
	return utf8x.Ord(s.data())
}

// CodePoints iterates over the byte offset and code point of every character.
// Malformed bytes yield U+FFFD and advance by one byte.
func (s String) CodePoints() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		data := s.data()
		for i := 0; i < len(data); {
			c, n, err := utf8x.Decode(data[i:])
			if err != nil {
				c, n = 0xFFFD, 1
			}
			if !yield(i, c) {
				return
			}
			i += n
		}
	}
}

// Int parses the content with numx.Atol
func (s String) Int(base int) (int, error) {
	return numx.Atol(s.data(), base)
}
