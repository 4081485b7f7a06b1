// File: view.go
// Title: Borrowed Byte Views
// Description: View references the bytes of a live String without owning them.
//              It stays meaningful only while its owner keeps the buffer it was
//              taken from; Valid reports whether that still holds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"github.com/msto63/bstr/foundation/utils/numx"
	"github.com/msto63/bstr/foundation/utils/slicex"
)

// View is a non-owning reference to the content of a String
type View struct {
	data  []byte
	owner *String
	base  *byte
}

// UnsafeView returns a view of the receiver's content. The view must not
// outlive s, and it is stale once s is appended to or taken from.
func (s *String) UnsafeView() View {
	if s.buf.Len() == 0 {
		s.buf = slicex.Adopt([]byte{0})
	}
	items := s.buf.Items()
	return View{data: items[:len(items)-1], owner: s, base: &items[0]}
}

// WithView lends a view of the receiver to fn for the duration of the call
func (s *String) WithView(fn func(View)) {
	fn(s.UnsafeView())
}

// Valid reports whether the owner still holds the viewed buffer
func (v View) Valid() bool {
	if v.owner == nil {
		return false
	}
	items := v.owner.buf.Items()
	return len(items) > 0 && &items[0] == v.base
}

// Len returns the number of viewed bytes
func (v View) Len() int {
	return len(v.data)
}

// Raw returns the viewed bytes. The slice aliases the owner's buffer and must
// not be modified.
func (v View) Raw() []byte {
	return v.data
}

// String returns a copy of the viewed bytes as a Go string
func (v View) String() string {
	return string(v.data)
}

// Int parses the viewed bytes without copying them
func (v View) Int(base int) (int, error) {
	return numx.Atol(v.data, base)
}
