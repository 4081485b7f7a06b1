// File: pad.go
// Title: Padding and Alignment
// Description: Byte-width padding. Widths count bytes, not characters, so
//              multi-byte UTF-8 content is padded by its encoded length.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with ASCII fast path
// - 2026-10-16 v0.3.0: Byte widths on String, exact allocation

package stringx

import "github.com/msto63/bstr/foundation/utils/slicex"

// PadLeft right-aligns s in a field of width bytes filled with fill
func (s String) PadLeft(width int, fill byte) String {
	return s.pad(width, fill, width-s.Len())
}

// PadRight left-aligns s in a field of width bytes filled with fill
func (s String) PadRight(width int, fill byte) String {
	return s.pad(width, fill, 0)
}

// Center centers s in a field of width bytes. An odd remainder goes to the right.
func (s String) Center(width int, fill byte) String {
	return s.pad(width, fill, (width-s.Len())/2)
}

// pad places s at offset left inside a buffer of width bytes
func (s String) pad(width int, fill byte, left int) String {
	data := s.data()
	if len(data) >= width {
		return s
	}

	result := make([]byte, width+1)
	for i := 0; i < left; i++ {
		result[i] = fill
	}
	copy(result[left:], data)
	for i := left + len(data); i < width; i++ {
		result[i] = fill
	}
	return String{buf: slicex.Adopt(result)}
}
