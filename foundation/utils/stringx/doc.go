// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides an immutable, zero-terminated byte
//              string with Python-style search, slicing and transformation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Rewritten around the String type

// Package stringx provides a byte string type for the bstr foundation.
//
// Package: stringx
// Title: Byte Strings for bstr Foundation
// Description: String owns a heap buffer of Len()+1 bytes whose last byte is
//              zero, so the content can be handed to C-style consumers without
//              copying. All operations work on bytes; UTF-8 is only decoded by
//              Ord, Chr and CodePoints.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Overview
//
// A String never changes its buffer after construction. Append installs a new
// buffer of exactly Len()+other.Len()+1 bytes, so copies made by plain
// assignment keep their old content. Clone copies the buffer, Take moves it
// and leaves the source empty. The zero value is the empty String.
//
// View borrows the bytes of a String without copying. A view is stale once its
// owner is appended to or taken from; Valid reports this.
//
// Indices
//
// Negative indices count from the end. Slicing clamps out-of-range bounds
// and accepts Open for an omitted bound:
//
//	s := stringx.New("hello")
//	s.Slice(1, 3)                         // "el"
//	s.SliceStep(stringx.Open, stringx.Open, -1) // "olleh", nil
//	s.Find(stringx.New("l"), -2)          // 3
//
// Search functions return -1 when nothing is found. Counting an empty
// substring yields Len()+1, like Python's str.count.
//
// Building
//
// Builder collects fragments in a pooled buffer:
//
//	var b stringx.Builder
//	b.WriteString("x=")
//	b.WriteInt(42)
//	s := b.Build() // "x=42"
//
// Concat does the same for a list of mixed arguments:
//
//	stringx.Concat("pi ~ ", 3.14, ", ok=", true) // "pi ~ 3.14, ok=true"
//
// Errors
//
// Recoverable failures are *mdwerror.Error values with codes such as
// STRINGX_EMPTY_DELIMITER or STRINGX_INDEX_OUT_OF_RANGE. Contract violations
// (repeating past the address space, building twice) panic.
package stringx
