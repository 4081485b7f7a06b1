// File: search.go
// Title: Substring Search
// Description: Find, RFind, Count and the prefix and suffix tests. Offsets are
//              byte offsets; a negative start counts from the end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import "bytes"

// searchStart resolves a start offset; ok is false when start lies past the end
func searchStart(start, length int) (int, bool) {
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	return start, start <= length
}

// Find returns the offset of the first occurrence of sub at or after start,
// or -1. An empty sub is found at start.
func (s String) Find(sub String, start int) int {
	data := s.data()
	start, ok := searchStart(start, len(data))
	if !ok {
		return -1
	}
	idx := bytes.Index(data[start:], sub.data())
	if idx < 0 {
		return -1
	}
	return start + idx
}

// RFind returns the offset of the last occurrence of sub at or after start,
// or -1. An empty sub is found at Len().
func (s String) RFind(sub String, start int) int {
	data := s.data()
	start, ok := searchStart(start, len(data))
	if !ok {
		return -1
	}
	idx := bytes.LastIndex(data[start:], sub.data())
	if idx < 0 {
		return -1
	}
	return start + idx
}

// Contains reports whether sub occurs in s
func (s String) Contains(sub String) bool {
	return s.Find(sub, 0) >= 0
}

// Count returns the number of non-overlapping occurrences of sub. An empty
// sub matches Len()+1 times.
func (s String) Count(sub String) int {
	data, pattern := s.data(), sub.data()
	if len(pattern) == 0 {
		return len(data) + 1
	}
	count := 0
	for pos := 0; ; {
		idx := bytes.Index(data[pos:], pattern)
		if idx < 0 {
			return count
		}
		count++
		pos += idx + len(pattern)
	}
}

// StartsWith reports whether s begins with prefix
func (s String) StartsWith(prefix String) bool {
	return bytes.HasPrefix(s.data(), prefix.data())
}

// EndsWith reports whether s ends with suffix
func (s String) EndsWith(suffix String) bool {
	return bytes.HasSuffix(s.data(), suffix.data())
}

// StartsWithIn reports whether s[start:end] begins with prefix. Both bounds
// follow slice rules; end may be Open.
func (s String) StartsWithIn(prefix String, start, end int) bool {
	window, ok := s.window(start, end)
	return ok && bytes.HasPrefix(window, prefix.data())
}

// EndsWithIn reports whether s[start:end] ends with suffix. Both bounds
// follow slice rules; end may be Open.
func (s String) EndsWithIn(suffix String, start, end int) bool {
	window, ok := s.window(start, end)
	return ok && bytes.HasSuffix(window, suffix.data())
}

// window returns data[start:end] after index adjustment, or false when start
// lies beyond end.
func (s String) window(start, end int) ([]byte, bool) {
	data := s.data()
	length := len(data)
	if end == Open || end > length {
		end = length
	} else if end < 0 {
		end += length
		if end < 0 {
			end = 0
		}
	}
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	if start > end {
		return nil, false
	}
	return data[start:end], true
}
