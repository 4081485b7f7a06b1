// File: transform.go
// Title: Splitting, Replacing and Trimming
// Description: Byte-level transformations that return new Strings. Character
//              classes are ASCII only.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"bytes"

	"github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/charx"
	"github.com/msto63/bstr/foundation/utils/slicex"
)

// Split returns the pieces of s between occurrences of sep, including empty
// leading and trailing pieces. An empty sep is an error.
func (s String) Split(sep String) ([]String, error) {
	return s.SplitN(sep, -1)
}

// SplitN is Split with at most maxSplit splits; a negative maxSplit means no limit
func (s String) SplitN(sep String, maxSplit int) ([]String, error) {
	delim := sep.data()
	if len(delim) == 0 {
		return nil, errors.EmptyDelimiter("split")
	}

	data := s.data()
	var out []String
	lhs := 0
	for maxSplit < 0 || len(out) < maxSplit {
		rhs := bytes.Index(data[lhs:], delim)
		if rhs < 0 {
			break
		}
		out = append(out, terminated(data[lhs:lhs+rhs]))
		lhs += rhs + len(delim)
	}
	return append(out, terminated(data[lhs:])), nil
}

// Fields splits s around runs of ASCII whitespace and drops empty pieces
func (s String) Fields() []String {
	data := s.data()
	var out []String
	for i := 0; i < len(data); {
		for i < len(data) && charx.IsSpace(data[i]) {
			i++
		}
		start := i
		for i < len(data) && !charx.IsSpace(data[i]) {
			i++
		}
		if i > start {
			out = append(out, terminated(data[start:i]))
		}
	}
	return out
}

// SplitLines splits s at "\n", "\r\n" and "\r". With keepEnds the line
// breaks stay attached to their lines.
func (s String) SplitLines(keepEnds bool) []String {
	data := s.data()
	var out []String
	for i := 0; i < len(data); {
		j := i
		for j < len(data) && data[j] != '\n' && data[j] != '\r' {
			j++
		}
		eol := j
		if j < len(data) {
			if data[j] == '\r' && j+1 < len(data) && data[j+1] == '\n' {
				j += 2
			} else {
				j++
			}
		}
		if keepEnds {
			eol = j
		}
		out = append(out, terminated(data[i:eol]))
		i = j
	}
	return out
}

// Replace returns s with every non-overlapping occurrence of old replaced by
// repl. An empty old inserts repl before every byte: "ab" becomes "XaXb".
func (s String) Replace(old, repl String) String {
	data, from, to := s.data(), old.data(), repl.data()

	if len(from) == 0 {
		if len(data) == 0 {
			return String{}
		}
		buf := make([]byte, 0, len(data)*(len(to)+1)+1)
		for _, b := range data {
			buf = append(buf, to...)
			buf = append(buf, b)
		}
		return String{buf: slicex.Adopt(append(buf, 0))}
	}

	occurrences := s.Count(old)
	if occurrences == 0 {
		return s
	}

	buf := make([]byte, 0, len(data)+(len(to)-len(from))*occurrences+1)
	for pos := 0; ; {
		idx := bytes.Index(data[pos:], from)
		if idx < 0 {
			buf = append(buf, data[pos:]...)
			break
		}
		buf = append(buf, data[pos:pos+idx]...)
		buf = append(buf, to...)
		pos += idx + len(from)
	}
	return terminated(buf)
}

// Strip removes leading and trailing ASCII whitespace
func (s String) Strip() String {
	return s.strip(charx.Whitespace, true, true)
}

// LStrip removes leading ASCII whitespace
func (s String) LStrip() String {
	return s.strip(charx.Whitespace, true, false)
}

// RStrip removes trailing ASCII whitespace
func (s String) RStrip() String {
	return s.strip(charx.Whitespace, false, true)
}

// StripChars removes leading and trailing bytes contained in chars
func (s String) StripChars(chars string) String {
	return s.strip(charx.NewSet(chars), true, true)
}

// LStripChars removes leading bytes contained in chars
func (s String) LStripChars(chars string) String {
	return s.strip(charx.NewSet(chars), true, false)
}

// RStripChars removes trailing bytes contained in chars
func (s String) RStripChars(chars string) String {
	return s.strip(charx.NewSet(chars), false, true)
}

func (s String) strip(set charx.Set, left, right bool) String {
	data := s.data()
	start, end := 0, len(data)
	if left {
		for start < end && set.Contains(data[start]) {
			start++
		}
	}
	if right {
		for end > start && set.Contains(data[end-1]) {
			end--
		}
	}
	if start == 0 && end == len(data) {
		return s
	}
	return terminated(data[start:end])
}

// Lower maps 'A'..'Z' to 'a'..'z'
func (s String) Lower() String {
	return s.mapBytes(charx.ToLower)
}

// Upper maps 'a'..'z' to 'A'..'Z'
func (s String) Upper() String {
	return s.mapBytes(charx.ToUpper)
}

func (s String) mapBytes(fn func(byte) byte) String {
	out := s.CBytes()
	for i := 0; i < len(out)-1; i++ {
		out[i] = fn(out[i])
	}
	if len(out) == 1 {
		return String{}
	}
	return String{buf: slicex.Adopt(out)}
}

// RemovePrefix returns s without prefix, or s unchanged when it does not start with prefix
func (s String) RemovePrefix(prefix String) String {
	if !s.StartsWith(prefix) || prefix.IsEmpty() {
		return s
	}
	return terminated(s.data()[prefix.Len():])
}

// RemoveSuffix returns s without suffix, or s unchanged when it does not end with suffix
func (s String) RemoveSuffix(suffix String) String {
	if !s.EndsWith(suffix) || suffix.IsEmpty() {
		return s
	}
	return terminated(s.data()[:s.Len()-suffix.Len()])
}

// Join returns the parts separated by s
func (s String) Join(parts ...String) String {
	if len(parts) == 0 {
		return String{}
	}
	sep := s.data()
	size := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		size += p.Len()
	}
	if size == 0 {
		return String{}
	}

	buf := make([]byte, 0, size+1)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = append(buf, p.data()...)
	}
	return String{buf: slicex.Adopt(append(buf, 0))}
}

// IsDigit reports whether s is non-empty and all bytes are ASCII digits
func (s String) IsDigit() bool {
	return s.all(charx.IsDigit)
}

// IsSpace reports whether s is non-empty and all bytes are ASCII whitespace
func (s String) IsSpace() bool {
	return s.all(charx.IsSpace)
}

// IsUpper reports whether s has at least one cased byte and no lowercase byte
func (s String) IsUpper() bool {
	return s.cased(charx.IsUpper, charx.IsLower)
}

// IsLower reports whether s has at least one cased byte and no uppercase byte
func (s String) IsLower() bool {
	return s.cased(charx.IsLower, charx.IsUpper)
}

func (s String) all(pred func(byte) bool) bool {
	data := s.data()
	if len(data) == 0 {
		return false
	}
	for _, b := range data {
		if !pred(b) {
			return false
		}
	}
	return true
}

func (s String) cased(want, reject func(byte) bool) bool {
	found := false
	for _, b := range s.data() {
		if reject(b) {
			return false
		}
		found = found || want(b)
	}
	return found
}
