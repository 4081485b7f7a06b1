// File: utf8x.go
// Title: Single Code Point UTF-8 Codec
// Description: Ord decodes exactly one UTF-8 encoded character into its code
//              point, Chr encodes a code point into a zero-terminated byte
//              buffer. Both report violations as errors instead of asserting.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Reject sequences above MaxCodePoint

package utf8x

import (
	"math/bits"

	mdwerror "github.com/msto63/bstr/foundation/core/error"
	"github.com/msto63/bstr/foundation/core/errors"
)

// MaxCodePoint is the largest value Chr accepts
const MaxCodePoint = 0x10FFFF

// Sequence length thresholds and lead byte markers indexed by byte count
var (
	lastOfLen  = [5]uint32{0, 0x7F, 0x7FF, 0xFFFF, MaxCodePoint}
	leadMarker = [5]byte{0, 0x00, 0xC0, 0xE0, 0xF0}
)

// SequenceLen returns the byte length announced by a lead byte: 1 for ASCII,
// 2 to 4 for a multi-byte lead and 0 for a continuation byte or an invalid
// lead (0xF8 and above).
func SequenceLen(lead byte) int {
	if lead < 0x80 {
		return 1
	}
	n := bits.LeadingZeros8(^lead)
	if n < 2 || n > 4 {
		return 0
	}
	return n
}

// RuneLen returns the number of bytes Chr writes for c, without the
// terminator, or -1 if c is above MaxCodePoint.
func RuneLen(c uint32) int {
	for n := 1; n <= 4; n++ {
		if c <= lastOfLen[n] {
			return n
		}
	}
	return -1
}

// Ord returns the code point of s, which must hold exactly one UTF-8
// encoded character. Overlong forms and surrogates are decoded as written;
// sequences that decode above MaxCodePoint are malformed.
func Ord[T ~string | ~[]byte](s T) (uint32, error) {
	if len(s) == 0 {
		return 0, errors.MalformedSequence("ord", []byte(s), "empty input")
	}

	b0 := s[0]
	if b0 < 0x80 {
		if len(s) != 1 {
			return 0, errors.MalformedSequence("ord", []byte(s), "more than one character")
		}
		return uint32(b0), nil
	}

	numBytes := SequenceLen(b0)
	switch {
	case numBytes == 0:
		return 0, errors.MalformedSequence("ord", []byte(s), "invalid lead byte")
	case len(s) != numBytes:
		return 0, errors.MalformedSequence("ord", []byte(s), "length does not match the lead byte")
	}

	result := uint32(b0 & (0xFF >> (numBytes + 1)))
	for i := 1; i < numBytes; i++ {
		if s[i]&0xC0 != 0x80 {
			return 0, errors.MalformedSequence("ord", []byte(s), "malformed continuation byte")
		}
		result = result<<6 | uint32(s[i]&0x3F)
	}
	if result > MaxCodePoint {
		return 0, errors.MalformedSequence("ord", []byte(s), "code point above 0x10FFFF")
	}
	return result, nil
}

// Decode returns the first code point of b and its encoded length
func Decode(b []byte) (uint32, int, error) {
	if len(b) == 0 {
		return 0, 0, errors.MalformedSequence("decode", b, "empty input")
	}
	n := SequenceLen(b[0])
	if n == 0 {
		return 0, 0, errors.MalformedSequence("decode", b[:1], "invalid lead byte")
	}
	if n > len(b) {
		return 0, 0, errors.MalformedSequence("decode", b, "truncated sequence")
	}
	c, err := Ord(b[:n])
	if err != nil {
		return 0, 0, mdwerror.Wrap(err, "decode")
	}
	return c, n, nil
}

// Chr encodes c as UTF-8. The returned buffer is terminated by a zero byte;
// the character itself is result[:len(result)-1].
func Chr(c uint32) ([]byte, error) {
	n := RuneLen(c)
	if n < 0 {
		return nil, errors.InvalidCodePoint("chr", c)
	}
	buf := make([]byte, 0, n+1)
	buf = appendEncoded(buf, c, n)
	return append(buf, 0), nil
}

// AppendChr appends the UTF-8 encoding of c to dst, without a terminator
func AppendChr(dst []byte, c uint32) ([]byte, error) {
	n := RuneLen(c)
	if n < 0 {
		return dst, errors.InvalidCodePoint("append_chr", c)
	}
	return appendEncoded(dst, c, n), nil
}

func appendEncoded(dst []byte, c uint32, n int) []byte {
	if n == 1 {
		return append(dst, byte(c))
	}
	shift := 6 * (n - 1)
	dst = append(dst, byte(c>>shift)&(0xFF>>(n+1))|leadMarker[n])
	for shift > 0 {
		shift -= 6
		dst = append(dst, byte(c>>shift)&0x3F|0x80)
	}
	return dst
}
