// File: slice.go
// Title: Slicing with Steps
// Description: Python-style slicing: negative indices count from the end, bounds
//              are clamped, a negative step walks backwards. Open marks an
//              omitted bound.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Element count without overflow for huge steps

package stringx

import (
	"math"

	"github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/slicex"
)

// Open marks an omitted slice bound, like an empty position in s[start:end:step]
const Open = math.MinInt

// Slice returns the bytes in [start, end) with step 1
func (s String) Slice(start, end int) String {
	sub, _ := s.SliceStep(start, end, 1)
	return sub
}

// SliceStep returns every step-th byte from start towards end. A zero step is
// an INVALID_INPUT error.
func (s String) SliceStep(start, end, step int) (String, error) {
	if step == 0 {
		return String{}, errors.InvalidInput(errors.ModuleStringx, "slice", step, "non-zero step")
	}

	data := s.data()
	start, end, n := sliceIndices(len(data), start, end, step)
	if n == 0 {
		return String{}, nil
	}

	if step == 1 {
		return terminated(data[start:end]), nil
	}
	buf := make([]byte, n+1)
	buf[0] = data[start]
	for i, pos := 1, start; i < n; i++ {
		pos += step
		buf[i] = data[pos]
	}
	return String{buf: slicex.Adopt(buf)}, nil
}

// sliceIndices normalizes start and end for a sequence of length and returns
// the number of selected elements.
func sliceIndices(length, start, end, step int) (int, int, int) {
	if step > 0 {
		start = clampIndex(start, length, 0, 0, length)
		end = clampIndex(end, length, length, 0, length)
		if end <= start {
			return start, end, 0
		}
		return start, end, stepCount(end-start, step)
	}

	start = clampIndex(start, length, length-1, -1, length-1)
	end = clampIndex(end, length, -1, -1, length-1)
	if start <= end {
		return start, end, 0
	}
	return start, end, stepCount(start-end, step)
}

// stepCount returns how many positions a stride of |step| visits in a span of
// width > 0. The division is unsigned so that MinInt has a magnitude.
func stepCount(width, step int) int {
	stride := uint(step)
	if step < 0 {
		stride = -stride
	}
	return int(uint(width-1)/stride) + 1
}

// clampIndex resolves an index against length: Open yields def, negative
// values count from the end, the result is clamped to [lo, hi].
func clampIndex(i, length, def, lo, hi int) int {
	if i == Open {
		return def
	}
	if i < 0 {
		i += length
	}
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
