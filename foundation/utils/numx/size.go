// File: size.go
// Title: Numeric Size Estimation
// Description: Exact decimal digit counts and the buffer sizes needed to render
//              integers and floats, used to pre-size formatting buffers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package numx

import "math/bits"

// FloatSize is the worst-case rendered length of a float64, terminator included
const FloatSize = 64

const maxUint32 = 1<<32 - 1

// digitTable[k] adds the digit count into the upper 32 bits of n for every n
// whose highest set bit is k.
var digitTable = [32]uint64{
	4294967296, 8589934582, 8589934582, 8589934582, 12884901788,
	12884901788, 12884901788, 17179868184, 17179868184, 17179868184,
	21474826480, 21474826480, 21474826480, 21474826480, 25769703776,
	25769703776, 25769703776, 30063771072, 30063771072, 30063771072,
	34349738368, 34349738368, 34349738368, 34349738368, 38554705664,
	38554705664, 38554705664, 41949672960, 41949672960, 41949672960,
	42949672960, 42949672960,
}

// DigitCount32 returns the number of decimal digits of n; zero has one digit
func DigitCount32(n uint32) int {
	k := 31 - bits.LeadingZeros32(n|1)
	return int((uint64(n) + digitTable[k]) >> 32)
}

// DigitCount64 returns the number of decimal digits of n; zero has one digit
func DigitCount64(n uint64) int {
	if n <= maxUint32 {
		return DigitCount32(uint32(n))
	}
	result := 1
	for {
		switch {
		case n < 10:
			return result
		case n < 100:
			return result + 1
		case n < 1000:
			return result + 2
		case n < 10000:
			return result + 3
		}
		n /= 10000
		result += 4
	}
}

// IntSize returns the bytes needed to render n in decimal: an optional sign,
// the digits and a zero terminator.
func IntSize(n int64) int {
	sign := 0
	u := uint64(n)
	if n < 0 {
		sign = 1
		u = -u
	}
	return sign + DigitCount64(u) + 1
}
