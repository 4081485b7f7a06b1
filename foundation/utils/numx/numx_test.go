// File: numx_test.go
// Title: Unit Tests for Integer Parsing and Size Estimation
// Description: Literal syntax, base detection, overflow at the last digit,
//              round trips through FormatInt and digit counts against strconv.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package numx

import (
	"math"
	"strconv"
	"strings"
	"testing"

	mdwerror "github.com/msto63/bstr/foundation/core/error"
)

func TestAtol(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		base     int
		expected int
	}{
		{"decimal", "375", 10, 375},
		{"signed", "-42", 10, -42},
		{"plus", "+7", 10, 7},
		{"whitespace", "  \t123 \n", 10, 123},
		{"underscores", "1_000", 10, 1000},
		{"binary", "101", 2, 5},
		{"octal", "777", 8, 511},
		{"hex mixed case", "fF", 16, 255},
		{"base 36", "Zz", 36, 36*35 + 35},
		{"explicit hex prefix", "0x1F", 16, 31},
		{"explicit bin prefix", "0B11", 2, 3},
		{"explicit oct prefix", "-0o17", 8, -15},
		{"prefix underscore", "0x_1F", 16, 31},
		{"leading zeros explicit base", "007", 10, 7},
		{"auto hex", "0x1F", 0, 31},
		{"auto bin", "0b1_01", 0, 5},
		{"auto oct", "0O17", 0, 15},
		{"auto decimal", "19", 0, 19},
		{"auto single digit", "7", 0, 7},
		{"auto zero", "0", 0, 0},
		{"auto zeros", "0_0_0", 0, 0},
		{"auto negative hex", "-0xff", 0, -255},
		{"auto prefix underscore", "0x_f", 0, 15},
		{"auto zero trailing space", "00  ", 0, 0},
		{"max", strconv.Itoa(math.MaxInt), 10, math.MaxInt},
		{"min", strconv.Itoa(math.MinInt), 10, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Atol(tt.input, tt.base)
			if err != nil {
				t.Fatalf("Atol(%q, %d) error: %v", tt.input, tt.base, err)
			}
			if got != tt.expected {
				t.Errorf("Atol(%q, %d) = %d; want %d", tt.input, tt.base, got, tt.expected)
			}
		})
	}
}

func TestAtolErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		code  mdwerror.Code
	}{
		{"base too small", "1", 1, mdwerror.CodeInvalidBase},
		{"base too large", "1", 37, mdwerror.CodeInvalidBase},
		{"negative base", "1", -2, mdwerror.CodeInvalidBase},
		{"empty", "", 10, mdwerror.CodeEmptyInput},
		{"blank", "   ", 10, mdwerror.CodeInvalidLiteral},
		{"sign only", "-", 10, mdwerror.CodeInvalidLiteral},
		{"double underscore", "1__000", 10, mdwerror.CodeInvalidLiteral},
		{"leading underscore", "_1", 10, mdwerror.CodeInvalidLiteral},
		{"trailing underscore", "1_", 10, mdwerror.CodeInvalidLiteral},
		{"underscore before space", "1_ ", 10, mdwerror.CodeInvalidLiteral},
		{"digit out of base", "12", 2, mdwerror.CodeInvalidLiteral},
		{"letter in decimal", "12a", 10, mdwerror.CodeInvalidLiteral},
		{"inner space", "1 2", 10, mdwerror.CodeInvalidLiteral},
		{"space after sign", "- 5", 10, mdwerror.CodeInvalidLiteral},
		{"double sign", "--5", 10, mdwerror.CodeInvalidLiteral},
		{"prefix only", "0x", 16, mdwerror.CodeInvalidLiteral},
		{"wrong prefix", "0x10", 10, mdwerror.CodeInvalidLiteral},
		{"double prefix underscore", "0x__1", 16, mdwerror.CodeInvalidLiteral},
		{"auto leading zero", "019", 0, mdwerror.CodeInvalidLiteral},
		{"auto double underscore zeros", "0__0", 0, mdwerror.CodeInvalidLiteral},
		{"auto non digit", "z", 0, mdwerror.CodeInvalidLiteral},
		{"auto letter start", "abc", 0, mdwerror.CodeInvalidLiteral},
		{"auto prefix only", "0b", 0, mdwerror.CodeInvalidLiteral},
		{"auto bad binary digit", "0b12", 0, mdwerror.CodeInvalidLiteral},
		{"auto zero then digit", "00 1", 0, mdwerror.CodeInvalidLiteral},
		{"non ascii", "１", 10, mdwerror.CodeInvalidLiteral},
		{"overflow append zero", strconv.Itoa(math.MaxInt) + "0", 10, mdwerror.CodeIntegerOverflow},
		{"overflow min minus one", "-9223372036854775809", 10, mdwerror.CodeIntegerOverflow},
		{"overflow hex", "0x8000000000000000", 0, mdwerror.CodeIntegerOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Atol(tt.input, tt.base)
			if err == nil {
				t.Fatalf("Atol(%q, %d) = %d; want error %s", tt.input, tt.base, got, tt.code)
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Atol(%q, %d) error = %v; want %s", tt.input, tt.base, err, tt.code)
			}
		})
	}
}

func TestAtolOverflowAtLastDigit(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("limits below assume a 64-bit int")
	}
	// 9223372036854775807 is MaxInt; only the final digit differs
	if _, err := Atol("9223372036854775808", 10); !mdwerror.HasCode(err, mdwerror.CodeIntegerOverflow) {
		t.Errorf("MaxInt+1 error = %v", err)
	}
	if n, err := Atol("-9223372036854775808", 10); err != nil || n != math.MinInt {
		t.Errorf("MinInt = %d, %v", n, err)
	}
	if n, err := Atol("7fffffffffffffff", 16); err != nil || n != math.MaxInt {
		t.Errorf("hex MaxInt = %d, %v", n, err)
	}
	if _, err := Atol("1"+strings.Repeat("0", 63), 2); !mdwerror.HasCode(err, mdwerror.CodeIntegerOverflow) {
		t.Errorf("2^63 binary error = %v", err)
	}
	if n, err := Atol("-1"+strings.Repeat("0", 63), 2); err != nil || n != math.MinInt {
		t.Errorf("-2^63 binary = %d, %v", n, err)
	}
}

func TestAtolErrorMessage(t *testing.T) {
	_, err := Atol("1__0", 10)
	want := `cannot convert "1__0" to integer with base 10`
	if err == nil || err.Error() != want {
		t.Errorf("Atol error = %v; want %q", err, want)
	}
	_, err = Atol(strconv.Itoa(math.MaxInt)+"0", 10)
	if err == nil || !strings.HasSuffix(err.Error(), "integer overflow") {
		t.Errorf("overflow error = %v", err)
	}
}

func TestAtolBytes(t *testing.T) {
	got, err := Atol([]byte("0o_7"), 0)
	if err != nil || got != 7 {
		t.Errorf("Atol([]byte) = %d, %v", got, err)
	}
	got, err = Atoi([]byte(" 12 "))
	if err != nil || got != 12 {
		t.Errorf("Atoi([]byte) = %d, %v", got, err)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int{0, 1, -1, 7, 35, 36, -36, 255, 1000, -99999, 1 << 20, math.MaxInt32, math.MinInt32, math.MaxInt, math.MinInt}
	for _, base := range []int{2, 8, 10, 16, 36} {
		for _, n := range values {
			text, err := FormatInt(n, base)
			if err != nil {
				t.Fatalf("FormatInt(%d, %d) error: %v", n, base, err)
			}
			got, err := Atol(text, base)
			if err != nil {
				t.Errorf("Atol(%q, %d) error: %v", text, base, err)
				continue
			}
			if got != n {
				t.Errorf("Atol(FormatInt(%d, %d)) = %d", n, base, got)
			}
		}
	}
}

func TestFormatIntInvalidBase(t *testing.T) {
	if _, err := FormatInt(5, 1); !mdwerror.HasCode(err, mdwerror.CodeInvalidBase) {
		t.Errorf("FormatInt(5, 1) error = %v", err)
	}
}

func TestAppendInt(t *testing.T) {
	got := AppendInt([]byte("n="), -1234)
	if string(got) != "n=-1234" {
		t.Errorf("AppendInt = %q", got)
	}
}

func TestDigitCount(t *testing.T) {
	var values []uint64
	for p := uint64(1); p < math.MaxUint64/10; p *= 10 {
		values = append(values, p-1, p, p+1)
	}
	values = append(values, math.MaxUint32, math.MaxUint32+1, math.MaxUint64)

	for _, v := range values {
		want := len(strconv.FormatUint(v, 10))
		if got := DigitCount64(v); got != want {
			t.Errorf("DigitCount64(%d) = %d; want %d", v, got, want)
		}
		if v <= math.MaxUint32 {
			if got := DigitCount32(uint32(v)); got != want {
				t.Errorf("DigitCount32(%d) = %d; want %d", v, got, want)
			}
		}
	}
}

func TestIntSize(t *testing.T) {
	tests := []struct {
		input    int64
		expected int
	}{
		{0, 2},
		{9, 2},
		{-9, 3},
		{10, 3},
		{-100, 5},
		{math.MaxInt64, 20},
		{math.MinInt64, 21},
	}
	for _, tt := range tests {
		if got := IntSize(tt.input); got != tt.expected {
			t.Errorf("IntSize(%d) = %d; want %d", tt.input, got, tt.expected)
		}
		if got := len(strconv.FormatInt(tt.input, 10)) + 1; got != tt.expected {
			t.Errorf("table entry for %d is wrong: rendered size %d", tt.input, got)
		}
	}
}

func BenchmarkAtol(b *testing.B) {
	inputs := []string{"12345", "-0x7fff_ffff", "0b1010", "  987654321  "}
	for i := 0; i < b.N; i++ {
		_, _ = Atol(inputs[i%len(inputs)], 0)
	}
}

func BenchmarkDigitCount32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DigitCount32(uint32(i))
	}
}
