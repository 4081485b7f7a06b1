// File: builder_test.go
// Title: Unit Tests for Builder and Concat
// Description: Fragment rendering, single-use semantics and pooled buffers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package stringx

import (
	"errors"
	"testing"
	"time"

	mdwerror "github.com/msto63/bstr/foundation/core/error"
)

func TestBuilder(t *testing.T) {
	var b Builder
	if _, err := b.WriteString("x="); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteInt(-42); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteChr(0x20AC); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteFloat(1.5); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteByte('!'); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteStr(New(" end")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Write([]byte{'.'}); err != nil {
		t.Fatal(err)
	}

	const want = "x=-42€1.5! end."
	if b.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(want))
	}
	s := b.Build()
	if s.String() != want {
		t.Errorf("Build() = %q, want %q", s.String(), want)
	}
	checkTerminated(t, s)
	if b.Len() != 0 {
		t.Errorf("Len() after Build = %d", b.Len())
	}
}

func TestBuilderInvalidChr(t *testing.T) {
	var b Builder
	if err := b.WriteChr(0x110000); !mdwerror.HasCode(err, mdwerror.CodeInvalidCodePoint) {
		t.Errorf("WriteChr error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("failed WriteChr wrote %d bytes", b.Len())
	}
}

func TestBuilderSingleUse(t *testing.T) {
	var b Builder
	if s := b.Build(); !s.IsEmpty() {
		t.Errorf("empty Build() = %q", s.String())
	}

	writes := map[string]func() error{
		"WriteString": func() error { _, err := b.WriteString("x"); return err },
		"Write":       func() error { _, err := b.Write([]byte("x")); return err },
		"WriteByte":   func() error { return b.WriteByte('x') },
		"WriteStr":    func() error { return b.WriteStr(New("x")) },
		"WriteChr":    func() error { return b.WriteChr('x') },
		"WriteInt":    func() error { return b.WriteInt(1) },
		"WriteFloat":  func() error { return b.WriteFloat(1) },
	}
	for name, write := range writes {
		if err := write(); !mdwerror.HasCode(err, mdwerror.CodeBuilderInvalidated) {
			t.Errorf("%s after Build: error = %v", name, err)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("second Build did not panic")
		}
	}()
	b.Build()
}

type celsius float64

func (c celsius) String() string { return "warm" }

func TestConcat(t *testing.T) {
	s := New("b")
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"nothing", nil, ""},
		{"text", []any{"a", s, &s, []byte("c"), byte('d')}, "abbcd"},
		{"ints", []any{1, int8(-2), int16(3), int32(4), int64(-5)}, "1-234-5"},
		{"uints", []any{uint(6), uint16(7), uint32(8), uint64(9)}, "6789"},
		{"floats", []any{2.5, float32(0.25)}, "2.50.25"},
		{"bool", []any{true, false}, "truefalse"},
		{"error", []any{errors.New("boom")}, "boom"},
		{"stringer", []any{celsius(30)}, "warm"},
		{"fallback", []any{[]int{1, 2}}, "[1 2]"},
		{"duration", []any{time.Second}, "1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(tt.args...)
			if got.String() != tt.want {
				t.Errorf("Concat = %q, want %q", got.String(), tt.want)
			}
			checkTerminated(t, got)
		})
	}

	v := s.UnsafeView()
	if got := Concat("<", v, ">").String(); got != "<b>" {
		t.Errorf("Concat with view = %q", got)
	}
}

func BenchmarkBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var sb Builder
		_, _ = sb.WriteString("value=")
		_ = sb.WriteInt(int64(i))
		_ = sb.Build()
	}
}
