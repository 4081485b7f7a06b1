// File: builder.go
// Title: Pooled String Builder
// Description: Builder composes a String from fragments in a pooled buffer and
//              hands out an exact-size String on Build. Concat renders mixed
//              arguments in one pass.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/numx"
	"github.com/msto63/bstr/foundation/utils/utf8x"
)

// Builder accumulates bytes for a single String. The zero value is ready to
// use. After Build every write fails with STRINGX_BUILDER_INVALIDATED.
type Builder struct {
	bb    *bytebufferpool.ByteBuffer
	built bool
}

func (b *Builder) buffer(op string) (*bytebufferpool.ByteBuffer, error) {
	if b.built {
		return nil, errors.BuilderInvalidated(op)
	}
	if b.bb == nil {
		b.bb = bytebufferpool.Get()
	}
	return b.bb, nil
}

// Write appends p. It implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	bb, err := b.buffer("write")
	if err != nil {
		return 0, err
	}
	return bb.Write(p)
}

// WriteString appends s. It implements io.StringWriter.
func (b *Builder) WriteString(s string) (int, error) {
	bb, err := b.buffer("write_string")
	if err != nil {
		return 0, err
	}
	return bb.WriteString(s)
}

// WriteByte appends c
func (b *Builder) WriteByte(c byte) error {
	bb, err := b.buffer("write_byte")
	if err != nil {
		return err
	}
	return bb.WriteByte(c)
}

// WriteStr appends the content of s
func (b *Builder) WriteStr(s String) error {
	bb, err := b.buffer("write_str")
	if err != nil {
		return err
	}
	bb.B = append(bb.B, s.data()...)
	return nil
}

// WriteChr appends the UTF-8 encoding of code point c
func (b *Builder) WriteChr(c uint32) error {
	bb, err := b.buffer("write_chr")
	if err != nil {
		return err
	}
	out, err := utf8x.AppendChr(bb.B, c)
	if err != nil {
		return err
	}
	bb.B = out
	return nil
}

// WriteInt appends the decimal form of n
func (b *Builder) WriteInt(n int64) error {
	bb, err := b.buffer("write_int")
	if err != nil {
		return err
	}
	bb.B = numx.AppendInt(bb.B, n)
	return nil
}

// WriteFloat appends the shortest decimal form of f that round-trips
func (b *Builder) WriteFloat(f float64) error {
	bb, err := b.buffer("write_float")
	if err != nil {
		return err
	}
	bb.B = strconv.AppendFloat(slices.Grow(bb.B, numx.FloatSize), f, 'g', -1, 64)
	return nil
}

// Len returns the number of bytes written so far
func (b *Builder) Len() int {
	if b.bb == nil {
		return 0
	}
	return b.bb.Len()
}

// Build returns the accumulated String and releases the buffer. Calling Build
// twice panics.
func (b *Builder) Build() String {
	if b.built {
		panic("stringx: Builder.Build called twice")
	}
	b.built = true
	if b.bb == nil {
		return String{}
	}

	s := terminated(b.bb.B)
	bytebufferpool.Put(b.bb)
	b.bb = nil
	return s
}

// Concat renders args in order into one String. Strings, views, Go strings,
// byte slices and single bytes are copied as text; numbers and bools use
// their decimal or literal form; anything else goes through fmt.
func Concat(args ...any) String {
	var b Builder
	for _, arg := range args {
		b.writeAny(arg)
	}
	return b.Build()
}

func (b *Builder) writeAny(arg any) {
	bb, err := b.buffer("concat")
	if err != nil {
		return
	}

	switch v := arg.(type) {
	case String:
		bb.B = append(bb.B, v.data()...)
	case *String:
		bb.B = append(bb.B, v.data()...)
	case View:
		bb.B = append(bb.B, v.data...)
	case string:
		bb.B = append(bb.B, v...)
	case []byte:
		bb.B = append(bb.B, v...)
	case byte:
		bb.B = append(bb.B, v)
	case int:
		bb.B = numx.AppendInt(bb.B, int64(v))
	case int8:
		bb.B = numx.AppendInt(bb.B, int64(v))
	case int16:
		bb.B = numx.AppendInt(bb.B, int64(v))
	case int32:
		bb.B = numx.AppendInt(bb.B, int64(v))
	case int64:
		bb.B = numx.AppendInt(bb.B, v)
	case uint:
		bb.B = strconv.AppendUint(bb.B, uint64(v), 10)
	case uint16:
		bb.B = strconv.AppendUint(bb.B, uint64(v), 10)
	case uint32:
		bb.B = strconv.AppendUint(bb.B, uint64(v), 10)
	case uint64:
		bb.B = strconv.AppendUint(bb.B, v, 10)
	case float32:
		bb.B = strconv.AppendFloat(bb.B, float64(v), 'g', -1, 32)
	case float64:
		bb.B = strconv.AppendFloat(bb.B, v, 'g', -1, 64)
	case bool:
		bb.B = strconv.AppendBool(bb.B, v)
	case error:
		bb.B = append(bb.B, v.Error()...)
	case fmt.Stringer:
		bb.B = append(bb.B, v.String()...)
	default:
		bb.B = fmt.Appendf(bb.B, "%v", v)
	}
}
