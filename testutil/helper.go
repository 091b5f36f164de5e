// Package testutil builds big-endian tag payloads for tests. It is a
// test-only convenience, not a public encoder.
package testutil

import (
	"encoding/binary"
	"math"
)

// Builder accumulates a big-endian byte payload through chained calls.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty payload builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Bytes returns the accumulated payload.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Raw appends literal bytes.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// U8 appends one byte.
func (b *Builder) U8(v byte) *Builder {
	b.buf = append(b.buf, v)
	return b
}

// I8 appends an 8-bit signed integer.
func (b *Builder) I8(v int8) *Builder {
	return b.U8(byte(v))
}

// I16 appends a big-endian 16-bit signed integer.
func (b *Builder) I16(v int16) *Builder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(v))
	return b
}

// I32 appends a big-endian 32-bit signed integer.
func (b *Builder) I32(v int32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(v))
	return b
}

// I64 appends a big-endian 64-bit signed integer.
func (b *Builder) I64(v int64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, uint64(v))
	return b
}

// F32 appends the IEEE-754 bit pattern of a 32-bit float.
func (b *Builder) F32(v float32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, math.Float32bits(v))
	return b
}

// F64 appends the IEEE-754 bit pattern of a 64-bit float.
func (b *Builder) F64(v float64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// Str appends a 16-bit length prefix followed by the raw string bytes.
func (b *Builder) Str(s string) *Builder {
	b.I16(int16(len(s)))
	b.buf = append(b.buf, s...)
	return b
}

// Named appends a kind byte and a name string, the header of a compound
// entry. The caller appends the payload.
func (b *Builder) Named(kind byte, name string) *Builder {
	return b.U8(kind).Str(name)
}

// End appends the compound terminator byte.
func (b *Builder) End() *Builder {
	return b.U8(0)
}

// Root starts a document: a compound kind byte followed by the root name.
// The builder's remaining content forms the root compound's body, which the
// caller must terminate with End.
func Root(name string) *Builder {
	return NewBuilder().U8(10).Str(name)
}
