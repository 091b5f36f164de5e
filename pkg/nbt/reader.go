package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader is a bounds-checked sequential big-endian cursor over an immutable
// byte buffer. Every read verifies that enough bytes remain before consuming
// anything, so a failed read never advances the offset.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) truncated(need int) error {
	return errAt(r.pos, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, r.remaining()))
}

func (r *reader) readU8() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.truncated(1)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readI8() (int8, error) {
	b, err := r.readU8()
	return int8(b), err
}

func (r *reader) readI16() (int16, error) {
	if r.remaining() < 2 {
		return 0, r.truncated(2)
	}
	v := int16(binary.BigEndian.Uint16(r.data[r.pos:]))
	r.pos += 2
	return v, nil
}

func (r *reader) readI32() (int32, error) {
	if r.remaining() < 4 {
		return 0, r.truncated(4)
	}
	v := int32(binary.BigEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

func (r *reader) readI64() (int64, error) {
	if r.remaining() < 8 {
		return 0, r.truncated(8)
	}
	v := int64(binary.BigEndian.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

func (r *reader) readF32() (float32, error) {
	v, err := r.readI32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

func (r *reader) readF64() (float64, error) {
	v, err := r.readI64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// readTagID reads one raw kind byte. Validity against the closed set of
// thirteen kinds is the caller's responsibility.
func (r *reader) readTagID() (TagID, error) {
	b, err := r.readU8()
	return TagID(b), err
}

// readString reads a 16-bit signed length followed by that many raw bytes.
// A negative length fails with ErrMalformedLength.
func (r *reader) readString() (string, error) {
	start := r.pos
	n, err := r.readI16()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errAt(start, fmt.Errorf("%w: string length %d", ErrMalformedLength, n))
	}
	if r.remaining() < int(n) {
		return "", r.truncated(int(n))
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}
