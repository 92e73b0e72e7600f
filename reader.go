package javaobj

import (
	"encoding/binary"
	"math"
)

// reader is a cursor over one immutable input buffer. Reads past the end
// of the buffer panic with ErrTruncated; Unmarshal recovers that at the
// top of the call chain, so the decode path itself stays free of bounds
// checks.
type reader struct {
	b   []byte
	pos int
}

func newReader(b []byte) *reader { return &reader{b: b} }

func (r *reader) need(n int) {
	if r.pos+n > len(r.b) {
		panic(ErrTruncated)
	}
}

// more reports whether any input remains.
func (r *reader) more() bool { return r.pos < len(r.b) }

// remaining returns the number of unread bytes.
func (r *reader) remaining() int { return len(r.b) - r.pos }

// peek returns the next byte without consuming it.
func (r *reader) peek() byte {
	r.need(1)
	return r.b[r.pos]
}

func (r *reader) readByte() byte {
	r.need(1)
	c := r.b[r.pos]
	r.pos++
	return c
}

// readN returns the next n bytes as a copy, so decoded values never alias
// the caller's buffer.
func (r *reader) readN(n int) []byte {
	r.need(n)
	out := make([]byte, n)
	copy(out, r.b[r.pos:r.pos+n])
	r.pos += n
	return out
}

func (r *reader) readInt8() int8 { return int8(r.readByte()) }

func (r *reader) readUint16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) readInt16() int16 { return int16(r.readUint16()) }

func (r *reader) readUint32() uint32 {
	r.need(4)
	v := binary.BigEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) readInt32() int32 { return int32(r.readUint32()) }

func (r *reader) readUint64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.pos:])
	r.pos += 8
	return v
}

func (r *reader) readInt64() int64 { return int64(r.readUint64()) }

func (r *reader) readFloat32() float32 { return math.Float32frombits(r.readUint32()) }

func (r *reader) readFloat64() float64 { return math.Float64frombits(r.readUint64()) }

// readUTF reads a 2-byte-length-prefixed UTF-8 string.
func (r *reader) readUTF() string {
	n := int(r.readUint16())
	r.need(n)
	s := string(r.b[r.pos : r.pos+n])
	r.pos += n
	return s
}
