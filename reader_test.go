package javaobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReads(t *testing.T) {
	r := newReader([]byte{
		0x01,                   // byte
		0xff,                   // int8 -1
		0x12, 0x34,             // uint16
		0xff, 0xfe,             // int16 -2
		0x00, 0x00, 0x00, 0x2a, // int32 42
		0x40, 0x49, 0x0f, 0xdb, // float32 ~pi
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // int64 -1
		0x00, 0x03, 'f', 'o', 'o', // UTF string
		0xaa, 0xbb, // raw
	})

	assert.True(t, r.more())
	assert.Equal(t, byte(0x01), r.peek())
	assert.Equal(t, byte(0x01), r.readByte())
	assert.Equal(t, int8(-1), r.readInt8())
	assert.Equal(t, uint16(0x1234), r.readUint16())
	assert.Equal(t, int16(-2), r.readInt16())
	assert.Equal(t, int32(42), r.readInt32())
	assert.InDelta(t, 3.14159, float64(r.readFloat32()), 1e-5)
	assert.Equal(t, int64(-1), r.readInt64())
	assert.Equal(t, "foo", r.readUTF())
	assert.Equal(t, 2, r.remaining())
	assert.Equal(t, []byte{0xaa, 0xbb}, r.readN(2))
	assert.False(t, r.more())
}

func TestReaderCopiesBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	r := newReader(src)
	out := r.readN(3)
	src[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, out)
}

func TestReaderPastEndPanics(t *testing.T) {
	require.PanicsWithValue(t, ErrTruncated, func() {
		newReader([]byte{0x00}).readUint16()
	})
	require.PanicsWithValue(t, ErrTruncated, func() {
		newReader(nil).peek()
	})
	require.PanicsWithValue(t, ErrTruncated, func() {
		r := newReader([]byte{0x00, 0x05, 'a'})
		r.readUTF() // length says 5, only 1 present
	})
}
