package javaobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassDescriptorReuse(t *testing.T) {
	// second object names the first one's descriptor by back-reference
	b := newStream().u8(tcObject).
		classDesc("com.example.P", scSerializable, []wireField{{code: typeInt, name: "x"}}).nullSuper().
		u32(1).
		u8(tcObject).u8(tcReference).u32(baseWireHandle + 0).
		u32(2).
		bytes()

	out, err := Unmarshal(b)
	require.NoError(t, err)
	require.Len(t, out, 2)

	first := out[0].(*Record)
	second := out[1].(*Record)
	v1, _ := first.Get("x")
	v2, _ := second.Get("x")
	assert.Equal(t, int32(1), v1)
	assert.Equal(t, int32(2), v2)
}

func TestClassDescriptorWrongKindReference(t *testing.T) {
	// back-reference resolves to a string record where a descriptor is
	// required
	b := newStream().
		u8(tcString).utf("not a descriptor").
		u8(tcObject).u8(tcReference).u32(baseWireHandle + 0).
		bytes()

	_, err := Unmarshal(b)
	var corrupt ErrCorrupt
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, errNotAClassDesc, corrupt.Err)
}

func TestProxyDescriptorUnsupported(t *testing.T) {
	b := newStream().u8(tcObject).u8(tcProxyClassDesc).bytes()
	_, err := Unmarshal(b)
	var unsupported ErrUnsupported
	require.ErrorAs(t, err, &unsupported)
}

func TestBadFieldTypeCode(t *testing.T) {
	b := newStream().u8(tcObject).
		u8(tcClassDesc).utf("com.example.Bad").u64(testSUID).
		u8(scSerializable).u16(1).
		u8('Q').utf("oops").
		bytes()

	_, err := Unmarshal(b)
	var corrupt ErrCorrupt
	require.ErrorAs(t, err, &corrupt)
}

func TestClassAnnotationsConsumed(t *testing.T) {
	// class annotations sit between the field list and the superclass
	// record; they must be read and skipped without disturbing the rest
	b := newStream().u8(tcObject).
		u8(tcClassDesc).utf("com.example.Annotated").u64(testSUID).
		u8(scSerializable).u16(1).
		u8(typeInt).utf("x").
		u8(tcBlockData).u8(3).raw([]byte{1, 2, 3}).
		u8(tcString).utf("marker").
		u8(tcEndBlockData).
		u8(tcNull). // no superclass
		u32(9).
		bytes()

	out, err := Unmarshal(b)
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0].(*Record)
	v, _ := rec.Get("x")
	assert.Equal(t, int32(9), v)
}

func TestFieldClassNameByReference(t *testing.T) {
	// two fields of the same declared class share one class-name string
	b := newStream().u8(tcObject).
		u8(tcClassDesc).utf("com.example.Pair").u64(testSUID).
		u8(scSerializable).u16(2).
		u8(typeObject).utf("left").u8(tcString).utf("Lcom.example.X;").
		u8(typeObject).utf("right").u8(tcReference).u32(baseWireHandle + 1).
		u8(tcEndBlockData).
		u8(tcNull).
		u8(tcNull). // left = null
		u8(tcNull). // right = null
		bytes()

	out, err := Unmarshal(b)
	require.NoError(t, err)

	rec := out[0].(*Record)
	require.Equal(t, 2, rec.Len())
	left, ok := rec.Get("left")
	require.True(t, ok)
	assert.Nil(t, left)
}

func TestUnknownDescriptorTag(t *testing.T) {
	b := newStream().u8(tcObject).u8(0x13).bytes()
	var tagErr ErrUnknownTag
	_, err := Unmarshal(b)
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, byte(0x13), tagErr.Tag)
}
