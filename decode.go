package javaobj

import (
	"encoding/binary"
	"errors"
	"runtime"
	"time"
)

// Decoder decodes Object Serialization Stream buffers. The zero value is
// ready to use; a Decoder holds no per-stream state and may be shared
// across goroutines.
type Decoder struct {
	// StrictVersion rejects streams whose header version is not the
	// defined protocol version. By default the version field is read and
	// ignored, matching the permissive behavior of legacy consumers.
	StrictVersion bool
}

// NewDecoder returns a Decoder with default options.
func NewDecoder() *Decoder { return &Decoder{} }

// Unmarshal decodes the buffer b with default options.
func Unmarshal(b []byte) ([]interface{}, error) { return NewDecoder().Unmarshal(b) }

// decodeState is the mutable state of one decode session: the input
// cursor and the handle table. It is created per call and never shared.
type decodeState struct {
	r    *reader
	refs *refTable
}

// Unmarshal decodes one serialization stream and returns its top-level
// contents in order. Object and array contents are simplified to plain
// values (*Record, []interface{}, string, time.Time, primitives); block
// data is returned as opaque []byte. Any protocol error aborts the whole
// decode; there is no partial output.
func (d *Decoder) Unmarshal(b []byte) (out []interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			out = nil
			if s, ok := r.(string); ok {
				err = errors.New(s)
			} else {
				err = r.(error)
			}
		}
	}()

	s := &decodeState{r: newReader(b), refs: newRefTable()}

	if s.r.readUint16() != streamMagic {
		return nil, ErrBadMagic
	}
	if v := s.r.readUint16(); d.StrictVersion && v != streamVersion {
		return nil, ErrBadVersion
	}

	for s.r.more() {
		c, err := s.content()
		if err != nil {
			return nil, err
		}
		if raw, ok := c.([]byte); ok {
			// block data is not object data; pass it through untouched
			out = append(out, raw)
			continue
		}
		out = append(out, simplify(c))
	}
	return out, nil
}

// content decodes one top-level content record: a framed run of block
// data, or any object record.
func (s *decodeState) content() (interface{}, error) {
	switch s.r.peek() {
	case tcBlockData:
		s.r.readByte()
		return s.r.readN(int(s.r.readByte())), nil
	case tcBlockDataLong:
		s.r.readByte()
		return s.r.readN(int(s.r.readUint32())), nil
	}
	return s.object()
}

// object decodes one tagged object record, returning either nil or an
// internal reference (*stringRef, *classDesc, *arrayRef, *objectRef).
func (s *decodeState) object() (interface{}, error) {
	off := s.r.pos
	tag := s.r.readByte()
	switch tag {
	case tcNull:
		return nil, nil

	case tcReference:
		return s.refs.resolve(s.r.readUint32())

	case tcClassDesc, tcProxyClassDesc:
		cd, err := s.classDescForTag(tag)
		if err != nil {
			return nil, err
		}
		return cd, nil

	case tcString:
		h := s.refs.allocate()
		ref := &stringRef{handle: h, s: s.r.readUTF()}
		if err := s.refs.store(h, ref); err != nil {
			return nil, err
		}
		return ref, nil

	case tcLongString:
		return nil, ErrUnsupported{Feature: "long strings"}

	case tcArray:
		return s.array()

	case tcObject:
		return s.objectRecord()

	case tcClass:
		return nil, ErrUnsupported{Feature: "class records"}
	case tcException:
		return nil, ErrUnsupported{Feature: "exception records"}
	case tcEnum:
		return nil, ErrUnsupported{Feature: "enum records"}
	case tcReset:
		return nil, ErrUnsupported{Feature: "stream reset"}

	default:
		return nil, ErrUnknownTag{Tag: tag, Offset: off}
	}
}

func (s *decodeState) array() (interface{}, error) {
	cd, err := s.classDescriptor()
	if err != nil {
		return nil, err
	}
	h := s.refs.allocate()

	n := s.r.readInt32()
	if n < 0 {
		return nil, ErrCorrupt{errBadArrayLength}
	}
	if int(n) > s.r.remaining() {
		// every element takes at least one byte; don't allocate on a lie
		return nil, ErrTruncated
	}

	elems := make([]interface{}, n)
	for i := range elems {
		if elems[i], err = s.object(); err != nil {
			return nil, err
		}
	}

	ref := &arrayRef{handle: h, desc: cd, elems: elems}
	if err := s.refs.store(h, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *decodeState) objectRecord() (interface{}, error) {
	cd, err := s.classDescriptor()
	if err != nil {
		return nil, err
	}
	if cd == nil {
		return nil, corruptf("object record with null class descriptor")
	}
	if cd.flags&scExternalizable != 0 {
		return nil, ErrUnsupported{Feature: "externalizable object data"}
	}

	// The handle is allocated before the fields decode, but the table
	// entry is written only after the record completes, so a field that
	// back-references its own enclosing object fails as dangling rather
	// than observing a half-built record.
	h := s.refs.allocate()

	fields, err := s.flattenFields(cd)
	if err != nil {
		return nil, err
	}
	rec := newRecord()
	for _, f := range fields {
		v, err := s.fieldValue(f)
		if err != nil {
			return nil, err
		}
		rec.Set(f.name, v)
	}

	obj := &objectRef{handle: h, desc: cd, fields: rec}

	if cd.flags&scWriteMethod != 0 {
		if obj.annotations, err = s.annotations(); err != nil {
			return nil, err
		}
	}

	if cd.name == dateClass {
		ts, err := dateFromAnnotations(obj.annotations)
		if err != nil {
			return nil, err
		}
		obj.date = &ts
	}

	if err := s.refs.store(h, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// annotations collects content records up to the end-marker tag. Used for
// both class annotations and trailing write-method object data.
func (s *decodeState) annotations() ([]interface{}, error) {
	var out []interface{}
	for {
		if !s.r.more() {
			return nil, ErrCorrupt{errMissingEndBlock}
		}
		if s.r.peek() == tcEndBlockData {
			s.r.readByte()
			return out, nil
		}
		c, err := s.content()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}

// fieldValue decodes one field's value given its declared kind.
// Primitives are fixed-width reads; array- and object-typed fields are
// full object records, stored simplified.
func (s *decodeState) fieldValue(f fieldDesc) (interface{}, error) {
	switch f.typeCode {
	case typeByte:
		return s.r.readInt8(), nil
	case typeChar:
		return s.r.readUint16(), nil
	case typeDouble:
		return s.r.readFloat64(), nil
	case typeFloat:
		return s.r.readFloat32(), nil
	case typeInt:
		return s.r.readInt32(), nil
	case typeLong:
		return s.r.readInt64(), nil
	case typeShort:
		return s.r.readInt16(), nil
	case typeBoolean:
		return s.r.readByte() == 1, nil
	case typeArray, typeObject:
		v, err := s.object()
		if err != nil {
			return nil, err
		}
		return simplify(v), nil
	default:
		return nil, corruptf("bad field type code 0x%02x", f.typeCode)
	}
}

// dateFromAnnotations extracts the timestamp a date object carries in its
// write-method annotation: one block-data buffer holding big-endian epoch
// milliseconds.
func dateFromAnnotations(ann []interface{}) (time.Time, error) {
	if len(ann) != 1 {
		return time.Time{}, ErrCorrupt{errBadDateData}
	}
	raw, ok := ann[0].([]byte)
	if !ok || len(raw) != 8 {
		return time.Time{}, ErrCorrupt{errBadDateData}
	}
	ms := binary.BigEndian.Uint64(raw)
	return time.UnixMilli(int64(ms)).UTC(), nil
}
