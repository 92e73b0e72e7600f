package javaobj

// fieldDesc describes one declared field of a class. className is set
// only for array- and object-typed fields, where it names the element or
// referenced class.
type fieldDesc struct {
	typeCode  byte
	name      string
	className string
}

func (f fieldDesc) primitive() bool {
	return f.typeCode != typeArray && f.typeCode != typeObject
}

// classDesc is a resolved class descriptor. The superclass is kept as a
// handle into the session's reference table rather than a pointer, so
// descriptor chains are looked up by stable identifier, the same way the
// stream itself refers to them. super == 0 means no superclass.
type classDesc struct {
	handle           uint32
	name             string
	serialVersionUID int64
	flags            byte
	fields           []fieldDesc
	annotations      []interface{}
	super            uint32
}

// classDescriptor reads a tag byte and resolves the class descriptor it
// introduces.
func (s *decodeState) classDescriptor() (*classDesc, error) {
	return s.classDescForTag(s.r.readByte())
}

func (s *decodeState) classDescForTag(tag byte) (*classDesc, error) {
	switch tag {
	case tcNull:
		return nil, nil

	case tcReference:
		ref, err := s.refs.resolve(s.r.readUint32())
		if err != nil {
			return nil, err
		}
		cd, ok := ref.(*classDesc)
		if !ok {
			return nil, ErrCorrupt{errNotAClassDesc}
		}
		return cd, nil

	case tcClassDesc:
		cd := &classDesc{
			name:             s.r.readUTF(),
			serialVersionUID: s.r.readInt64(),
		}
		cd.handle = s.refs.allocate()

		cd.flags = s.r.readByte()
		nfields := int(s.r.readUint16())
		for i := 0; i < nfields; i++ {
			f, err := s.fieldDescriptor()
			if err != nil {
				return nil, err
			}
			cd.fields = append(cd.fields, f)
		}

		ann, err := s.annotations()
		if err != nil {
			return nil, err
		}
		cd.annotations = ann

		super, err := s.classDescriptor()
		if err != nil {
			return nil, err
		}
		if super != nil {
			cd.super = super.handle
		}

		if err := s.refs.store(cd.handle, cd); err != nil {
			return nil, err
		}
		return cd, nil

	case tcProxyClassDesc:
		return nil, ErrUnsupported{Feature: "proxy class descriptors"}

	default:
		return nil, ErrUnknownTag{Tag: tag, Offset: s.r.pos - 1}
	}
}

func (s *decodeState) fieldDescriptor() (fieldDesc, error) {
	tc := s.r.readByte()
	switch tc {
	case typeByte, typeChar, typeDouble, typeFloat, typeInt, typeLong, typeShort, typeBoolean:
		return fieldDesc{typeCode: tc, name: s.r.readUTF()}, nil

	case typeArray, typeObject:
		name := s.r.readUTF()
		// the class name is a full string record so it can be shared by
		// back-reference
		cls, err := s.stringValue()
		if err != nil {
			return fieldDesc{}, err
		}
		return fieldDesc{typeCode: tc, name: name, className: cls}, nil

	default:
		return fieldDesc{}, corruptf("bad field type code 0x%02x at offset %d", tc, s.r.pos-1)
	}
}

// stringValue decodes a content record that must resolve to a string.
func (s *decodeState) stringValue() (string, error) {
	v, err := s.object()
	if err != nil {
		return "", err
	}
	ref, ok := v.(*stringRef)
	if !ok {
		return "", ErrCorrupt{errNotAString}
	}
	return ref.s, nil
}

// flattenFields returns the full field list for a class: every ancestor's
// fields first, most distant ancestor leading, then the class's own, each
// block in declaration order.
func (s *decodeState) flattenFields(cd *classDesc) ([]fieldDesc, error) {
	if cd == nil {
		return nil, nil
	}
	var inherited []fieldDesc
	if cd.super != 0 {
		ref, err := s.refs.resolve(cd.super)
		if err != nil {
			return nil, err
		}
		super, ok := ref.(*classDesc)
		if !ok {
			return nil, ErrCorrupt{errNotAClassDesc}
		}
		inherited, err = s.flattenFields(super)
		if err != nil {
			return nil, err
		}
	}
	out := make([]fieldDesc, 0, len(inherited)+len(cd.fields))
	out = append(out, inherited...)
	out = append(out, cd.fields...)
	return out, nil
}
