package javaobj

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/elliotchance/orderedmap/v3"
)

// refTable tracks every record the stream has materialized so far, keyed
// by wire handle. One table exists per decode session; it is threaded
// through the recursive decode calls and discarded when the session ends.
type refTable struct {
	next uint32
	refs map[uint32]interface{}
}

func newRefTable() *refTable {
	return &refTable{
		next: baseWireHandle,
		refs: make(map[uint32]interface{}),
	}
}

// allocate hands out the next wire handle. Handles are strictly
// increasing and never reused within a session.
func (t *refTable) allocate() uint32 {
	h := t.next
	t.next++
	return h
}

func (t *refTable) store(h uint32, ref interface{}) error {
	if _, dup := t.refs[h]; dup {
		return ErrCorrupt{errHandleReused}
	}
	t.refs[h] = ref
	return nil
}

func (t *refTable) resolve(h uint32) (interface{}, error) {
	ref, ok := t.refs[h]
	if !ok {
		return nil, ErrDanglingRef{Handle: h}
	}
	return ref, nil
}

// stringRef is a decoded string record.
type stringRef struct {
	handle uint32
	s      string
}

// arrayRef is a decoded array record. Elements are full tagged records,
// so they may still be references when the array is simplified.
type arrayRef struct {
	handle uint32
	desc   *classDesc
	elems  []interface{}
}

// objectRef is a decoded object record. Field values are stored already
// simplified; annotations hold any trailing write-method contents. For
// date-typed objects, date carries the timestamp extracted from the
// annotation and the field map is ignored.
type objectRef struct {
	handle      uint32
	desc        *classDesc
	fields      *Record
	annotations []interface{}
	date        *time.Time
}

// Record is the exported form of a decoded object: a field-name to value
// mapping that preserves the order fields were written on the wire.
type Record struct {
	*orderedmap.OrderedMap[string, interface{}]
}

func newRecord() *Record {
	return &Record{orderedmap.NewOrderedMap[string, interface{}]()}
}

// MarshalJSON emits the fields as a JSON object in wire order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, value := range r.AllFromFront() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// simplify converts the internal reference graph into the exported plain
// form. Registry entries are immutable, so a reference that is shared on
// the wire simplifies to the same underlying value every time.
func simplify(v interface{}) interface{} {
	switch ref := v.(type) {
	case nil:
		return nil
	case *stringRef:
		return ref.s
	case *arrayRef:
		out := make([]interface{}, len(ref.elems))
		for i, e := range ref.elems {
			out[i] = simplify(e)
		}
		return out
	case *objectRef:
		if ref.date != nil {
			return *ref.date
		}
		return ref.fields
	default:
		// primitives and already-simplified values pass through
		return v
	}
}
