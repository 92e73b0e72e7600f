package javaobj

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrBadMagic   = errors.New("bad header: not an object serialization stream")
	ErrBadVersion = errors.New("bad header: unsupported stream version")

	ErrTruncated = errors.New("truncated stream")
)

// ErrUnknownTag is returned when a dispatch point hits a byte that is not
// a defined content tag.
type ErrUnknownTag struct {
	Tag    byte
	Offset int
}

func (e ErrUnknownTag) Error() string {
	return fmt.Sprintf("javaobj: unknown tag byte 0x%02x at offset %d", e.Tag, e.Offset)
}

// ErrUnsupported is returned for tags the protocol defines but this
// decoder intentionally does not implement. They fail loudly rather than
// producing guessed output.
type ErrUnsupported struct{ Feature string }

func (e ErrUnsupported) Error() string { return "javaobj: unsupported: " + e.Feature }

// ErrDanglingRef is returned when a back-reference names a handle that was
// never assigned in this stream.
type ErrDanglingRef struct{ Handle uint32 }

func (e ErrDanglingRef) Error() string {
	return fmt.Sprintf("javaobj: dangling reference to handle 0x%x", e.Handle)
}

// ErrCorrupt is returned if the stream violates the protocol in some way
// other than an unknown tag byte.
type ErrCorrupt struct{ Err string }

// internal constants used for corrupt
var (
	errHandleReused    = "handle stored twice"
	errNotAClassDesc   = "back-reference does not name a class descriptor"
	errNotAString      = "expected a string record"
	errBadArrayLength  = "negative array length"
	errBadDateData     = "date object without an 8-byte time annotation"
	errMissingEndBlock = "unterminated annotation block"
)

func (c ErrCorrupt) Error() string { return "javaobj: corrupt stream: " + c.Err }

func corruptf(format string, args ...interface{}) ErrCorrupt {
	return ErrCorrupt{Err: fmt.Sprintf(format, args...)}
}
