/*
Package javaobj decodes Java Object Serialization Stream buffers into a
language-neutral value graph.

Decoded streams come back as plain Go values: nil, bool, fixed-width
integers and floats, string, []interface{} for arrays, *Record for
objects (field order preserved as written), time.Time for java.util.Date,
and []byte for raw block data. Shared records on the wire decode to
shared values.

The decoder is decode-only and fails fast: unsupported protocol features
(enums, externalizable data, long strings, proxy descriptors) and any
corrupt input abort the whole decode with an error rather than producing
partial output.
*/
package javaobj
