package javaobj

// Stream header constants from the Object Serialization Stream Protocol.
const (
	streamMagic   = uint16(0xaced)
	streamVersion = uint16(5)
)

// Content tag bytes. Every record in the stream body starts with one of
// these; anything else is a corrupt stream.
const (
	tcNull           = 0x70
	tcReference      = 0x71
	tcClassDesc      = 0x72
	tcObject         = 0x73
	tcString         = 0x74
	tcArray          = 0x75
	tcClass          = 0x76
	tcBlockData      = 0x77
	tcEndBlockData   = 0x78
	tcReset          = 0x79
	tcBlockDataLong  = 0x7a
	tcException      = 0x7b
	tcLongString     = 0x7c
	tcProxyClassDesc = 0x7d
	tcEnum           = 0x7e
)

// Class descriptor flag bits.
const (
	scWriteMethod    = 0x01
	scSerializable   = 0x02
	scExternalizable = 0x04
	scBlockData      = 0x08
	scEnum           = 0x10
)

// baseWireHandle is the value of the first handle assigned in a stream.
const baseWireHandle = uint32(0x7e0000)

// Field type codes as they appear in class descriptors.
const (
	typeByte    = 'B'
	typeChar    = 'C'
	typeDouble  = 'D'
	typeFloat   = 'F'
	typeInt     = 'I'
	typeLong    = 'J'
	typeShort   = 'S'
	typeBoolean = 'Z'
	typeArray   = '['
	typeObject  = 'L'
)

// dateClass gets a special representation: the write-method annotation
// holds the epoch milliseconds, and the decoded value is a timestamp
// rather than a field map.
const dateClass = "java.util.Date"
