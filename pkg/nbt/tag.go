package nbt

import "fmt"

// TagID is the one-byte wire-format code that selects which tag kind follows.
type TagID byte

// The thirteen tag kinds of the format. The numeric values are fixed by the
// wire format and must not be reordered.
const (
	TagEnd TagID = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// valid reports whether id is one of the thirteen wire-format kinds.
func (id TagID) valid() bool {
	return id <= TagLongArray
}

func (id TagID) String() string {
	switch id {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return fmt.Sprintf("TagID(%d)", byte(id))
	}
}

// Tag is one node of a decoded tree. The set of implementations is closed:
// exactly one per TagID. Tags are immutable once returned by Decode except
// through the Compound mutators.
type Tag interface {
	// ID returns the wire-format kind of the tag.
	ID() TagID

	// appendSNBT appends the stringified form of the tag to dst.
	// Implemented in snbt.go; the unexported method seals the interface.
	appendSNBT(dst []byte) []byte
}

// End is the compound terminator. It never appears inside a decoded tree;
// it exists only as the declared element kind of an empty List.
type End struct{}

// Byte is an 8-bit signed integer tag.
type Byte int8

// Short is a 16-bit signed integer tag.
type Short int16

// Int is a 32-bit signed integer tag.
type Int int32

// Long is a 64-bit signed integer tag.
type Long int64

// Float is a 32-bit IEEE-754 tag.
type Float float32

// Double is a 64-bit IEEE-754 tag.
type Double float64

// String is a length-prefixed byte-sequence tag. The bytes are carried as-is,
// with no encoding validation.
type String string

// ByteArray is a packed sequence of 8-bit signed integers.
type ByteArray []int8

// IntArray is a packed sequence of 32-bit signed integers.
type IntArray []int32

// LongArray is a packed sequence of 64-bit signed integers.
type LongArray []int64

// List is an ordered sequence of tags sharing a single declared element kind.
// An empty list still carries its declared kind, which may be TagEnd.
type List struct {
	Elem  TagID
	Items []Tag
}

func (End) ID() TagID       { return TagEnd }
func (Byte) ID() TagID      { return TagByte }
func (Short) ID() TagID     { return TagShort }
func (Int) ID() TagID       { return TagInt }
func (Long) ID() TagID      { return TagLong }
func (Float) ID() TagID     { return TagFloat }
func (Double) ID() TagID    { return TagDouble }
func (ByteArray) ID() TagID { return TagByteArray }
func (String) ID() TagID    { return TagString }
func (*List) ID() TagID     { return TagList }
func (IntArray) ID() TagID  { return TagIntArray }
func (LongArray) ID() TagID { return TagLongArray }

// Len returns the number of elements in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}
