// Package tlv implements the Matter TLV (Tag-Length-Value) encoding
// defined in Appendix A of the Matter specification, restricted to the
// element surface the commissioning protocol uses: integers, booleans,
// strings, octet strings, and structure/array containers with anonymous
// or context-specific tags.
package tlv

// ElementType is the element type encoded in the lower 5 bits of the
// control octet.
type ElementType int

const (
	ElementTypeInt8   ElementType = 0x00
	ElementTypeInt16  ElementType = 0x01
	ElementTypeInt32  ElementType = 0x02
	ElementTypeInt64  ElementType = 0x03
	ElementTypeUInt8  ElementType = 0x04
	ElementTypeUInt16 ElementType = 0x05
	ElementTypeUInt32 ElementType = 0x06
	ElementTypeUInt64 ElementType = 0x07
	ElementTypeFalse  ElementType = 0x08
	ElementTypeTrue   ElementType = 0x09
	ElementTypeUTF8_1 ElementType = 0x0C
	ElementTypeUTF8_2 ElementType = 0x0D
	ElementTypeBytes1 ElementType = 0x10
	ElementTypeBytes2 ElementType = 0x11
	ElementTypeBytes4 ElementType = 0x12
	ElementTypeNull   ElementType = 0x14
	ElementTypeStruct ElementType = 0x15
	ElementTypeArray  ElementType = 0x16
	ElementTypeEnd    ElementType = 0x18
)

// String returns the name of the element type.
func (e ElementType) String() string {
	switch e {
	case ElementTypeInt8, ElementTypeInt16, ElementTypeInt32, ElementTypeInt64:
		return "Int"
	case ElementTypeUInt8, ElementTypeUInt16, ElementTypeUInt32, ElementTypeUInt64:
		return "UInt"
	case ElementTypeFalse:
		return "False"
	case ElementTypeTrue:
		return "True"
	case ElementTypeUTF8_1, ElementTypeUTF8_2:
		return "UTF8String"
	case ElementTypeBytes1, ElementTypeBytes2, ElementTypeBytes4:
		return "OctetString"
	case ElementTypeNull:
		return "Null"
	case ElementTypeStruct:
		return "Struct"
	case ElementTypeArray:
		return "Array"
	case ElementTypeEnd:
		return "EndOfContainer"
	default:
		return "Unknown"
	}
}

// IsSignedInt returns true for signed integer element types.
func (e ElementType) IsSignedInt() bool {
	return e >= ElementTypeInt8 && e <= ElementTypeInt64
}

// IsUnsignedInt returns true for unsigned integer element types.
func (e ElementType) IsUnsignedInt() bool {
	return e >= ElementTypeUInt8 && e <= ElementTypeUInt64
}

// IsBool returns true for boolean element types.
func (e ElementType) IsBool() bool {
	return e == ElementTypeFalse || e == ElementTypeTrue
}

// IsUTF8String returns true for UTF-8 string element types.
func (e ElementType) IsUTF8String() bool {
	return e == ElementTypeUTF8_1 || e == ElementTypeUTF8_2
}

// IsBytes returns true for octet string element types.
func (e ElementType) IsBytes() bool {
	return e >= ElementTypeBytes1 && e <= ElementTypeBytes4
}

// IsString returns true for any string element type.
func (e ElementType) IsString() bool {
	return e.IsUTF8String() || e.IsBytes()
}

// IsContainer returns true for container element types.
func (e ElementType) IsContainer() bool {
	return e == ElementTypeStruct || e == ElementTypeArray
}

// ValueSize returns the fixed value size in bytes, or 0 for
// variable-length and valueless types.
func (e ElementType) ValueSize() int {
	switch e {
	case ElementTypeInt8, ElementTypeUInt8:
		return 1
	case ElementTypeInt16, ElementTypeUInt16:
		return 2
	case ElementTypeInt32, ElementTypeUInt32:
		return 4
	case ElementTypeInt64, ElementTypeUInt64:
		return 8
	default:
		return 0
	}
}

// LengthFieldSize returns the size of the length field for string types,
// or 0 for non-string types.
func (e ElementType) LengthFieldSize() int {
	switch e {
	case ElementTypeUTF8_1, ElementTypeBytes1:
		return 1
	case ElementTypeUTF8_2, ElementTypeBytes2:
		return 2
	case ElementTypeBytes4:
		return 4
	default:
		return 0
	}
}

const (
	elementTypeMask = 0x1F
	tagControlShift = 5
)

// ParseControlOctet splits a control octet into element type and tag control.
func ParseControlOctet(b byte) (ElementType, TagControl) {
	return ElementType(b & elementTypeMask), TagControl(b >> tagControlShift)
}

// BuildControlOctet combines an element type and tag control into a control octet.
func BuildControlOctet(elemType ElementType, tagCtrl TagControl) byte {
	return byte(elemType&elementTypeMask) | byte(tagCtrl)<<tagControlShift
}
