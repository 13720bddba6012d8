package tlv

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// Reader decodes TLV elements from an io.Reader.
//
// Usage follows the cursor pattern: call Next to advance to an element,
// inspect Type/Tag, then consume the value with the matching accessor.
// Containers are traversed with EnterContainer/ExitContainer.
type Reader struct {
	r     io.Reader
	depth int

	hasElement bool
	elemType   ElementType
	tag        Tag
	valueRead  bool

	valueBuf  [8]byte
	valueLen  int
	stringLen uint64
}

// NewReader creates a TLV Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next advances to the next element. Returns io.EOF at end of input.
func (r *Reader) Next() error {
	if r.hasElement && !r.valueRead {
		if err := r.skipValue(); err != nil {
			return err
		}
	}

	var ctrl [1]byte
	if _, err := io.ReadFull(r.r, ctrl[:]); err != nil {
		return err
	}

	var tagCtrl TagControl
	r.elemType, tagCtrl = ParseControlOctet(ctrl[0])
	if r.elemType > ElementTypeEnd {
		return ErrInvalidElementType
	}

	tag, err := ReadTag(r.r, tagCtrl)
	if err != nil {
		return err
	}
	r.tag = tag

	if err := r.readValueOrLength(); err != nil {
		return err
	}

	r.hasElement = true
	r.valueRead = false
	return nil
}

func (r *Reader) readValueOrLength() error {
	r.valueLen = 0
	r.stringLen = 0

	switch {
	case r.elemType.IsSignedInt() || r.elemType.IsUnsignedInt():
		r.valueLen = r.elemType.ValueSize()
		if _, err := io.ReadFull(r.r, r.valueBuf[:r.valueLen]); err != nil {
			return err
		}

	case r.elemType.IsString():
		lenSize := r.elemType.LengthFieldSize()
		var lenBuf [4]byte
		if _, err := io.ReadFull(r.r, lenBuf[:lenSize]); err != nil {
			return err
		}
		switch lenSize {
		case 1:
			r.stringLen = uint64(lenBuf[0])
		case 2:
			r.stringLen = uint64(binary.LittleEndian.Uint16(lenBuf[:2]))
		case 4:
			r.stringLen = uint64(binary.LittleEndian.Uint32(lenBuf[:4]))
		}
	}

	return nil
}

// Type returns the type of the current element.
func (r *Reader) Type() ElementType {
	return r.elemType
}

// Tag returns the tag of the current element.
func (r *Reader) Tag() Tag {
	return r.tag
}

// Uint returns the current element as an unsigned integer.
func (r *Reader) Uint() (uint64, error) {
	if err := r.checkValue(); err != nil {
		return 0, err
	}
	if !r.elemType.IsUnsignedInt() {
		return 0, ErrTypeMismatch
	}
	r.valueRead = true

	switch r.elemType {
	case ElementTypeUInt8:
		return uint64(r.valueBuf[0]), nil
	case ElementTypeUInt16:
		return uint64(binary.LittleEndian.Uint16(r.valueBuf[:2])), nil
	case ElementTypeUInt32:
		return uint64(binary.LittleEndian.Uint32(r.valueBuf[:4])), nil
	default:
		return binary.LittleEndian.Uint64(r.valueBuf[:8]), nil
	}
}

// Int returns the current element as a signed integer.
func (r *Reader) Int() (int64, error) {
	if err := r.checkValue(); err != nil {
		return 0, err
	}
	if !r.elemType.IsSignedInt() {
		return 0, ErrTypeMismatch
	}
	r.valueRead = true

	switch r.elemType {
	case ElementTypeInt8:
		return int64(int8(r.valueBuf[0])), nil
	case ElementTypeInt16:
		return int64(int16(binary.LittleEndian.Uint16(r.valueBuf[:2]))), nil
	case ElementTypeInt32:
		return int64(int32(binary.LittleEndian.Uint32(r.valueBuf[:4]))), nil
	default:
		return int64(binary.LittleEndian.Uint64(r.valueBuf[:8])), nil
	}
}

// Bool returns the current element as a boolean.
func (r *Reader) Bool() (bool, error) {
	if err := r.checkValue(); err != nil {
		return false, err
	}
	if !r.elemType.IsBool() {
		return false, ErrTypeMismatch
	}
	r.valueRead = true
	return r.elemType == ElementTypeTrue, nil
}

// String returns the current element as a UTF-8 string.
func (r *Reader) String() (string, error) {
	if err := r.checkValue(); err != nil {
		return "", err
	}
	if !r.elemType.IsUTF8String() {
		return "", ErrTypeMismatch
	}
	r.valueRead = true

	if r.stringLen == 0 {
		return "", nil
	}
	data := make([]byte, r.stringLen)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// Bytes returns the current element as a byte slice.
func (r *Reader) Bytes() ([]byte, error) {
	if err := r.checkValue(); err != nil {
		return nil, err
	}
	if !r.elemType.IsBytes() {
		return nil, ErrTypeMismatch
	}
	r.valueRead = true

	if r.stringLen == 0 {
		return nil, nil
	}
	data := make([]byte, r.stringLen)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// EnterContainer enters the current container element.
func (r *Reader) EnterContainer() error {
	if !r.hasElement {
		return ErrNoElement
	}
	if !r.elemType.IsContainer() {
		return ErrTypeMismatch
	}
	r.depth++
	r.hasElement = false
	r.valueRead = true
	return nil
}

// ExitContainer exits the current container, discarding unread elements.
func (r *Reader) ExitContainer() error {
	if r.depth == 0 {
		return ErrNotInContainer
	}

	if r.hasElement && r.elemType == ElementTypeEnd {
		r.depth--
		r.hasElement = false
		return nil
	}

	nested := 1
	for nested > 0 {
		if err := r.Next(); err != nil {
			return err
		}
		if r.elemType == ElementTypeEnd {
			nested--
		} else if r.elemType.IsContainer() {
			nested++
		}
	}

	r.depth--
	r.hasElement = false
	return nil
}

// IsEndOfContainer returns true when positioned on an end-of-container marker.
func (r *Reader) IsEndOfContainer() bool {
	return r.hasElement && r.elemType == ElementTypeEnd
}

// ContainerDepth returns the current nesting depth.
func (r *Reader) ContainerDepth() int {
	return r.depth
}

// Skip skips the current element, including nested container content.
func (r *Reader) Skip() error {
	if !r.hasElement {
		return ErrNoElement
	}
	if r.elemType.IsContainer() {
		if err := r.EnterContainer(); err != nil {
			return err
		}
		return r.ExitContainer()
	}
	return r.skipValue()
}

func (r *Reader) checkValue() error {
	if !r.hasElement {
		return ErrNoElement
	}
	if r.valueRead {
		return ErrValueAlreadyRead
	}
	return nil
}

func (r *Reader) skipValue() error {
	if r.valueRead {
		return nil
	}
	r.valueRead = true

	if r.elemType.IsString() && r.stringLen > 0 {
		_, err := io.CopyN(io.Discard, r.r, int64(r.stringLen))
		return err
	}
	return nil
}
