package tlv

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Writer encodes TLV elements to an io.Writer.
type Writer struct {
	w     io.Writer
	depth int
}

// NewWriter creates a TLV Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) writeControlAndTag(elemType ElementType, tag Tag) error {
	if _, err := w.w.Write([]byte{BuildControlOctet(elemType, tag.Control())}); err != nil {
		return err
	}
	_, err := tag.WriteTo(w.w)
	return err
}

// PutUint writes an unsigned integer using the minimum width that holds v.
func (w *Writer) PutUint(tag Tag, v uint64) error {
	var buf [8]byte

	switch {
	case v <= math.MaxUint8:
		buf[0] = byte(v)
		return w.putFixed(ElementTypeUInt8, tag, buf[:1])
	case v <= math.MaxUint16:
		binary.LittleEndian.PutUint16(buf[:2], uint16(v))
		return w.putFixed(ElementTypeUInt16, tag, buf[:2])
	case v <= math.MaxUint32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(v))
		return w.putFixed(ElementTypeUInt32, tag, buf[:4])
	default:
		binary.LittleEndian.PutUint64(buf[:8], v)
		return w.putFixed(ElementTypeUInt64, tag, buf[:8])
	}
}

// PutInt writes a signed integer using the minimum width that holds v.
func (w *Writer) PutInt(tag Tag, v int64) error {
	var buf [8]byte

	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		buf[0] = byte(v)
		return w.putFixed(ElementTypeInt8, tag, buf[:1])
	case v >= math.MinInt16 && v <= math.MaxInt16:
		binary.LittleEndian.PutUint16(buf[:2], uint16(v))
		return w.putFixed(ElementTypeInt16, tag, buf[:2])
	case v >= math.MinInt32 && v <= math.MaxInt32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(v))
		return w.putFixed(ElementTypeInt32, tag, buf[:4])
	default:
		binary.LittleEndian.PutUint64(buf[:8], uint64(v))
		return w.putFixed(ElementTypeInt64, tag, buf[:8])
	}
}

// PutBool writes a boolean.
func (w *Writer) PutBool(tag Tag, v bool) error {
	elemType := ElementTypeFalse
	if v {
		elemType = ElementTypeTrue
	}
	return w.writeControlAndTag(elemType, tag)
}

// PutString writes a UTF-8 string. Returns ErrInvalidUTF8 for invalid input.
func (w *Writer) PutString(tag Tag, v string) error {
	if !utf8.ValidString(v) {
		return ErrInvalidUTF8
	}
	return w.putString(true, tag, []byte(v))
}

// PutBytes writes an octet string.
func (w *Writer) PutBytes(tag Tag, v []byte) error {
	return w.putString(false, tag, v)
}

// PutNull writes a null value.
func (w *Writer) PutNull(tag Tag) error {
	return w.writeControlAndTag(ElementTypeNull, tag)
}

// StartStructure opens a structure container.
func (w *Writer) StartStructure(tag Tag) error {
	return w.startContainer(ElementTypeStruct, tag)
}

// StartArray opens an array container.
func (w *Writer) StartArray(tag Tag) error {
	return w.startContainer(ElementTypeArray, tag)
}

// EndContainer closes the innermost open container.
func (w *Writer) EndContainer() error {
	if w.depth == 0 {
		return ErrNotInContainer
	}
	w.depth--
	_, err := w.w.Write([]byte{byte(ElementTypeEnd)})
	return err
}

// ContainerDepth returns the current container nesting depth.
func (w *Writer) ContainerDepth() int {
	return w.depth
}

func (w *Writer) startContainer(elemType ElementType, tag Tag) error {
	if err := w.writeControlAndTag(elemType, tag); err != nil {
		return err
	}
	w.depth++
	return nil
}

func (w *Writer) putFixed(elemType ElementType, tag Tag, value []byte) error {
	if err := w.writeControlAndTag(elemType, tag); err != nil {
		return err
	}
	_, err := w.w.Write(value)
	return err
}

func (w *Writer) putString(isUTF8 bool, tag Tag, data []byte) error {
	var elemType ElementType
	var lenBuf [2]byte
	var lenSize int

	switch {
	case len(data) <= math.MaxUint8:
		lenSize = 1
		lenBuf[0] = byte(len(data))
		if isUTF8 {
			elemType = ElementTypeUTF8_1
		} else {
			elemType = ElementTypeBytes1
		}
	default:
		lenSize = 2
		binary.LittleEndian.PutUint16(lenBuf[:2], uint16(len(data)))
		if isUTF8 {
			elemType = ElementTypeUTF8_2
		} else {
			elemType = ElementTypeBytes2
		}
	}

	if err := w.writeControlAndTag(elemType, tag); err != nil {
		return err
	}
	if _, err := w.w.Write(lenBuf[:lenSize]); err != nil {
		return err
	}
	_, err := w.w.Write(data)
	return err
}
