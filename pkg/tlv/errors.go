package tlv

import "errors"

var (
	// ErrInvalidElementType is returned when an unknown element type is read.
	ErrInvalidElementType = errors.New("tlv: invalid element type")

	// ErrTypeMismatch is returned when a value is read as the wrong type.
	ErrTypeMismatch = errors.New("tlv: type mismatch")

	// ErrNotInContainer is returned when exiting a container without one open.
	ErrNotInContainer = errors.New("tlv: not in container")

	// ErrInvalidUTF8 is returned when a UTF-8 string element is malformed.
	ErrInvalidUTF8 = errors.New("tlv: invalid UTF-8 string")

	// ErrNoElement is returned when a value is accessed before Next().
	ErrNoElement = errors.New("tlv: no current element")

	// ErrValueAlreadyRead is returned when a value is consumed twice.
	ErrValueAlreadyRead = errors.New("tlv: value already read")
)
