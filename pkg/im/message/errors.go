package message

import "errors"

var (
	// ErrInvalidType is returned when a message has the wrong TLV container type.
	ErrInvalidType = errors.New("message: invalid TLV type")

	// ErrMissingField is returned when a mandatory field is absent.
	ErrMissingField = errors.New("message: missing mandatory field")
)
