package tlv

import "io"

// TagControl is the tag form encoded in the upper 3 bits of the control
// octet. Only anonymous and context-specific forms are produced by this
// module; profile-qualified forms are recognized and skipped on read.
type TagControl int

const (
	TagControlAnonymous TagControl = 0
	TagControlContext   TagControl = 1
)

// tagControlSizes maps each Matter tag control form to its encoded size,
// so readers can skip tag forms this module never writes.
var tagControlSizes = [8]int{0, 1, 2, 4, 2, 4, 6, 8}

// Size returns the encoded size in bytes of the tag field.
func (tc TagControl) Size() int {
	if tc < 0 || int(tc) >= len(tagControlSizes) {
		return 0
	}
	return tagControlSizes[tc]
}

// Tag identifies a TLV element within its container.
type Tag struct {
	control   TagControl
	tagNumber uint32
}

// Anonymous returns an anonymous tag.
func Anonymous() Tag {
	return Tag{control: TagControlAnonymous}
}

// ContextTag returns a context-specific tag with the given number.
func ContextTag(tagNum uint8) Tag {
	return Tag{control: TagControlContext, tagNumber: uint32(tagNum)}
}

// Control returns the tag control form.
func (t Tag) Control() TagControl {
	return t.control
}

// IsAnonymous returns true for anonymous tags.
func (t Tag) IsAnonymous() bool {
	return t.control == TagControlAnonymous
}

// IsContext returns true for context-specific tags.
func (t Tag) IsContext() bool {
	return t.control == TagControlContext
}

// TagNumber returns the tag number. Zero for anonymous tags.
func (t Tag) TagNumber() uint32 {
	return t.tagNumber
}

// WriteTo writes the tag field to w.
func (t Tag) WriteTo(w io.Writer) (int64, error) {
	if t.control == TagControlAnonymous {
		return 0, nil
	}
	n, err := w.Write([]byte{byte(t.tagNumber)})
	return int64(n), err
}

// ReadTag reads a tag field of the given control form from r.
// Profile-qualified tag fields are consumed but reported as anonymous;
// callers filter on IsContext before interpreting tag numbers.
func ReadTag(r io.Reader, ctrl TagControl) (Tag, error) {
	size := ctrl.Size()
	if size == 0 {
		return Tag{control: TagControlAnonymous}, nil
	}

	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:size]); err != nil {
		return Tag{}, err
	}

	if ctrl == TagControlContext {
		return Tag{control: TagControlContext, tagNumber: uint32(buf[0])}, nil
	}
	return Tag{control: TagControlAnonymous}, nil
}
