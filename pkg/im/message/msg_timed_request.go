package message

import "github.com/provnet/matter/pkg/tlv"

// TimedRequestMessage opens a timed interaction: it asks the responder to
// accept one subsequent invoke/write within the given window.
// Opcode: 0x0a. Container type: Structure.
type TimedRequestMessage struct {
	Timeout uint16 // Tag 0, window length in milliseconds
}

const timedReqTagTimeout = 0

// Encode writes the TimedRequestMessage to the TLV writer.
func (m *TimedRequestMessage) Encode(w *tlv.Writer) error {
	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return err
	}
	if err := w.PutUint(tlv.ContextTag(timedReqTagTimeout), uint64(m.Timeout)); err != nil {
		return err
	}
	return w.EndContainer()
}

// Decode reads a TimedRequestMessage from the TLV reader.
func (m *TimedRequestMessage) Decode(r *tlv.Reader) error {
	var hasTimeout bool

	err := decodeStruct(r, func(tagNum uint32) error {
		switch tagNum {
		case timedReqTagTimeout:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.Timeout = uint16(v)
			hasTimeout = true
			return nil
		default:
			return r.Skip()
		}
	})
	if err != nil {
		return err
	}

	if !hasTimeout {
		return ErrMissingField
	}
	return nil
}
