package message

import "github.com/provnet/matter/pkg/tlv"

// StatusResponseMessage is a response carrying only a status code.
// Opcode: 0x01. Container type: Structure.
type StatusResponseMessage struct {
	Status Status // Tag 0
}

const statusRespTagStatus = 0

// Encode writes the StatusResponseMessage to the TLV writer.
func (m *StatusResponseMessage) Encode(w *tlv.Writer) error {
	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return err
	}
	if err := w.PutUint(tlv.ContextTag(statusRespTagStatus), uint64(m.Status)); err != nil {
		return err
	}
	return w.EndContainer()
}

// Decode reads a StatusResponseMessage from the TLV reader.
func (m *StatusResponseMessage) Decode(r *tlv.Reader) error {
	var hasStatus bool

	err := decodeStruct(r, func(tagNum uint32) error {
		switch tagNum {
		case statusRespTagStatus:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.Status = Status(v)
			hasStatus = true
			return nil
		default:
			return r.Skip()
		}
	})
	if err != nil {
		return err
	}

	if !hasStatus {
		return ErrMissingField
	}
	return nil
}
