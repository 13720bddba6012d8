package message

import (
	"io"

	"github.com/provnet/matter/pkg/tlv"
)

// decodeStruct enters an anonymous structure and calls field for each
// context-tagged element. Unknown and non-context tags are skipped, per
// the Interaction Model's forward-compatibility rules.
func decodeStruct(r *tlv.Reader, field func(tagNum uint32) error) error {
	if err := r.Next(); err != nil {
		return err
	}
	if r.Type() != tlv.ElementTypeStruct {
		return ErrInvalidType
	}
	if err := r.EnterContainer(); err != nil {
		return err
	}

	for {
		if err := r.Next(); err != nil {
			if err == io.EOF || r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}

		if !r.Tag().IsContext() {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}

		if err := field(r.Tag().TagNumber()); err != nil {
			return err
		}
	}

	return r.ExitContainer()
}
