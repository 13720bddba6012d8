package networkcommissioning

import "errors"

// Thread operational dataset constants.
const (
	// ExtendedPANIDSize is the size of a Thread extended PAN ID.
	ExtendedPANIDSize = 8

	// meshcopTypeExtendedPANID is the MeshCoP TLV type of the extended
	// PAN ID entry inside an operational dataset.
	meshcopTypeExtendedPANID = 2
)

// Dataset parse errors.
var (
	// ErrDatasetTooLong indicates a dataset exceeding MaxThreadDatasetLen.
	ErrDatasetTooLong = errors.New("operational dataset too long")

	// ErrMalformedDataset indicates a dataset whose TLV sequence is
	// truncated or otherwise unparseable.
	ErrMalformedDataset = errors.New("malformed operational dataset")

	// ErrMissingExtendedPANID indicates a dataset without a valid
	// extended PAN ID entry.
	ErrMissingExtendedPANID = errors.New("operational dataset has no extended PAN ID")
)

// OperationalDataset is a parsed Thread operational dataset.
//
// The dataset is a sequence of MeshCoP TLVs (1-byte type, 1-byte length,
// value). The blob itself stays opaque; only the extended PAN ID needed
// for the profile's network ID is extracted.
type OperationalDataset struct {
	raw           []byte
	extendedPANID [ExtendedPANIDSize]byte
}

// ParseOperationalDataset validates raw as a Thread operational dataset
// and extracts its extended PAN ID.
func ParseOperationalDataset(raw []byte) (*OperationalDataset, error) {
	if len(raw) > MaxThreadDatasetLen {
		return nil, ErrDatasetTooLong
	}

	d := &OperationalDataset{
		raw: append([]byte(nil), raw...),
	}

	found := false
	for off := 0; off < len(raw); {
		if off+2 > len(raw) {
			return nil, ErrMalformedDataset
		}
		typ := raw[off]
		length := int(raw[off+1])
		off += 2

		if off+length > len(raw) {
			return nil, ErrMalformedDataset
		}

		if typ == meshcopTypeExtendedPANID {
			if length != ExtendedPANIDSize {
				return nil, ErrMissingExtendedPANID
			}
			copy(d.extendedPANID[:], raw[off:off+length])
			found = true
		}
		off += length
	}

	if !found {
		return nil, ErrMissingExtendedPANID
	}
	return d, nil
}

// ExtendedPANID returns the 8-byte extended PAN ID.
func (d *OperationalDataset) ExtendedPANID() []byte {
	return d.extendedPANID[:]
}

// Bytes returns the raw dataset blob.
func (d *OperationalDataset) Bytes() []byte {
	return d.raw
}
