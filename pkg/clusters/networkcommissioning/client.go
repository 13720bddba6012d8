package networkcommissioning

import (
	"bytes"

	"github.com/provnet/matter/pkg/tlv"
)

// Client-side encoding/decoding functions for Network Commissioning
// cluster commands. These are used by the commissioner (controller) to
// send commands and parse responses.

// EncodeAddOrUpdateThreadNetworkRequest encodes an AddOrUpdateThreadNetwork
// request to TLV.
func EncodeAddOrUpdateThreadNetworkRequest(req *AddOrUpdateThreadNetworkRequest) ([]byte, error) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)

	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return nil, err
	}

	// OperationalDataset (field 0)
	if err := w.PutBytes(tlv.ContextTag(0), req.OperationalDataset); err != nil {
		return nil, err
	}

	// Breadcrumb (field 1)
	if err := w.PutUint(tlv.ContextTag(1), req.Breadcrumb); err != nil {
		return nil, err
	}

	// TimeoutMs (field 2)
	if err := w.PutUint(tlv.ContextTag(2), uint64(req.TimeoutMs)); err != nil {
		return nil, err
	}

	if err := w.EndContainer(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeAddOrUpdateWiFiNetworkRequest encodes an AddOrUpdateWiFiNetwork
// request to TLV.
func EncodeAddOrUpdateWiFiNetworkRequest(req *AddOrUpdateWiFiNetworkRequest) ([]byte, error) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)

	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return nil, err
	}

	// SSID (field 0)
	if err := w.PutBytes(tlv.ContextTag(0), req.SSID); err != nil {
		return nil, err
	}

	// Credentials (field 1)
	if err := w.PutBytes(tlv.ContextTag(1), req.Credentials); err != nil {
		return nil, err
	}

	// Breadcrumb (field 2)
	if err := w.PutUint(tlv.ContextTag(2), req.Breadcrumb); err != nil {
		return nil, err
	}

	// TimeoutMs (field 3)
	if err := w.PutUint(tlv.ContextTag(3), uint64(req.TimeoutMs)); err != nil {
		return nil, err
	}

	if err := w.EndContainer(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeRemoveNetworkRequest encodes a RemoveNetwork request to TLV.
func EncodeRemoveNetworkRequest(req *RemoveNetworkRequest) ([]byte, error) {
	return encodeNetworkIDRequest(req.NetworkID, req.Breadcrumb, req.TimeoutMs)
}

// EncodeConnectNetworkRequest encodes a ConnectNetwork request to TLV.
func EncodeConnectNetworkRequest(req *ConnectNetworkRequest) ([]byte, error) {
	return encodeNetworkIDRequest(req.NetworkID, req.Breadcrumb, req.TimeoutMs)
}

// encodeNetworkIDRequest encodes the shared (NetworkID, Breadcrumb,
// TimeoutMs) request shape.
func encodeNetworkIDRequest(networkID []byte, breadcrumb uint64, timeoutMs uint32) ([]byte, error) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)

	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return nil, err
	}

	// NetworkID (field 0)
	if err := w.PutBytes(tlv.ContextTag(0), networkID); err != nil {
		return nil, err
	}

	// Breadcrumb (field 1)
	if err := w.PutUint(tlv.ContextTag(1), breadcrumb); err != nil {
		return nil, err
	}

	// TimeoutMs (field 2)
	if err := w.PutUint(tlv.ContextTag(2), uint64(timeoutMs)); err != nil {
		return nil, err
	}

	if err := w.EndContainer(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeNetworkConfigResponse decodes a NetworkConfigResponse from TLV.
func DecodeNetworkConfigResponse(data []byte) (*NetworkConfigResponse, error) {
	r := tlv.NewReader(bytes.NewReader(data))

	if err := enterCommandStruct(r); err != nil {
		return nil, err
	}

	resp := &NetworkConfigResponse{}

	for {
		if err := r.Next(); err != nil {
			break
		}
		if r.IsEndOfContainer() {
			break
		}

		tag := r.Tag()
		if !tag.IsContext() {
			if err := r.Skip(); err != nil {
				return nil, err
			}
			continue
		}

		switch tag.TagNumber() {
		case 0: // NetworkingStatus
			val, err := r.Uint()
			if err != nil {
				return nil, err
			}
			resp.NetworkingStatus = Status(val)
		case 1: // DebugText
			val, err := r.String()
			if err != nil {
				return nil, err
			}
			resp.DebugText = val
		default:
			if err := r.Skip(); err != nil {
				return nil, err
			}
		}
	}

	if err := r.ExitContainer(); err != nil {
		return nil, err
	}

	return resp, nil
}

// DecodeConnectNetworkResponse decodes a ConnectNetworkResponse from TLV.
func DecodeConnectNetworkResponse(data []byte) (*ConnectNetworkResponse, error) {
	r := tlv.NewReader(bytes.NewReader(data))

	if err := enterCommandStruct(r); err != nil {
		return nil, err
	}

	resp := &ConnectNetworkResponse{}

	for {
		if err := r.Next(); err != nil {
			break
		}
		if r.IsEndOfContainer() {
			break
		}

		tag := r.Tag()
		if !tag.IsContext() {
			if err := r.Skip(); err != nil {
				return nil, err
			}
			continue
		}

		switch tag.TagNumber() {
		case 0: // NetworkingStatus
			val, err := r.Uint()
			if err != nil {
				return nil, err
			}
			resp.NetworkingStatus = Status(val)
		case 1: // DebugText
			val, err := r.String()
			if err != nil {
				return nil, err
			}
			resp.DebugText = val
		case 2: // ErrorValue
			val, err := r.Int()
			if err != nil {
				return nil, err
			}
			resp.ErrorValue = int32(val)
		default:
			if err := r.Skip(); err != nil {
				return nil, err
			}
		}
	}

	if err := r.ExitContainer(); err != nil {
		return nil, err
	}

	return resp, nil
}

// NetworkConfigResponseDecoder adapts DecodeNetworkConfigResponse to the
// im.DecodeFunc shape used by the response callback registry.
func NetworkConfigResponseDecoder(payload []byte) (interface{}, error) {
	resp, err := DecodeNetworkConfigResponse(payload)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ConnectNetworkResponseDecoder adapts DecodeConnectNetworkResponse to the
// im.DecodeFunc shape used by the response callback registry.
func ConnectNetworkResponseDecoder(payload []byte) (interface{}, error) {
	resp, err := DecodeConnectNetworkResponse(payload)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
