package networkcommissioning

import (
	"bytes"
	"context"

	"github.com/provnet/matter/pkg/datamodel"
	"github.com/provnet/matter/pkg/tlv"
)

// AddOrUpdateThreadNetworkRequest represents the AddOrUpdateThreadNetwork
// command request.
type AddOrUpdateThreadNetworkRequest struct {
	// OperationalDataset is the opaque Thread operational dataset blob.
	OperationalDataset []byte

	// Breadcrumb and TimeoutMs ride along for higher-layer bookkeeping
	// and are not interpreted by this cluster.
	Breadcrumb uint64
	TimeoutMs  uint32
}

// AddOrUpdateWiFiNetworkRequest represents the AddOrUpdateWiFiNetwork
// command request.
type AddOrUpdateWiFiNetworkRequest struct {
	SSID        []byte
	Credentials []byte
	Breadcrumb  uint64
	TimeoutMs   uint32
}

// RemoveNetworkRequest represents the RemoveNetwork command request.
type RemoveNetworkRequest struct {
	NetworkID  []byte
	Breadcrumb uint64
	TimeoutMs  uint32
}

// ConnectNetworkRequest represents the ConnectNetwork command request.
type ConnectNetworkRequest struct {
	NetworkID  []byte
	Breadcrumb uint64
	TimeoutMs  uint32
}

// NetworkConfigResponse is the response to add and remove commands.
type NetworkConfigResponse struct {
	NetworkingStatus Status
	DebugText        string
}

// ConnectNetworkResponse is the response to the ConnectNetwork command.
type ConnectNetworkResponse struct {
	NetworkingStatus Status
	DebugText        string

	// ErrorValue is a vendor-defined error detail. The platform layer
	// cannot yet report structured failure reasons, so it stays at its
	// default even when the status is UnknownError.
	ErrorValue int32
}

// handleAddOrUpdateThreadNetwork handles the AddOrUpdateThreadNetwork
// command.
//
// The dataset is parsed before a slot is allocated; the profile's network
// ID is the extended PAN ID extracted from it. Despite the command's
// "update" naming, a new free slot is always allocated: an existing
// profile with the same ID is never searched for or overwritten.
func (c *Cluster) handleAddOrUpdateThreadNetwork(ctx context.Context, req datamodel.InvokeRequest, r *tlv.Reader) ([]byte, error) {
	// Without a Thread backend the command behaves like an unrecognized
	// command at the protocol layer.
	if !c.config.Connector.SupportsThread() {
		return encodeNetworkConfigResponse(NetworkConfigResponse{NetworkingStatus: StatusUnknownError})
	}

	var addReq AddOrUpdateThreadNetworkRequest
	if err := decodeAddThreadRequest(r, &addReq); err != nil {
		return nil, err
	}

	status := StatusSuccess

	dataset, err := ParseOperationalDataset(addReq.OperationalDataset)
	if err != nil {
		c.logf("failed to parse Thread operational dataset: %v", err)
		status = StatusUnknownError
	} else {
		_, err = c.table.Add(dataset.ExtendedPANID(), ThreadPayload{Dataset: dataset.Bytes()})
		switch err {
		case nil:
			c.IncrementDataVersion()
		case ErrTableFull:
			status = StatusBoundsExceeded
		default:
			status = StatusUnknownError
		}
	}

	c.logf("AddOrUpdateThreadNetwork: %v", status)
	return encodeNetworkConfigResponse(NetworkConfigResponse{NetworkingStatus: status})
}

// handleAddOrUpdateWiFiNetwork handles the AddOrUpdateWiFiNetwork command.
//
// Length bounds are validated before any slot is touched; a violation
// leaves the table unchanged. The SSID doubles as the profile's network ID.
func (c *Cluster) handleAddOrUpdateWiFiNetwork(ctx context.Context, req datamodel.InvokeRequest, r *tlv.Reader) ([]byte, error) {
	if !c.config.Connector.SupportsWiFi() {
		return encodeNetworkConfigResponse(NetworkConfigResponse{NetworkingStatus: StatusUnknownError})
	}

	var addReq AddOrUpdateWiFiNetworkRequest
	if err := decodeAddWiFiRequest(r, &addReq); err != nil {
		return nil, err
	}

	status := StatusSuccess

	if len(addReq.SSID) > MaxWiFiSSIDLen || len(addReq.Credentials) > MaxWiFiCredentialsLen {
		status = StatusOutOfRange
	} else {
		payload := WiFiPayload{
			SSID:        addReq.SSID,
			Credentials: addReq.Credentials,
		}
		_, err := c.table.Add(addReq.SSID, payload)
		switch err {
		case nil:
			c.IncrementDataVersion()
			c.logf("WiFi provisioning data: SSID: %s", addReq.SSID)
		case ErrTableFull:
			status = StatusBoundsExceeded
		default:
			status = StatusUnknownError
		}
	}

	c.logf("AddOrUpdateWiFiNetwork: %v", status)
	return encodeNetworkConfigResponse(NetworkConfigResponse{NetworkingStatus: status})
}

// handleRemoveNetwork handles the RemoveNetwork command.
func (c *Cluster) handleRemoveNetwork(ctx context.Context, req datamodel.InvokeRequest, r *tlv.Reader) ([]byte, error) {
	var rmReq RemoveNetworkRequest
	if err := decodeNetworkIDRequest(r, &rmReq.NetworkID, &rmReq.Breadcrumb, &rmReq.TimeoutMs); err != nil {
		return nil, err
	}

	status := StatusSuccess
	if c.table.Remove(rmReq.NetworkID) {
		c.IncrementDataVersion()
	} else {
		status = StatusNetworkIDNotFound
	}

	c.logf("RemoveNetwork: %v", status)
	return encodeNetworkConfigResponse(NetworkConfigResponse{NetworkingStatus: status})
}

// handleConnectNetwork handles the ConnectNetwork command.
//
// The connector call may block for radio time, so only one connect is in
// flight at a time; the table itself is not locked across the call.
// Connector failure detail is collapsed to UnknownError: the platform
// layer cannot yet report structured failure reasons.
func (c *Cluster) handleConnectNetwork(ctx context.Context, req datamodel.InvokeRequest, r *tlv.Reader) ([]byte, error) {
	var connReq ConnectNetworkRequest
	if err := decodeNetworkIDRequest(r, &connReq.NetworkID, &connReq.Breadcrumb, &connReq.TimeoutMs); err != nil {
		return nil, err
	}

	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	status := StatusNetworkIDNotFound

	if idx, ok := c.table.Find(connReq.NetworkID); ok {
		profile, _ := c.table.Profile(idx)
		if err := c.config.Connector.Connect(profile); err != nil {
			c.logf("connect failed for network %x: %v", connReq.NetworkID, err)
			status = StatusUnknownError
		} else {
			c.table.SetEnabled(idx, true)
			c.IncrementDataVersion()
			status = StatusSuccess
		}
	}

	if status == StatusSuccess && c.config.DeviceControl != nil {
		c.config.DeviceControl.ConnectNetworkForOperational(connReq.NetworkID)
	}

	c.logf("ConnectNetwork: %v", status)
	return encodeConnectNetworkResponse(ConnectNetworkResponse{NetworkingStatus: status})
}

// enterCommandStruct positions the reader inside the command's anonymous
// structure.
func enterCommandStruct(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	if r.Type() != tlv.ElementTypeStruct {
		return datamodel.ErrInvalidCommand
	}
	return r.EnterContainer()
}

// decodeAddThreadRequest decodes an AddOrUpdateThreadNetwork request from TLV.
func decodeAddThreadRequest(r *tlv.Reader, req *AddOrUpdateThreadNetworkRequest) error {
	if err := enterCommandStruct(r); err != nil {
		return err
	}

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
				return err
			}
			continue
		}

		switch tag.TagNumber() {
		case 0: // OperationalDataset
			val, err := r.Bytes()
			if err != nil {
				return err
			}
			req.OperationalDataset = val
		case 1: // Breadcrumb
			val, err := r.Uint()
			if err != nil {
				return err
			}
			req.Breadcrumb = val
		case 2: // TimeoutMs
			val, err := r.Uint()
			if err != nil {
				return err
			}
			req.TimeoutMs = uint32(val)
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}

	return r.ExitContainer()
}

// decodeAddWiFiRequest decodes an AddOrUpdateWiFiNetwork request from TLV.
func decodeAddWiFiRequest(r *tlv.Reader, req *AddOrUpdateWiFiNetworkRequest) error {
	if err := enterCommandStruct(r); err != nil {
		return err
	}

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
				return err
			}
			continue
		}

		switch tag.TagNumber() {
		case 0: // SSID
			val, err := r.Bytes()
			if err != nil {
				return err
			}
			req.SSID = val
		case 1: // Credentials
			val, err := r.Bytes()
			if err != nil {
				return err
			}
			req.Credentials = val
		case 2: // Breadcrumb
			val, err := r.Uint()
			if err != nil {
				return err
			}
			req.Breadcrumb = val
		case 3: // TimeoutMs
			val, err := r.Uint()
			if err != nil {
				return err
			}
			req.TimeoutMs = uint32(val)
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}

	return r.ExitContainer()
}

// decodeNetworkIDRequest decodes the shared (NetworkID, Breadcrumb,
// TimeoutMs) request shape used by RemoveNetwork and ConnectNetwork.
func decodeNetworkIDRequest(r *tlv.Reader, networkID *[]byte, breadcrumb *uint64, timeoutMs *uint32) error {
	if err := enterCommandStruct(r); err != nil {
		return err
	}

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
				return err
			}
			continue
		}

		switch tag.TagNumber() {
		case 0: // NetworkID
			val, err := r.Bytes()
			if err != nil {
				return err
			}
			*networkID = val
		case 1: // Breadcrumb
			val, err := r.Uint()
			if err != nil {
				return err
			}
			*breadcrumb = val
		case 2: // TimeoutMs
			val, err := r.Uint()
			if err != nil {
				return err
			}
			*timeoutMs = uint32(val)
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}

	return r.ExitContainer()
}

// encodeNetworkConfigResponse encodes a NetworkConfigResponse to TLV.
func encodeNetworkConfigResponse(resp NetworkConfigResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)

	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return nil, err
	}

	// NetworkingStatus (field 0)
	if err := w.PutUint(tlv.ContextTag(0), uint64(resp.NetworkingStatus)); err != nil {
		return nil, err
	}

	// DebugText (field 1)
	if err := w.PutString(tlv.ContextTag(1), resp.DebugText); err != nil {
		return nil, err
	}

	if err := w.EndContainer(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// encodeConnectNetworkResponse encodes a ConnectNetworkResponse to TLV.
func encodeConnectNetworkResponse(resp ConnectNetworkResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)

	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		return nil, err
	}

	// NetworkingStatus (field 0)
	if err := w.PutUint(tlv.ContextTag(0), uint64(resp.NetworkingStatus)); err != nil {
		return nil, err
	}

	// DebugText (field 1)
	if err := w.PutString(tlv.ContextTag(1), resp.DebugText); err != nil {
		return nil, err
	}

	// ErrorValue (field 2)
	if err := w.PutInt(tlv.ContextTag(2), int64(resp.ErrorValue)); err != nil {
		return nil, err
	}

	if err := w.EndContainer(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
