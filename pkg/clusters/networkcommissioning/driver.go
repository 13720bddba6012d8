package networkcommissioning

import "errors"

// Connector errors.
var (
	// ErrNotImplemented indicates a profile type with no connect path
	// (Ethernet, or a slot that was never provisioned).
	ErrNotImplemented = errors.New("connect not implemented for network type")

	// ErrBackendUnsupported indicates the backend's driver is absent.
	ErrBackendUnsupported = errors.New("network backend unsupported")
)

// ThreadDriver applies Thread provisioning to the platform's Thread stack.
// Calls may block for radio or driver I/O time.
type ThreadDriver interface {
	// SetThreadEnabled enables or disables Thread networking.
	SetThreadEnabled(enabled bool) error

	// SetThreadProvision installs a new operational dataset.
	SetThreadProvision(dataset []byte) error
}

// WiFiDriver applies WiFi provisioning to the platform's WiFi stack.
//
// SSID and credentials are passed as strings because the platform
// provisioning interface treats them as null-terminated text; binary
// credentials containing embedded null bytes are not fully supported
// by that contract.
type WiFiDriver interface {
	// ProvisionWiFi connects to the network with the given SSID and
	// credentials.
	ProvisionWiFi(ssid, credentials string) error
}

// Connector applies one profile's credentials to the underlying network
// stack, dispatching on the profile's payload type. A nil driver means
// the corresponding backend does not exist on this platform.
type Connector struct {
	Thread ThreadDriver
	WiFi   WiFiDriver
}

// SupportsThread reports whether a Thread backend is present.
func (c *Connector) SupportsThread() bool {
	return c != nil && c.Thread != nil
}

// SupportsWiFi reports whether a WiFi backend is present.
func (c *Connector) SupportsWiFi() bool {
	return c != nil && c.WiFi != nil
}

// Connect applies the profile's credentials.
//
// Thread runs disable, provision, enable in order; the first failing
// step aborts the sequence with its error and earlier steps are not
// rolled back. Undefined or Ethernet profiles fail with
// ErrNotImplemented.
func (c *Connector) Connect(profile NetworkProfile) error {
	switch payload := profile.Payload.(type) {
	case ThreadPayload:
		if !c.SupportsThread() {
			return ErrBackendUnsupported
		}
		if err := c.Thread.SetThreadEnabled(false); err != nil {
			return err
		}
		if err := c.Thread.SetThreadProvision(payload.Dataset); err != nil {
			return err
		}
		return c.Thread.SetThreadEnabled(true)

	case WiFiPayload:
		if !c.SupportsWiFi() {
			return ErrBackendUnsupported
		}
		return c.WiFi.ProvisionWiFi(string(payload.SSID), string(payload.Credentials))

	default:
		return ErrNotImplemented
	}
}

// DeviceControl receives the operational-path notification after a
// successful connect.
type DeviceControl interface {
	// ConnectNetworkForOperational makes the given network the active
	// operational path. Fired exactly once per successful connect.
	ConnectNetworkForOperational(networkID []byte)
}
