package networkcommissioning

import (
	"bytes"
	"errors"
	"sync"
)

// Profile and payload size limits.
const (
	// MaxNetworkIDLen is the maximum network ID length in bytes.
	MaxNetworkIDLen = 32

	// MaxThreadDatasetLen is the maximum Thread operational dataset length,
	// as defined by the Thread spec.
	MaxThreadDatasetLen = 254

	// MaxWiFiSSIDLen is the maximum WiFi SSID length in bytes.
	MaxWiFiSSIDLen = 32

	// MaxWiFiCredentialsLen is the maximum WiFi credentials length in bytes.
	MaxWiFiCredentialsLen = 64

	// DefaultMaxNetworks is the default profile table capacity.
	DefaultMaxNetworks = 4
)

// Store errors.
var (
	// ErrTableFull indicates the profile table has no free slot.
	ErrTableFull = errors.New("network table full")

	// ErrNetworkIDTooLong indicates a network ID exceeding MaxNetworkIDLen.
	ErrNetworkIDTooLong = errors.New("network ID too long")
)

// Payload holds the per-type credential data of a network profile.
// Exactly one concrete payload type exists per network type; a nil
// payload marks a free slot.
type Payload interface {
	isPayload()
}

// ThreadPayload carries a raw Thread operational dataset.
type ThreadPayload struct {
	// Dataset is the opaque operational dataset blob.
	Dataset []byte
}

func (ThreadPayload) isPayload() {}

// WiFiPayload carries WiFi provisioning data.
type WiFiPayload struct {
	SSID        []byte
	Credentials []byte
}

func (WiFiPayload) isPayload() {}

// EthernetPayload marks an Ethernet profile. Ethernet networks carry no
// credential data and cannot be connected through this cluster.
type EthernetPayload struct{}

func (EthernetPayload) isPayload() {}

// NetworkProfile is one entry of the profile table.
type NetworkProfile struct {
	// NetworkID uniquely identifies the profile among occupied slots.
	// For Thread this is the extended PAN ID, for WiFi the SSID bytes.
	NetworkID []byte

	// Enabled is set once a successful connect has been performed.
	Enabled bool

	// Payload holds the credential data. Nil for a free slot.
	Payload Payload
}

// NetworkTable is a fixed-capacity table of network credential profiles.
//
// Slots are allocated first-fit and never relocated; lookup returns the
// first occupied slot with a matching ID. Capacity exhaustion is a hard
// error, never an overwrite. Access is serialized internally so the table
// can be shared between the command handler and tests.
type NetworkTable struct {
	mu    sync.Mutex
	slots []NetworkProfile
}

// NewNetworkTable creates an empty table with the given capacity.
// A capacity of 0 or less uses DefaultMaxNetworks.
func NewNetworkTable(capacity int) *NetworkTable {
	if capacity <= 0 {
		capacity = DefaultMaxNetworks
	}
	return &NetworkTable{
		slots: make([]NetworkProfile, capacity),
	}
}

// Capacity returns the number of slots in the table.
func (t *NetworkTable) Capacity() int {
	return len(t.slots)
}

// Add writes a new profile into the first free slot and returns its index.
// Returns ErrTableFull when no slot is free. The network ID and payload
// buffers are copied so callers may reuse theirs.
func (t *NetworkTable) Add(networkID []byte, payload Payload) (int, error) {
	if len(networkID) > MaxNetworkIDLen {
		return 0, ErrNetworkIDTooLong
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i].Payload != nil {
			continue
		}
		t.slots[i] = NetworkProfile{
			NetworkID: append([]byte(nil), networkID...),
			Enabled:   false,
			Payload:   clonePayload(payload),
		}
		return i, nil
	}
	return 0, ErrTableFull
}

// Find returns the index of the first occupied slot whose network ID
// matches id exactly.
func (t *NetworkTable) Find(id []byte) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.find(id)
}

func (t *NetworkTable) find(id []byte) (int, bool) {
	for i := range t.slots {
		if t.slots[i].Payload == nil {
			continue
		}
		if len(t.slots[i].NetworkID) == len(id) && bytes.Equal(t.slots[i].NetworkID, id) {
			return i, true
		}
	}
	return 0, false
}

// Profile returns a copy of the profile at index i.
// The second return is false when i is out of range or the slot is free.
func (t *NetworkTable) Profile(i int) (NetworkProfile, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.slots) || t.slots[i].Payload == nil {
		return NetworkProfile{}, false
	}
	p := t.slots[i]
	p.NetworkID = append([]byte(nil), p.NetworkID...)
	p.Payload = clonePayload(p.Payload)
	return p, true
}

// SetEnabled marks the profile at index i as enabled or disabled.
// No-op for a free or out-of-range slot.
func (t *NetworkTable) SetEnabled(i int, enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.slots) || t.slots[i].Payload == nil {
		return
	}
	t.slots[i].Enabled = enabled
}

// Remove clears the first slot matching id back to free.
// Returns false when no slot matches.
func (t *NetworkTable) Remove(id []byte) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.find(id)
	if !ok {
		return false
	}
	t.slots[i] = NetworkProfile{}
	return true
}

// Count returns the number of occupied slots.
func (t *NetworkTable) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for i := range t.slots {
		if t.slots[i].Payload != nil {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of every slot, free slots included.
// Intended for inspection in tests and diagnostics.
func (t *NetworkTable) Snapshot() []NetworkProfile {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]NetworkProfile, len(t.slots))
	for i := range t.slots {
		out[i] = t.slots[i]
		out[i].NetworkID = append([]byte(nil), t.slots[i].NetworkID...)
		out[i].Payload = clonePayload(t.slots[i].Payload)
	}
	return out
}

func clonePayload(p Payload) Payload {
	switch v := p.(type) {
	case ThreadPayload:
		return ThreadPayload{Dataset: append([]byte(nil), v.Dataset...)}
	case WiFiPayload:
		return WiFiPayload{
			SSID:        append([]byte(nil), v.SSID...),
			Credentials: append([]byte(nil), v.Credentials...),
		}
	case EthernetPayload:
		return EthernetPayload{}
	default:
		return nil
	}
}
