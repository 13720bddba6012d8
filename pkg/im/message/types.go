// Package message defines the Interaction Model messages used by the
// commissioning flow: the timed request that opens a timed window and the
// status report that answers it.
package message

// Type aliases for Matter data types used in Interaction Model messages.

type (
	// NodeID is a 64-bit node identifier.
	NodeID uint64

	// EndpointID is a 16-bit endpoint identifier.
	EndpointID uint16

	// ClusterID is a 32-bit cluster identifier.
	ClusterID uint32

	// CommandID is a 32-bit command identifier.
	CommandID uint32

	// AttributeID is a 32-bit attribute identifier.
	AttributeID uint32

	// DataVersion is a 32-bit version number for attribute data.
	DataVersion uint32
)
