// Package message defines the protocol header handed to payload handlers.
//
// Session establishment, message security, and exchange framing happen
// below this package; by the time a payload reaches a handler the header
// has been decoded and verified.
package message

// ProtocolID identifies a Matter protocol within a vendor namespace.
type ProtocolID uint16

// ProtocolHeader carries the protocol-level routing fields of a decoded
// message.
type ProtocolHeader struct {
	// ProtocolID identifies the protocol that defines the opcode.
	ProtocolID ProtocolID

	// ProtocolOpcode identifies the message type within the protocol.
	ProtocolOpcode uint8

	// ExchangeID identifies the exchange this message belongs to.
	ExchangeID uint16

	// Initiator indicates the message was sent by the exchange initiator.
	Initiator bool
}
