// Package im implements the client-side Interaction Model operations used
// during commissioning: the timed-request handshake that brackets
// sensitive commands, and the callback registry that correlates
// asynchronous invoke responses with their pending callers.
//
// Session establishment and reliable-message delivery are provided by the
// surrounding stack; this package talks to them through the Exchange
// interface.
package im

import "github.com/provnet/matter/pkg/message"

// ProtocolID is the Interaction Model protocol ID.
const ProtocolID message.ProtocolID = 0x0001

// Exchange is the reliable-messaging conversation a request is sent on.
// Implementations queue the message for transmission; delivery of the
// peer's response comes back through the exchange's delegate.
type Exchange interface {
	// SendMessage queues an IM message on the exchange. When
	// expectResponse is set the exchange stays open for exactly one
	// response message.
	SendMessage(opcode uint8, payload []byte, expectResponse bool) error
}
