package im

import (
	"bytes"
	"errors"
	"fmt"

	imsg "github.com/provnet/matter/pkg/im/message"
	"github.com/provnet/matter/pkg/message"
	"github.com/provnet/matter/pkg/tlv"
)

// ErrInvalidMessageType is returned by HandleTimedResponse when the
// inbound message is not a StatusResponse. This is a protocol violation,
// distinct from a StatusResponse carrying a failure code.
var ErrInvalidMessageType = errors.New("im: invalid message type")

// StatusError reports a StatusResponse that carried a non-success status.
type StatusError struct {
	Status imsg.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("im: status code received: %s (0x%02x)", e.Status, uint8(e.Status))
}

// SendTimedRequest opens a timed interaction on the exchange: it sends a
// TimedRequest carrying the requested window length and flags the exchange
// to expect exactly one response. The window's enforcement against late
// commands is the responder's job; the caller only brackets its next
// command with this handshake.
func SendTimedRequest(exch Exchange, timeoutMs uint16) error {
	msg := &imsg.TimedRequestMessage{Timeout: timeoutMs}

	var buf bytes.Buffer
	if err := msg.Encode(tlv.NewWriter(&buf)); err != nil {
		return err
	}

	return exch.SendMessage(uint8(imsg.OpcodeTimedRequest), buf.Bytes(), true)
}

// HandleTimedResponse validates the single response expected after
// SendTimedRequest. The message must be a StatusResponse (anything else
// fails with ErrInvalidMessageType) and its status must be Success
// (anything else fails with a StatusError carrying the received code).
// There is no retry path: one request, one response.
func HandleTimedResponse(header *message.ProtocolHeader, payload []byte) error {
	if header.ProtocolID != ProtocolID ||
		imsg.Opcode(header.ProtocolOpcode) != imsg.OpcodeStatusResponse {
		return ErrInvalidMessageType
	}

	var status imsg.StatusResponseMessage
	if err := status.Decode(tlv.NewReader(bytes.NewReader(payload))); err != nil {
		return err
	}

	if status.Status != imsg.StatusSuccess {
		return &StatusError{Status: status.Status}
	}

	return nil
}
