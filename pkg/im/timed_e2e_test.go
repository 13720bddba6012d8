package im

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"testing"

	imsg "github.com/provnet/matter/pkg/im/message"
	"github.com/provnet/matter/pkg/message"
	"github.com/provnet/matter/pkg/tlv"
	"github.com/provnet/matter/pkg/transport"
)

// connExchange frames IM messages over a datagram net.Conn for
// wire-level tests: 1-byte opcode, 2-byte little-endian length, payload,
// all in a single message.
type connExchange struct {
	conn net.Conn
}

func (e *connExchange) SendMessage(opcode uint8, payload []byte, expectResponse bool) error {
	frame := make([]byte, 3+len(payload))
	frame[0] = opcode
	binary.LittleEndian.PutUint16(frame[1:3], uint16(len(payload)))
	copy(frame[3:], payload)
	_, err := e.conn.Write(frame)
	return err
}

func readFrame(conn net.Conn) (uint8, []byte, error) {
	buf := make([]byte, 1500)
	n, err := conn.Read(buf)
	if err != nil {
		return 0, nil, err
	}
	if n < 3 {
		return 0, nil, fmt.Errorf("short frame: %d bytes", n)
	}
	length := int(binary.LittleEndian.Uint16(buf[1:3]))
	if n < 3+length {
		return 0, nil, fmt.Errorf("truncated frame: want %d payload bytes, got %d", length, n-3)
	}
	return buf[0], buf[3 : 3+length], nil
}

// respondWithStatus runs a minimal timed-request responder on conn: it
// validates the inbound request and answers with a single status report.
func respondWithStatus(t *testing.T, conn net.Conn, status imsg.Status) {
	t.Helper()

	opcode, payload, err := readFrame(conn)
	if err != nil {
		t.Errorf("responder read failed: %v", err)
		return
	}
	if imsg.Opcode(opcode) != imsg.OpcodeTimedRequest {
		t.Errorf("responder expected TimedRequest, got %v", imsg.Opcode(opcode))
		return
	}

	var req imsg.TimedRequestMessage
	if err := req.Decode(tlv.NewReader(bytes.NewReader(payload))); err != nil {
		t.Errorf("responder decode failed: %v", err)
		return
	}
	if req.Timeout == 0 {
		t.Error("responder saw zero timeout")
	}

	var buf bytes.Buffer
	resp := &imsg.StatusResponseMessage{Status: status}
	if err := resp.Encode(tlv.NewWriter(&buf)); err != nil {
		t.Errorf("responder encode failed: %v", err)
		return
	}

	exch := &connExchange{conn: conn}
	if err := exch.SendMessage(uint8(imsg.OpcodeStatusResponse), buf.Bytes(), false); err != nil {
		t.Errorf("responder send failed: %v", err)
	}
}

func runTimedHandshake(t *testing.T, status imsg.Status) error {
	t.Helper()

	p := transport.NewPipe()
	defer p.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		respondWithStatus(t, p.Conn1(), status)
	}()

	client := &connExchange{conn: p.Conn0()}
	if err := SendTimedRequest(client, 30000); err != nil {
		t.Fatalf("SendTimedRequest failed: %v", err)
	}

	opcode, payload, err := readFrame(p.Conn0())
	if err != nil {
		t.Fatalf("client read failed: %v", err)
	}
	<-done

	header := &message.ProtocolHeader{
		ProtocolID:     ProtocolID,
		ProtocolOpcode: opcode,
	}
	return HandleTimedResponse(header, payload)
}

func TestTimedHandshakeOverWire(t *testing.T) {
	if err := runTimedHandshake(t, imsg.StatusSuccess); err != nil {
		t.Errorf("expected handshake success, got %v", err)
	}
}

func TestTimedHandshakeOverWireFailureStatus(t *testing.T) {
	err := runTimedHandshake(t, imsg.StatusBusy)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != imsg.StatusBusy {
		t.Errorf("expected Busy, got %v", statusErr.Status)
	}
}
