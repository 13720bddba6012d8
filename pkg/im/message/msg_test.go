package message

import (
	"bytes"
	"testing"

	"github.com/provnet/matter/pkg/tlv"
)

func TestTimedRequestRoundTrip(t *testing.T) {
	msg := &TimedRequestMessage{Timeout: 30000}

	var buf bytes.Buffer
	if err := msg.Encode(tlv.NewWriter(&buf)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded TimedRequestMessage
	if err := decoded.Decode(tlv.NewReader(bytes.NewReader(buf.Bytes()))); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Timeout != 30000 {
		t.Errorf("expected timeout 30000, got %d", decoded.Timeout)
	}
}

func TestTimedRequestCompactEncoding(t *testing.T) {
	// Anonymous struct (1), context-tagged uint16 (1 control + 1 tag + 2
	// value), end-of-container (1): 6 bytes total.
	msg := &TimedRequestMessage{Timeout: 30000}

	var buf bytes.Buffer
	if err := msg.Encode(tlv.NewWriter(&buf)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if buf.Len() != 6 {
		t.Errorf("expected 6-byte envelope, got %d bytes: %x", buf.Len(), buf.Bytes())
	}
}

func TestTimedRequestMissingTimeout(t *testing.T) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)
	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		t.Fatal(err)
	}
	if err := w.EndContainer(); err != nil {
		t.Fatal(err)
	}

	var decoded TimedRequestMessage
	if err := decoded.Decode(tlv.NewReader(bytes.NewReader(buf.Bytes()))); err != ErrMissingField {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestTimedRequestNotAStruct(t *testing.T) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)
	if err := w.PutUint(tlv.Anonymous(), 5); err != nil {
		t.Fatal(err)
	}

	var decoded TimedRequestMessage
	if err := decoded.Decode(tlv.NewReader(bytes.NewReader(buf.Bytes()))); err != ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestStatusResponseRoundTrip(t *testing.T) {
	for _, status := range []Status{StatusSuccess, StatusFailure, StatusNotFound} {
		msg := &StatusResponseMessage{Status: status}

		var buf bytes.Buffer
		if err := msg.Encode(tlv.NewWriter(&buf)); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		var decoded StatusResponseMessage
		if err := decoded.Decode(tlv.NewReader(bytes.NewReader(buf.Bytes()))); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if decoded.Status != status {
			t.Errorf("expected status %v, got %v", status, decoded.Status)
		}
	}
}

func TestStatusResponseSkipsUnknownFields(t *testing.T) {
	var buf bytes.Buffer
	w := tlv.NewWriter(&buf)
	if err := w.StartStructure(tlv.Anonymous()); err != nil {
		t.Fatal(err)
	}
	if err := w.PutUint(tlv.ContextTag(0), uint64(StatusBusy)); err != nil {
		t.Fatal(err)
	}
	if err := w.PutBytes(tlv.ContextTag(7), []byte{0x01, 0x02}); err != nil {
		t.Fatal(err)
	}
	if err := w.EndContainer(); err != nil {
		t.Fatal(err)
	}

	var decoded StatusResponseMessage
	if err := decoded.Decode(tlv.NewReader(bytes.NewReader(buf.Bytes()))); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Status != StatusBusy {
		t.Errorf("expected Busy, got %v", decoded.Status)
	}
}

func TestStatusStrings(t *testing.T) {
	if StatusSuccess.String() != "Success" {
		t.Errorf("unexpected name %q", StatusSuccess.String())
	}
	if StatusInvalidValue.String() != "InvalidValue" {
		t.Errorf("unexpected name %q", StatusInvalidValue.String())
	}
	if !StatusSuccess.IsSuccess() || StatusSuccess.IsFailure() {
		t.Error("Success misclassified")
	}
	if StatusNotFound.IsSuccess() || !StatusNotFound.IsFailure() {
		t.Error("NotFound misclassified")
	}
}
