package transport

import (
	"bytes"
	"testing"
	"time"
)

func TestPipeDelivery(t *testing.T) {
	p := NewPipe()
	defer p.Close()

	msg := []byte("ping")
	if _, err := p.Conn0().Write(msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	buf := make([]byte, 16)
	if err := p.Conn1().SetReadDeadline(time.Now().Add(time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	n, err := p.Conn1().Read(buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(buf[:n], msg) {
		t.Errorf("expected %q, got %q", msg, buf[:n])
	}
}

func TestPipeBidirectional(t *testing.T) {
	p := NewPipe()
	defer p.Close()

	if _, err := p.Conn1().Write([]byte("pong")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	buf := make([]byte, 16)
	if err := p.Conn0().SetReadDeadline(time.Now().Add(time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	n, err := p.Conn0().Read(buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(buf[:n]) != "pong" {
		t.Errorf("expected pong, got %q", buf[:n])
	}
}

func TestPipeCloseIdempotent(t *testing.T) {
	p := NewPipe()
	if err := p.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}
