package tlv

import (
	"bytes"
	"io"
	"testing"
)

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xFF, 0x100, 0xFFFF, 0x10000, 0xFFFFFFFF, 0x100000000}

	for _, v := range values {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.PutUint(Anonymous(), v); err != nil {
			t.Fatalf("PutUint(%d) failed: %v", v, err)
		}

		r := NewReader(bytes.NewReader(buf.Bytes()))
		if err := r.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got, err := r.Uint()
		if err != nil {
			t.Fatalf("Uint failed: %v", err)
		}
		if got != v {
			t.Errorf("expected %d, got %d", v, got)
		}
	}
}

func TestUintMinimalWidth(t *testing.T) {
	tests := []struct {
		value uint64
		size  int // control byte + value bytes
	}{
		{0x00, 2},
		{0xFF, 2},
		{0x100, 3},
		{0xFFFF, 3},
		{0x10000, 5},
		{0x100000000, 9},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.PutUint(Anonymous(), tt.value); err != nil {
			t.Fatalf("PutUint(%#x) failed: %v", tt.value, err)
		}
		if buf.Len() != tt.size {
			t.Errorf("value %#x: expected %d bytes, got %d", tt.value, tt.size, buf.Len())
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{0, -1, 127, -128, 129, -32768, 1 << 20, -(1 << 40)}

	for _, v := range values {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.PutInt(Anonymous(), v); err != nil {
			t.Fatalf("PutInt(%d) failed: %v", v, err)
		}

		r := NewReader(bytes.NewReader(buf.Bytes()))
		if err := r.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got, err := r.Int()
		if err != nil {
			t.Fatalf("Int failed: %v", err)
		}
		if got != v {
			t.Errorf("expected %d, got %d", v, got)
		}
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.PutBool(ContextTag(3), v); err != nil {
			t.Fatalf("PutBool failed: %v", err)
		}

		r := NewReader(bytes.NewReader(buf.Bytes()))
		if err := r.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if !r.Tag().IsContext() || r.Tag().TagNumber() != 3 {
			t.Errorf("expected context tag 3, got %v", r.Tag())
		}
		got, err := r.Bool()
		if err != nil {
			t.Fatalf("Bool failed: %v", err)
		}
		if got != v {
			t.Errorf("expected %v, got %v", v, got)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		{0x01},
		bytes.Repeat([]byte{0xAB}, 254),
		bytes.Repeat([]byte{0xCD}, 300), // needs 2-octet length
	}

	for _, p := range payloads {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.PutBytes(ContextTag(0), p); err != nil {
			t.Fatalf("PutBytes failed: %v", err)
		}

		r := NewReader(bytes.NewReader(buf.Bytes()))
		if err := r.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got, err := r.Bytes()
		if err != nil {
			t.Fatalf("Bytes failed: %v", err)
		}
		if !bytes.Equal(got, p) {
			t.Errorf("expected %x, got %x", p, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.PutString(ContextTag(1), "HomeNet"); err != nil {
		t.Fatalf("PutString failed: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	got, err := r.String()
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if got != "HomeNet" {
		t.Errorf("expected HomeNet, got %q", got)
	}
}

func TestInvalidUTF8Rejected(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.PutString(Anonymous(), string([]byte{0xFF, 0xFE})); err != ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestStructureRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.StartStructure(Anonymous()); err != nil {
		t.Fatalf("StartStructure failed: %v", err)
	}
	if err := w.PutUint(ContextTag(0), 30000); err != nil {
		t.Fatalf("PutUint failed: %v", err)
	}
	if err := w.PutBytes(ContextTag(1), []byte{0xDE, 0xAD}); err != nil {
		t.Fatalf("PutBytes failed: %v", err)
	}
	if err := w.EndContainer(); err != nil {
		t.Fatalf("EndContainer failed: %v", err)
	}
	if w.ContainerDepth() != 0 {
		t.Errorf("expected depth 0, got %d", w.ContainerDepth())
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if r.Type() != ElementTypeStruct {
		t.Fatalf("expected struct, got %v", r.Type())
	}
	if err := r.EnterContainer(); err != nil {
		t.Fatalf("EnterContainer failed: %v", err)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	v, err := r.Uint()
	if err != nil {
		t.Fatalf("Uint failed: %v", err)
	}
	if v != 30000 {
		t.Errorf("expected 30000, got %d", v)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	b, err := r.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0xDE, 0xAD}) {
		t.Errorf("unexpected bytes %x", b)
	}

	if err := r.ExitContainer(); err != nil {
		t.Fatalf("ExitContainer failed: %v", err)
	}
	if err := r.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestSkipNestedContainer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.StartStructure(Anonymous()); err != nil {
		t.Fatal(err)
	}
	if err := w.StartArray(ContextTag(0)); err != nil {
		t.Fatal(err)
	}
	if err := w.PutUint(Anonymous(), 1); err != nil {
		t.Fatal(err)
	}
	if err := w.PutUint(Anonymous(), 2); err != nil {
		t.Fatal(err)
	}
	if err := w.EndContainer(); err != nil {
		t.Fatal(err)
	}
	if err := w.PutUint(ContextTag(1), 42); err != nil {
		t.Fatal(err)
	}
	if err := w.EndContainer(); err != nil {
		t.Fatal(err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if err := r.EnterContainer(); err != nil {
		t.Fatal(err)
	}
	if err := r.Next(); err != nil {
		t.Fatal(err)
	}
	// Skip the array without reading its elements.
	if err := r.Skip(); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if err := r.Next(); err != nil {
		t.Fatal(err)
	}
	v, err := r.Uint()
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Errorf("expected 42 after skipping array, got %d", v)
	}
}

func TestEndContainerWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.EndContainer(); err != ErrNotInContainer {
		t.Errorf("expected ErrNotInContainer, got %v", err)
	}
}

func TestReadValueTwice(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.PutUint(Anonymous(), 7); err != nil {
		t.Fatal(err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Uint(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Uint(); err != ErrValueAlreadyRead {
		t.Errorf("expected ErrValueAlreadyRead, got %v", err)
	}
}
