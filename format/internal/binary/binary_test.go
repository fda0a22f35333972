package binary_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

func TestWriteReadU32RoundTrip(t *testing.T) {
	w := binary.NewWriter()
	w.WriteU32(0xDEADBEEF)
	r := binary.NewReader(w.Bytes())
	got, ok := r.ReadU32()
	if !ok {
		t.Fatalf("ReadU32 failed")
	}
	if got != 0xDEADBEEF {
		t.Errorf("ReadU32() = %#x, want 0xDEADBEEF", got)
	}
}

func TestReadI32Negative(t *testing.T) {
	w := binary.NewWriter()
	w.WriteI32(-1)
	r := binary.NewReader(w.Bytes())
	got, ok := r.ReadI32()
	if !ok || got != -1 {
		t.Errorf("ReadI32() = %d, %v, want -1, true", got, ok)
	}
}

func TestReadU32Truncated(t *testing.T) {
	r := binary.NewReader([]byte{1, 2})
	if _, ok := r.ReadU32(); ok {
		t.Errorf("ReadU32 on 2 bytes should fail")
	}
}

func TestCStringRoundTrip(t *testing.T) {
	w := binary.NewWriter()
	w.WriteCString("hello")
	r := binary.NewReader(w.Bytes())
	got, ok := r.ReadCString()
	if !ok || got != "hello" {
		t.Errorf("ReadCString() = %q, %v, want %q, true", got, ok, "hello")
	}
	if r.Len() != 0 {
		t.Errorf("expected cursor to consume the NUL, %d bytes remain", r.Len())
	}
}

func TestEmptyCString(t *testing.T) {
	w := binary.NewWriter()
	w.WriteCString("")
	if !bytesEqual(w.Bytes(), []byte{0}) {
		t.Errorf("empty string should serialize to a single NUL byte, got %v", w.Bytes())
	}
}

func TestCStringMissingTerminator(t *testing.T) {
	r := binary.NewReader([]byte("no terminator"))
	if _, ok := r.ReadCString(); ok {
		t.Errorf("expected failure reading a string with no NUL terminator")
	}
}

func TestCStringInvalidUTF8(t *testing.T) {
	r := binary.NewReader([]byte{0xff, 0xfe, 0x00})
	if _, ok := r.ReadCString(); ok {
		t.Errorf("expected failure on invalid UTF-8")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
