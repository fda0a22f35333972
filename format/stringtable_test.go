package format_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
)

func TestEmptyModuleHasEmptyStringTablePrefix(t *testing.T) {
	m := format.New()
	data := m.Encode()
	// objects_len, functions_len, globals_len then the string table's
	// own 4-byte zero count sit right after the 8-byte header.
	stringsOffset := 8 + 4 + 4 + 4
	got := data[stringsOffset : stringsOffset+4]
	want := []byte{0, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("string table length prefix = %v, want %v", got, want)
		}
	}
}

func TestSingleEmptyStringEntry(t *testing.T) {
	m := format.New()
	m.AddString("")
	data := m.Encode()

	stringsOffset := 8 + 4 + 4 + 4
	count := data[stringsOffset : stringsOffset+4]
	if count[0] != 1 || count[1] != 0 || count[2] != 0 || count[3] != 0 {
		t.Fatalf("string table count = %v, want [1 0 0 0]", count)
	}
	entryByte := data[stringsOffset+4]
	if entryByte != 0x00 {
		t.Fatalf("empty string entry byte = %#x, want 0x00", entryByte)
	}
}

func TestStringTableRoundTrip(t *testing.T) {
	m := format.New()
	idx := m.AddString("a function name")
	decoded, err := format.Decode(m.Encode())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.GetString(idx) != "a function name" {
		t.Errorf("GetString(%d) = %q, want %q", idx, decoded.GetString(idx), "a function name")
	}
}
