package strtab_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/strtab"
)

func TestInternAndGet(t *testing.T) {
	table := strtab.New()
	idx := table.Intern("hello")
	got, err := table.Get(idx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "hello" {
		t.Errorf("Get(%d) = %q, want %q", idx, got, "hello")
	}
}

func TestGetCStringIncludesTerminator(t *testing.T) {
	table := strtab.New()
	idx := table.Intern("ab")
	bytes, err := table.GetCString(idx)
	if err != nil {
		t.Fatalf("GetCString: %v", err)
	}
	want := []byte{'a', 'b', 0x00}
	if len(bytes) != len(want) {
		t.Fatalf("GetCString length = %d, want %d", len(bytes), len(want))
	}
	for i := range want {
		if bytes[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, bytes[i], want[i])
		}
	}
}

func TestInternEmptyStringYieldsSingleNUL(t *testing.T) {
	table := strtab.New()
	idx := table.Intern("")
	bytes, err := table.GetCString(idx)
	if err != nil {
		t.Fatalf("GetCString: %v", err)
	}
	if len(bytes) != 1 || bytes[0] != 0x00 {
		t.Errorf("GetCString(empty) = %v, want [0x00]", bytes)
	}
}

func TestGetOutOfRange(t *testing.T) {
	table := strtab.New()
	if _, err := table.Get(0); err == nil {
		t.Error("Get on an empty table should fail")
	}
}

func TestFromStringTablePreservesOrder(t *testing.T) {
	src := format.StringTable{Entries: []string{"a", "b", "c"}}
	table := strtab.FromStringTable(src)
	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		got, err := table.Get(format.StringIndex(i))
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Get(%d) = %q, want %q", i, got, want)
		}
	}
}
