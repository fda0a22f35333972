package strtab

import (
	"sync"

	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
)

// entry is one interned string: its UTF-8 bytes plus a trailing NUL,
// the NUL not counted toward the entry's logical length.
type entry struct {
	bytes []byte // len(bytes) == length+1; bytes[length] == 0x00
}

// Table is the runtime string interning table. Entries are appended
// once and never moved or freed; a Table may be shared freely across
// goroutines once populated, since reads never race with the append
// that would change a slice's backing array underneath a reader
// holding an already-returned index.
type Table struct {
	mu      sync.RWMutex
	entries []entry
}

// New returns an empty interning table.
func New() *Table {
	return &Table{}
}

// FromStringTable builds a Table by interning every entry of a decoded
// format.StringTable in order, so StringIndex values assigned at
// module-load time line up with the table's own indices.
func FromStringTable(t format.StringTable) *Table {
	table := New()
	for _, s := range t.Entries {
		table.Intern(s)
	}
	return table
}

// Intern stores s, appending a C-compatible NUL terminator, and
// returns its StringIndex. Interning the same Go string value twice
// yields two distinct entries and two distinct indices; string tables
// are append-only and do not deduplicate (matching the wire format's
// declaration-ordered StringTable).
func (t *Table) Intern(s string) format.StringIndex {
	t.mu.Lock()
	defer t.mu.Unlock()

	buf := make([]byte, len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0x00

	idx := format.StringIndex(len(t.entries))
	t.entries = append(t.entries, entry{bytes: buf})
	return idx
}

// Get returns the interned string at idx as a Go string borrow (not
// including the trailing NUL). Out-of-range access is a fatal symbol
// lookup and is reported as an error rather than a panic, leaving the
// fatal decision to the caller.
func (t *Table) Get(idx format.StringIndex) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(idx) >= len(t.entries) {
		return "", errors.OutOfRange(errors.PhaseDispatch, []string{"strtab"}, "string_index", int(idx), len(t.entries))
	}
	e := t.entries[idx]
	return string(e.bytes[:len(e.bytes)-1]), nil
}

// GetCString returns the interned string's bytes including the
// trailing NUL, for native builtins expecting a C-compatible pointer.
func (t *Table) GetCString(idx format.StringIndex) ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(idx) >= len(t.entries) {
		return nil, errors.OutOfRange(errors.PhaseDispatch, []string{"strtab"}, "string_index", int(idx), len(t.entries))
	}
	return t.entries[idx].bytes, nil
}

// Len reports how many strings are interned.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
