package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// StringTable holds every interned string literal in a module, in
// declaration order. Entries serialize as raw UTF-8
// terminated by a single NUL byte; an empty table serializes to a
// four-byte zero length prefix, and an empty entry serializes to a
// single NUL.
type StringTable struct {
	Entries []string
}

func (t StringTable) encode(w *binary.Writer) {
	w.WriteU32(uint32(len(t.Entries)))
	for _, s := range t.Entries {
		w.WriteCString(s)
	}
}

func decodeStringTable(r *binary.Reader) (StringTable, error) {
	count, ok := r.ReadU32()
	if !ok {
		return StringTable{}, errors.Truncated(errors.PhaseDecode, []string{"string_table"}, 4, r.Len())
	}
	entries := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		s, ok := r.ReadCString()
		if !ok {
			return StringTable{}, errors.New(errors.PhaseDecode, errors.KindInvalidUTF8).
				Path("string_table", "entry").
				Detail("truncated or non-UTF-8 entry").
				Build()
		}
		entries = append(entries, s)
	}
	return StringTable{Entries: entries}, nil
}
