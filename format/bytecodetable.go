package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// BytecodeTable holds every compiled bytecode blob in a module, each a
// self-contained instruction stream for a function body, a global
// initializer, or a closure.
type BytecodeTable struct {
	Entries [][]byte
}

func (t BytecodeTable) encode(w *binary.Writer) {
	w.WriteU32(uint32(len(t.Entries)))
	for _, e := range t.Entries {
		w.WriteU32(uint32(len(e)))
		w.WriteBytes(e)
	}
}

func decodeBytecodeTable(r *binary.Reader) (BytecodeTable, error) {
	count, ok := r.ReadU32()
	if !ok {
		return BytecodeTable{}, errors.Truncated(errors.PhaseDecode, []string{"BytecodeTable"}, 4, r.Len())
	}
	entries := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		length, ok := r.ReadU32()
		if !ok {
			return BytecodeTable{}, errors.Truncated(errors.PhaseDecode, []string{"BytecodeTable", "entry_len"}, 4, r.Len())
		}
		data, ok := r.ReadBytes(int(length))
		if !ok {
			return BytecodeTable{}, errors.Truncated(errors.PhaseDecode, []string{"BytecodeTable", "entry"}, int(length), r.Len())
		}
		buf := make([]byte, len(data))
		copy(buf, data)
		entries = append(entries, buf)
	}
	return BytecodeTable{Entries: entries}, nil
}
