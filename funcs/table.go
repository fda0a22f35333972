package funcs

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
)

// Table is the FunctionSymbol-indexed vector of function entries for a
// loaded module.
type Table struct {
	entries []*Entry
}

// FromModule builds a Table from a decoded module's function list,
// resolving each non-native entry's BytecodeIdx against the module's
// bytecode table up front so GetFunction never needs the module again.
func FromModule(m *format.Module) (*Table, error) {
	entries := make([]*Entry, len(m.Functions))
	for i, f := range m.Functions {
		e := &Entry{
			Name:          f.Name,
			TypeName:      f.TypeName,
			Parameters:    f.Parameters,
			ReturnType:    f.ReturnType,
			BytecodeIdx:   f.BytecodeIdx,
			VariableCount: f.VariableCount,
		}
		if f.BytecodeIdx >= 0 {
			if int(f.BytecodeIdx) >= len(m.Bytecode.Entries) {
				return nil, errors.OutOfRange(errors.PhaseFunctable, []string{"functions", "bytecode_index"},
					"bytecode_index", int(f.BytecodeIdx), len(m.Bytecode.Entries))
			}
			e.bytecode = m.Bytecode.Entries[f.BytecodeIdx]
		}
		entries[i] = e
	}
	return &Table{entries: entries}, nil
}

// Get returns the entry for symbol. Out-of-range access is fatal,
// reported as an error so the caller can log and abort.
func (t *Table) Get(symbol format.FunctionSymbol) (*Entry, error) {
	if int(symbol) >= len(t.entries) {
		return nil, errors.OutOfRange(errors.PhaseFunctable, []string{"functable"}, "function_symbol", int(symbol), len(t.entries))
	}
	return t.entries[symbol], nil
}

// Len reports how many functions are registered.
func (t *Table) Len() int {
	return len(t.entries)
}
