package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// Global describes one global variable: a name, its
// type, and an initializer bytecode index (negative means the global is
// resolved externally, e.g. by the linker).
type Global struct {
	Name      StringIndex
	Type      TypeTag
	InitIndex BytecodeIndex
}

func (g Global) encode(w *binary.Writer) {
	w.WriteU32(g.Name)
	g.Type.encode(w)
	w.WriteI32(g.InitIndex)
}

func decodeGlobal(r *binary.Reader, path ...string) (Global, error) {
	name, ok := r.ReadU32()
	if !ok {
		return Global{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	tag, err := decodeTypeTag(r, append(path, "type")...)
	if err != nil {
		return Global{}, err
	}
	initIdx, ok := r.ReadI32()
	if !ok {
		return Global{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	return Global{Name: name, Type: tag, InitIndex: initIdx}, nil
}
