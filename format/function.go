package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// Function describes one function entry: its name, a
// monomorphized name, parameter/return types, a bytecode table index
// (negative means a native body), and the total register count (=
// parameters + locals) a call allocates in its stack frame.
type Function struct {
	Name         StringIndex
	TypeName     StringIndex
	Parameters   []TypeTag
	ReturnType   TypeTag
	BytecodeIdx  BytecodeIndex
	VariableCount uint32
}

// IsNative reports whether the function's body is a native
// (non-bytecode) implementation.
func (f Function) IsNative() bool {
	return f.BytecodeIdx < 0
}

func (f Function) encode(w *binary.Writer) {
	w.WriteU32(f.Name)
	w.WriteU32(f.TypeName)
	w.WriteU32(uint32(len(f.Parameters)))
	for _, p := range f.Parameters {
		p.encode(w)
	}
	f.ReturnType.encode(w)
	w.WriteI32(f.BytecodeIdx)
	w.WriteU32(f.VariableCount)
}

func decodeFunction(r *binary.Reader, path ...string) (Function, error) {
	name, ok := r.ReadU32()
	if !ok {
		return Function{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	typeName, ok := r.ReadU32()
	if !ok {
		return Function{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	paramsLen, ok := r.ReadU32()
	if !ok {
		return Function{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	params := make([]TypeTag, 0, paramsLen)
	for i := uint32(0); i < paramsLen; i++ {
		p, err := decodeTypeTag(r, append(path, "parameter")...)
		if err != nil {
			return Function{}, err
		}
		params = append(params, p)
	}
	retType, err := decodeTypeTag(r, append(path, "return_type")...)
	if err != nil {
		return Function{}, err
	}
	bcIdx, ok := r.ReadI32()
	if !ok {
		return Function{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	variables, ok := r.ReadU32()
	if !ok {
		return Function{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	return Function{
		Name:          name,
		TypeName:      typeName,
		Parameters:    params,
		ReturnType:    retType,
		BytecodeIdx:   bcIdx,
		VariableCount: variables,
	}, nil
}
