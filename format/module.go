package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// Magic is the single required magic byte at the start of every Maru
// module file.
const Magic byte = 0x4D

// Module is a fully decoded module file.
type Module struct {
	MajorVersion byte
	MinorVersion byte
	PatchVersion byte
	ModuleName   StringIndex

	Objects   []Object
	Functions []Function
	Globals   []Global

	Strings   StringTable
	Bytecode  BytecodeTable
	Locations LocationsMap
}

// New returns an empty module with version 0.0.0.
func New() *Module {
	return &Module{}
}

// AddObject appends an object declaration.
func (m *Module) AddObject(o Object) {
	m.Objects = append(m.Objects, o)
}

// AddFunction appends a function declaration.
func (m *Module) AddFunction(f Function) {
	m.Functions = append(m.Functions, f)
}

// AddGlobal appends a global variable declaration.
func (m *Module) AddGlobal(g Global) {
	m.Globals = append(m.Globals, g)
}

// AddString interns s and returns its StringIndex.
func (m *Module) AddString(s string) StringIndex {
	idx := StringIndex(len(m.Strings.Entries))
	m.Strings.Entries = append(m.Strings.Entries, s)
	return idx
}

// AddBytecode appends a bytecode blob and returns its BytecodeIndex.
func (m *Module) AddBytecode(code []byte) BytecodeIndex {
	idx := BytecodeIndex(len(m.Bytecode.Entries))
	m.Bytecode.Entries = append(m.Bytecode.Entries, code)
	return idx
}

// AddLocation appends a source-location entry and returns its index.
func (m *Module) AddLocation(loc Location) BytecodeIndex {
	idx := BytecodeIndex(len(m.Locations.Entries))
	m.Locations.Entries = append(m.Locations.Entries, loc)
	return idx
}

// GetString returns the interned string at index, which must be in
// range (out-of-range access is a fatal condition).
func (m *Module) GetString(index StringIndex) string {
	return m.Strings.Entries[index]
}

// GetBytecode returns the bytecode blob at index.
func (m *Module) GetBytecode(index BytecodeIndex) []byte {
	return m.Bytecode.Entries[index]
}

// GetLocation returns the source-location entry at index.
func (m *Module) GetLocation(index BytecodeIndex) Location {
	return m.Locations.Entries[index]
}

// ObjectByName finds the first declared object whose Name equals name,
// if any.
func (m *Module) ObjectByName(name StringIndex) (Object, bool) {
	for _, o := range m.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// FunctionByName finds the first declared function whose Name equals
// name, if any.
func (m *Module) FunctionByName(name StringIndex) (Function, bool) {
	for _, f := range m.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

// GlobalByName finds the first declared global whose Name equals name,
// if any.
func (m *Module) GlobalByName(name StringIndex) (Global, bool) {
	for _, g := range m.Globals {
		if g.Name == name {
			return g, true
		}
	}
	return Global{}, false
}

// Encode serializes m to the module file wire format.
func (m *Module) Encode() []byte {
	w := binary.NewWriter()
	w.WriteByte(Magic)
	w.WriteByte(m.MajorVersion)
	w.WriteByte(m.MinorVersion)
	w.WriteByte(m.PatchVersion)
	w.WriteU32(m.ModuleName)

	w.WriteU32(uint32(len(m.Objects)))
	for _, o := range m.Objects {
		o.encode(w)
	}

	w.WriteU32(uint32(len(m.Functions)))
	for _, f := range m.Functions {
		f.encode(w)
	}

	w.WriteU32(uint32(len(m.Globals)))
	for _, g := range m.Globals {
		g.encode(w)
	}

	m.Strings.encode(w)
	m.Bytecode.encode(w)
	m.Locations.encode(w)

	return w.Bytes()
}

// Decode parses a module file. It fails with a descriptive *errors.Error
// on truncated input, a bad magic byte, an unknown TypeTag discriminant,
// or an entry byte-count mismatch - never a panic.
func Decode(data []byte) (*Module, error) {
	r := binary.NewReader(data)

	magic, ok := r.ReadByte()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"header", "magic"}, 1, 0)
	}
	if magic != Magic {
		return nil, errors.BadMagic(magic)
	}

	major, ok := r.ReadByte()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"header", "version"}, 3, r.Len())
	}
	minor, ok := r.ReadByte()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"header", "version"}, 2, r.Len())
	}
	patch, ok := r.ReadByte()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"header", "version"}, 1, r.Len())
	}

	moduleName, ok := r.ReadU32()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"header", "module_name"}, 4, r.Len())
	}

	objectsLen, ok := r.ReadU32()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"objects_len"}, 4, r.Len())
	}
	objects := make([]Object, 0, objectsLen)
	for i := uint32(0); i < objectsLen; i++ {
		o, err := decodeObject(r, "objects")
		if err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}

	functionsLen, ok := r.ReadU32()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"functions_len"}, 4, r.Len())
	}
	functions := make([]Function, 0, functionsLen)
	for i := uint32(0); i < functionsLen; i++ {
		f, err := decodeFunction(r, "functions")
		if err != nil {
			return nil, err
		}
		functions = append(functions, f)
	}

	globalsLen, ok := r.ReadU32()
	if !ok {
		return nil, errors.Truncated(errors.PhaseDecode, []string{"globals_len"}, 4, r.Len())
	}
	globals := make([]Global, 0, globalsLen)
	for i := uint32(0); i < globalsLen; i++ {
		g, err := decodeGlobal(r, "globals")
		if err != nil {
			return nil, err
		}
		globals = append(globals, g)
	}

	strings, err := decodeStringTable(r)
	if err != nil {
		return nil, err
	}

	bytecode, err := decodeBytecodeTable(r)
	if err != nil {
		return nil, err
	}

	locations, err := decodeLocationsMap(r)
	if err != nil {
		return nil, err
	}

	return &Module{
		MajorVersion: major,
		MinorVersion: minor,
		PatchVersion: patch,
		ModuleName:   moduleName,
		Objects:      objects,
		Functions:    functions,
		Globals:      globals,
		Strings:      strings,
		Bytecode:     bytecode,
		Locations:    locations,
	}, nil
}
