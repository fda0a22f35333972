package maru

import (
	"sync"

	"github.com/Ki11erRabbit/Maru/alloc"
	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/exec"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
	"github.com/Ki11erRabbit/Maru/funcs"
	"github.com/Ki11erRabbit/Maru/object"
	"github.com/Ki11erRabbit/Maru/strtab"
)

// Machine owns one of each of a loaded module's runtime tables: the
// frozen object descriptor table, the typed-pool allocator, the
// interned string table, and the function table, wired together into
// a single exec.Context. Everything is built and passed explicitly
// rather than reached for through a package-level global; New builds
// an independent Machine per loaded module.
type Machine struct {
	Module *format.Module

	Descs     *object.DescTable
	Alloc     *alloc.Allocator
	Strings   *strtab.Table
	Functions *funcs.Table

	ctx *exec.Context
}

// New builds a Machine from a decoded module: it populates and
// freezes the descriptor table from the module's declared objects,
// interns the module's string table, and resolves the function
// table's bytecode bodies.
func New(m *format.Module) (*Machine, error) {
	descs := object.NewDescTable()
	for _, o := range m.Objects {
		descs.Push(o)
	}
	descs.Freeze()

	allocator := alloc.New(descs)
	strings := strtab.FromStringTable(m.Strings)

	functions, err := funcs.FromModule(m)
	if err != nil {
		return nil, err
	}

	ctx := exec.NewContext(descs, allocator, strings, functions, len(m.Globals))

	return &Machine{
		Module:    m,
		Descs:     descs,
		Alloc:     allocator,
		Strings:   strings,
		Functions: functions,
		ctx:       ctx,
	}, nil
}

// Load decodes a module file and builds a Machine for it in one step.
func Load(data []byte) (*Machine, error) {
	m, err := format.Decode(data)
	if err != nil {
		return nil, err
	}
	return New(m)
}

// NewFrame allocates a stack frame with varCount registers through the
// Machine's allocator, the entry point for pushing a new call onto the
// live call chain.
func (m *Machine) NewFrame(varCount uint32) *frame.StackFrame {
	return m.Alloc.AllocateStackFrame(varCount)
}

// Step dispatches exactly one decoded instruction against f, applying
// its register/object/global effects and reporting what control-flow
// action the caller should take next. Sequencing instructions and
// following the reported Step remains the caller's responsibility; see
// the exec package doc for why.
func (m *Machine) Step(f *frame.StackFrame, inst bytecode.Instruction) (exec.Step, error) {
	return exec.Dispatch(m.ctx, f, inst)
}

// Decode decodes every instruction in a function's bytecode body.
func (m *Machine) Decode(entry *funcs.Entry) ([]bytecode.Instruction, error) {
	resolved, err := entry.GetFunction()
	if err != nil {
		return nil, err
	}
	return bytecode.DecodeAll(resolved.Bytecode)
}

// defaultOnce guards the package-level default Machine's single construction,
// for callers that want one process-wide instance instead of an
// explicit Machine per load.
var (
	defaultOnce    sync.Once
	defaultMachine *Machine
	defaultErr     error
)

// Default lazily loads data into a single process-wide Machine,
// building it only on the first call. Most callers should prefer New
// or Load and pass the Machine around explicitly; Default exists for
// the common case of a process that only ever loads one module.
func Default(data []byte) (*Machine, error) {
	defaultOnce.Do(func() {
		defaultMachine, defaultErr = Load(data)
	})
	return defaultMachine, defaultErr
}
