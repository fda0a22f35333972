package funcs

import (
	"sync/atomic"

	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
)

// Native is the shape every native builtin conforms to: a function
// whose only parameter is the current stack frame. Call arguments are
// never passed explicitly; they already sit in f's register file by the
// convention the Call instruction establishes before invoking the body.
type Native func(f *frame.StackFrame)

// Kind discriminates a resolved function body.
type Kind int

const (
	// KindNative means the call site should invoke the resolved native
	// pointer directly.
	KindNative Kind = iota
	// KindBytecode means the call site should dispatch the returned
	// bytecode bytes through the instruction decoder.
	KindBytecode
)

// Resolved is the two-case result of resolving a function entry's
// body: either a native function pointer or a raw bytecode blob.
type Resolved struct {
	Kind     Kind
	Native   Native
	Bytecode []byte
}

// Entry is one function table row. The resolved native pointer is
// written at most once, by the linker, and the call counter grows with
// each successful GetFunction; everything else is immutable after the
// table is built.
type Entry struct {
	Name          format.StringIndex
	TypeName      format.StringIndex
	Parameters    []format.TypeTag
	ReturnType    format.TypeTag
	BytecodeIdx   format.BytecodeIndex
	VariableCount uint32

	bytecode  []byte // resolved from BytecodeIdx at table build time, nil if IsNative
	resolved  atomic.Pointer[Native]
	callCount atomic.Int64
}

// IsNative reports whether the entry's declared body is native rather
// than bytecode.
func (e *Entry) IsNative() bool {
	return e.BytecodeIdx < 0
}

// SetFunctionPtr installs the entry's native function pointer. This is
// a one-shot write: calling it a second time is a programmer error
// (the linker resolving the same symbol twice) and panics. Modeled
// with a sync/atomic compare-and-swap rather than an unsynchronized
// cell, so a racing double-resolve panics instead of silently
// corrupting the pointer.
func (e *Entry) SetFunctionPtr(fn Native) {
	if !e.resolved.CompareAndSwap(nil, &fn) {
		panic("funcs: SetFunctionPtr called twice on the same entry")
	}
}

// GetFunction returns the entry's resolved body: the native pointer if
// SetFunctionPtr has been called, otherwise the raw bytecode bytes.
// Calling GetFunction on a native entry before resolution is an error,
// since there is nothing yet to invoke.
func (e *Entry) GetFunction() (Resolved, error) {
	if fn := e.resolved.Load(); fn != nil {
		e.callCount.Add(1)
		return Resolved{Kind: KindNative, Native: *fn}, nil
	}
	if e.IsNative() {
		return Resolved{}, errors.New(errors.PhaseFunctable, errors.KindInvariant).
			Path("functable", "entry").
			Detail("native function %d has not been resolved", e.Name).
			Build()
	}
	e.callCount.Add(1)
	return Resolved{Kind: KindBytecode, Bytecode: e.bytecode}, nil
}

// CallCount reports how many times GetFunction has successfully
// resolved this entry's body, for future call-site tiering decisions.
func (e *Entry) CallCount() int64 {
	return e.callCount.Load()
}
