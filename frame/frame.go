package frame

import "github.com/Ki11erRabbit/Maru/format"

// StackFrame is the per-call frame, the type named by the reserved
// format.FrameTypeSymbol; it carries no object Metadata header of its
// own. Prev/Next form the live call chain: Next is
// the owning edge (grown at call, shrunk at return), Prev is a weak
// back-edge used only for lookup, never for ownership.
type StackFrame struct {
	Prev *StackFrame
	Next *StackFrame

	// ReturnSlot holds the value a callee deposits for its caller to
	// read after the call returns.
	ReturnSlot uint64
	// ClosureSlot holds the active closure pointer for this call, or
	// zero if the current function is not a closure body.
	ClosureSlot uint64

	variables     []uint64
	variablesType []format.TypeTag
}

// New allocates a frame shell with var_count register slots. Both
// register arrays are allocated together and freed together; see
// FreeMemory.
func New(varCount uint32) *StackFrame {
	return &StackFrame{
		variables:     make([]uint64, varCount),
		variablesType: make([]format.TypeTag, varCount),
	}
}

// Reset reallocates the register arrays to hold varCount slots each,
// discarding any previous contents. Used by the allocator when handing
// a pooled frame shell back out for a new call.
func (f *StackFrame) Reset(varCount uint32) {
	f.variables = make([]uint64, varCount)
	f.variablesType = make([]format.TypeTag, varCount)
	f.ReturnSlot = 0
	f.ClosureSlot = 0
}

// Len reports the number of register slots, or 0 after FreeMemory.
func (f *StackFrame) Len() int {
	return len(f.variables)
}

// Get returns the raw 64-bit word and tracked type of register r.
// Out-of-range access panics; the caller is expected to have validated
// r against the function's variable count at decode time.
func (f *StackFrame) Get(r format.Register) (uint64, format.TypeTag) {
	return f.variables[r], f.variablesType[r]
}

// Set stores a raw 64-bit word and its tracked type into register r.
func (f *StackFrame) Set(r format.Register, value uint64, tag format.TypeTag) {
	f.variables[r] = value
	f.variablesType[r] = tag
}

// Clear overwrites register r with the zero value, per the Clear
// opcode's contract. It does not touch any refcount; callers must
// Destroy first if the slot held a live object reference.
func (f *StackFrame) Clear(r format.Register) {
	f.variables[r] = 0
	f.variablesType[r] = format.TypeTag{}
}

// HasMemory reports whether the register arrays are still live. Both
// arrays are non-nil together, or both nil together after FreeMemory.
func (f *StackFrame) HasMemory() bool {
	return f.variables != nil
}

// FreeMemory releases both parallel register arrays, enforcing the
// both-or-neither invariant. Calling it twice is a no-op.
func (f *StackFrame) FreeMemory() {
	f.variables = nil
	f.variablesType = nil
}

// Chain links next after f, the way a Call pushes a new frame onto the
// live call chain.
func (f *StackFrame) Chain(next *StackFrame) {
	next.Prev = f
	f.Next = next
}

// Unchain detaches f from its neighbors, the way a Return pops a frame
// off the live call chain, and returns the frame that becomes current
// (f's Prev), or nil if f was the root frame.
func (f *StackFrame) Unchain() *StackFrame {
	prev := f.Prev
	if prev != nil {
		prev.Next = f.Next
	}
	if f.Next != nil {
		f.Next.Prev = prev
	}
	f.Prev = nil
	f.Next = nil
	return prev
}
