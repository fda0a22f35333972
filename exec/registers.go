package exec

import (
	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
)

func loadImmediate(f *frame.StackFrame, inst bytecode.Instruction) {
	switch inst.Op {
	case bytecode.Load8:
		f.Set(inst.Dst, uint64(inst.Immediate8), format.U8())
	case bytecode.Load16:
		f.Set(inst.Dst, uint64(inst.Immediate16), format.U16())
	case bytecode.Load32:
		f.Set(inst.Dst, uint64(inst.Immediate32), format.U32Tag())
	case bytecode.Load64:
		f.Set(inst.Dst, inst.Immediate64, format.U64Tag())
	case bytecode.Loadf32:
		f.Set(inst.Dst, uint64(inst.Immediate32), format.F32())
	case bytecode.Loadf64:
		f.Set(inst.Dst, inst.Immediate64, format.F64())
	}
}

// loadReturn copies the caller's deposited return word into dst. The
// VM does not track a static type for ReturnSlot; the declared return
// type comes from the callee's function-table entry, which is a
// sequencing concern left to the interpreter loop, so dst is tagged
// Unit here and expected to be re-tagged by the caller if needed.
func loadReturn(f *frame.StackFrame, inst bytecode.Instruction) {
	f.Set(inst.Dst, f.ReturnSlot, format.Unit())
}

// copyRegister duplicates src's raw word and tag into dst without
// touching any refcount: a borrowed read, not a transfer of ownership.
func copyRegister(f *frame.StackFrame, inst bytecode.Instruction) {
	v, tag := f.Get(inst.Src)
	f.Set(inst.Dst, v, tag)
}

// fetchRef behaves like copyRegister; it exists as a distinct opcode
// so the bytecode compiler can distinguish "I am creating a borrow I
// promise not to outlive src" from a plain value copy, a distinction
// that matters to the compiler's borrow checker but not to this VM's
// per-instruction contract.
func fetchRef(f *frame.StackFrame, inst bytecode.Instruction) {
	copyRegister(f, inst)
}

// cloneRegister duplicates src into dst like copyRegister, and if src
// holds a live object handle, increments its reference count so both
// registers now own a reference.
func cloneRegister(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	v, tag := f.Get(inst.Src)
	if tag.IsObject() && handle(v) != nullHandle {
		obj, err := ctx.heap.resolve(handle(v))
		if err != nil {
			return err
		}
		obj.Metadata.Refcount.Increment()
	}
	f.Set(inst.Dst, v, tag)
	return nil
}

// moveRegister transfers src's word and tag into dst and clears src:
// ownership moves, the refcount is untouched.
func moveRegister(f *frame.StackFrame, inst bytecode.Instruction) {
	v, tag := f.Get(inst.Src)
	f.Set(inst.Dst, v, tag)
	f.Clear(inst.Src)
}

// clearRegister zeroes a slot without releasing any object it held;
// the caller must have already destroyed or moved out the value.
func clearRegister(f *frame.StackFrame, inst bytecode.Instruction) {
	f.Clear(inst.Dst)
}

// forgetRegister abandons whatever reg holds without decrementing its
// refcount, for use when a value's ownership has been transferred by
// some mechanism the VM itself is not tracking (e.g. handed off to
// native code).
func forgetRegister(f *frame.StackFrame, inst bytecode.Instruction) {
	f.Clear(inst.Dst)
}

// destroyRegister decrements reg's refcount if it holds a live object
// handle and, once the count reaches zero, returns the instance to the
// allocator's free list.
func destroyRegister(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	v, tag := f.Get(inst.Dst)
	if tag.IsObject() && handle(v) != nullHandle {
		obj, err := ctx.heap.resolve(handle(v))
		if err != nil {
			return err
		}
		if remaining := obj.Metadata.Refcount.Decrement(); remaining == 0 {
			ctx.Alloc.Reuse(obj)
			ctx.heap.release(handle(v))
		}
	}
	f.Clear(inst.Dst)
	return nil
}

// makeShared transitions reg's object reference into the refcounter's
// shared (atomic) representation, used just before a value crosses
// into a closure capture or another concurrently-visible slot.
func makeShared(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	v, tag := f.Get(inst.Dst)
	if !tag.IsObject() || handle(v) == nullHandle {
		return nil
	}
	obj, err := ctx.heap.resolve(handle(v))
	if err != nil {
		return err
	}
	obj.Metadata.Refcount.MakeShared()
	return nil
}
