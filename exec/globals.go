package exec

import (
	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/frame"
)

// setGlobal overwrites a global slot with src's value, destroying
// whatever object reference the slot previously held, mirroring
// setField's field-ownership contract for the module's global table.
func setGlobal(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	slot, err := ctx.global(inst.GlobalID)
	if err != nil {
		return err
	}
	if slot.tag.IsObject() {
		if h := handle(slot.value); h != nullHandle {
			if oldObj, err := ctx.heap.resolve(h); err == nil {
				if remaining := oldObj.Metadata.Refcount.Decrement(); remaining == 0 {
					ctx.Alloc.Reuse(oldObj)
					ctx.heap.release(h)
				}
			}
		}
	}
	v, tag := f.Get(inst.Src)
	slot.value, slot.tag = v, tag
	return nil
}

// copyGlobal reads a global into dst without touching any refcount.
func copyGlobal(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	slot, err := ctx.global(inst.GlobalID)
	if err != nil {
		return err
	}
	f.Set(inst.Dst, slot.value, slot.tag)
	return nil
}

// cloneGlobal reads a global into dst and increments its refcount if
// it holds a live object reference, so the global and dst both own a
// reference.
func cloneGlobal(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	slot, err := ctx.global(inst.GlobalID)
	if err != nil {
		return err
	}
	f.Set(inst.Dst, slot.value, slot.tag)
	if slot.tag.IsObject() {
		if h := handle(slot.value); h != nullHandle {
			obj, err := ctx.heap.resolve(h)
			if err != nil {
				return err
			}
			obj.Metadata.Refcount.Increment()
		}
	}
	return nil
}
