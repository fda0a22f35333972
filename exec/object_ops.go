package exec

import (
	"encoding/binary"

	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
	"github.com/Ki11erRabbit/Maru/object"
)

// createObject allocates a new instance of inst.TypeSymbol/inst.Variant
// through the allocator, publishes it in the heap table, and stores
// the resulting handle in dst tagged as an object reference to that
// type's name.
func createObject(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	desc, err := ctx.Descs.Get(inst.TypeSymbol)
	if err != nil {
		return err
	}
	obj, err := ctx.Alloc.Allocate(inst.TypeSymbol, inst.Variant)
	if err != nil {
		return err
	}
	hd := ctx.heap.publish(obj)
	f.Set(inst.Dst, uint64(hd), format.ObjectTag(desc.Name))
	return nil
}

func fieldSlice(ctx *Context, objHandle handle, variant format.VariantId, member uint32) ([]byte, format.TypeTag, error) {
	obj, err := ctx.heap.resolve(objHandle)
	if err != nil {
		return nil, format.TypeTag{}, err
	}
	desc, err := ctx.Descs.Get(obj.Metadata.TypeID)
	if err != nil {
		return nil, format.TypeTag{}, err
	}
	variantDesc := desc.Variants[variant]
	fieldType := variantDesc.Members[member].Type
	offset := desc.FieldOffset(variant, int(member))
	size := fieldSize(fieldType)
	return obj.Data[offset : offset+size], fieldType, nil
}

func fieldSize(tag format.TypeTag) uint32 {
	return object.FieldSize(tag.Kind)
}

// readField loads a field's raw bytes into a register-width word,
// zero-extending narrower fields.
func readField(f *frame.StackFrame, dst bytecode.Register, raw []byte, tag format.TypeTag) {
	var word uint64
	switch len(raw) {
	case 0:
		word = 0
	case 1:
		word = uint64(raw[0])
	case 2:
		word = uint64(binary.LittleEndian.Uint16(raw))
	case 4:
		word = uint64(binary.LittleEndian.Uint32(raw))
	case 8:
		word = binary.LittleEndian.Uint64(raw)
	}
	f.Set(dst, word, tag)
}

func writeField(raw []byte, word uint64) {
	switch len(raw) {
	case 1:
		raw[0] = byte(word)
	case 2:
		binary.LittleEndian.PutUint16(raw, uint16(word))
	case 4:
		binary.LittleEndian.PutUint32(raw, uint32(word))
	case 8:
		binary.LittleEndian.PutUint64(raw, word)
	}
}

// getField reads obj's field into dst without disturbing the field's
// own refcount; a plain observing access.
func getField(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	obj, _ := f.Get(inst.Src)
	raw, tag, err := fieldSlice(ctx, handle(obj), inst.Variant, inst.Member)
	if err != nil {
		return err
	}
	readField(f, inst.Dst, raw, tag)
	return nil
}

// copyField reads obj's field into dst and, if the field holds an
// object reference, increments its refcount: both the field and dst
// now own a reference.
func copyField(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	obj, _ := f.Get(inst.Src)
	raw, tag, err := fieldSlice(ctx, handle(obj), inst.Variant, inst.Member)
	if err != nil {
		return err
	}
	readField(f, inst.Dst, raw, tag)
	if tag.IsObject() {
		v, _ := f.Get(inst.Dst)
		if h := handle(v); h != nullHandle {
			fieldObj, err := ctx.heap.resolve(h)
			if err != nil {
				return err
			}
			fieldObj.Metadata.Refcount.Increment()
		}
	}
	return nil
}

// takeField reads obj's field into dst and zeroes the field in place,
// moving ownership of any object reference out of the object.
func takeField(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	obj, _ := f.Get(inst.Src)
	raw, tag, err := fieldSlice(ctx, handle(obj), inst.Variant, inst.Member)
	if err != nil {
		return err
	}
	readField(f, inst.Dst, raw, tag)
	for i := range raw {
		raw[i] = 0
	}
	return nil
}

// setField overwrites obj's field with src's raw word, first
// destroying whatever object reference previously occupied the field
// so fields always hold exactly one live reference at a time.
func setField(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	obj, _ := f.Get(inst.Dst)
	raw, tag, err := fieldSlice(ctx, handle(obj), inst.Variant, inst.Member)
	if err != nil {
		return err
	}
	if tag.IsObject() {
		var old uint64
		switch len(raw) {
		case 8:
			old = binary.LittleEndian.Uint64(raw)
		}
		if h := handle(old); h != nullHandle {
			if oldObj, err := ctx.heap.resolve(h); err == nil {
				if remaining := oldObj.Metadata.Refcount.Decrement(); remaining == 0 {
					ctx.Alloc.Reuse(oldObj)
					ctx.heap.release(h)
				}
			}
		}
	}
	src, _ := f.Get(inst.Src)
	writeField(raw, src)
	return nil
}

// moveField behaves like setField and additionally clears the source
// register, transferring the register's reference into the field
// rather than duplicating it.
func moveField(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	if err := setField(ctx, f, inst); err != nil {
		return err
	}
	f.Clear(inst.Src)
	return nil
}

// placeField writes src's raw word directly into an as-yet
// uninitialized field, skipping the destroy-old-value step that
// setField performs: the field's current bytes are construction-time
// garbage, not a live reference.
func placeField(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	obj, _ := f.Get(inst.Dst)
	raw, _, err := fieldSlice(ctx, handle(obj), inst.Variant, inst.Member)
	if err != nil {
		return err
	}
	src, _ := f.Get(inst.Src)
	writeField(raw, src)
	return nil
}
