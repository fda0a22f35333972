package object

import "github.com/Ki11erRabbit/Maru/format"

// Layout is the computed memory layout of an object's data area: total
// size in bytes, required alignment, and the packing offset of each
// member in declaration order.
type Layout struct {
	Size    uint32
	Align   uint32
	Offsets []uint32
}

// primitiveLayout returns the (size, align) pair for a non-object
// TypeTag. Heap object references are modeled as an 8-byte, 8-aligned
// address (a handle, never a raw pointer), matching the pointer-sized
// slot every register already reserves for them.
func primitiveLayout(kind format.TypeTagKind) (size, align uint32) {
	switch kind {
	case format.TagUnit:
		return 0, 1
	case format.TagBool, format.TagU8, format.TagI8:
		return 1, 1
	case format.TagU16, format.TagI16:
		return 2, 2
	case format.TagU32, format.TagI32, format.TagF32:
		return 4, 4
	case format.TagU64, format.TagI64, format.TagF64:
		return 8, 8
	case format.TagObject:
		return 8, 8
	default:
		return 0, 1
	}
}

// FieldSize returns the byte width of a single field of the given
// kind, for callers outside this package that need to read or write a
// field's raw bytes (the exec package's field-access opcodes).
func FieldSize(kind format.TypeTagKind) uint32 {
	size, _ := primitiveLayout(kind)
	return size
}

// AlignTo rounds off up to the nearest multiple of align (align must be
// a power of two); align == 0 is treated as 1.
func AlignTo(off, align uint32) uint32 {
	if align <= 1 {
		return off
	}
	return (off + align - 1) &^ (align - 1)
}

// ComputeLayout computes a variant's physical layout from its
// declaration-ordered member list. It sorts members by descending
// alignment (ties broken by declaration order) before assigning
// offsets, a standard struct-packing heuristic that minimizes padding.
// The returned Offsets slice is indexed by the member's ORIGINAL
// declaration position, not its packed position.
func ComputeLayout(members []format.Member) Layout {
	n := len(members)
	if n == 0 {
		return Layout{Size: 0, Align: 1, Offsets: nil}
	}

	type sized struct {
		index       int
		size, align uint32
	}
	entries := make([]sized, n)
	for i, m := range members {
		size, align := primitiveLayout(m.Type.Kind)
		entries[i] = sized{index: i, size: size, align: align}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable descending sort by alignment; ties keep declaration order.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && entries[order[j]].align > entries[order[j-1]].align; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	offsets := make([]uint32, n)
	var offset, maxAlign uint32 = 0, 1
	for _, idx := range order {
		e := entries[idx]
		if e.align > maxAlign {
			maxAlign = e.align
		}
		offset = AlignTo(offset, e.align)
		offsets[e.index] = offset
		offset += e.size
	}

	return Layout{
		Size:    AlignTo(offset, maxAlign),
		Align:   maxAlign,
		Offsets: offsets,
	}
}
