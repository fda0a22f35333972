package object

import (
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/refcount"
)

// Metadata is the header every heap object begins with: a reference
// counter, the TypeSymbol naming its descriptor, and the VariantId
// selected at creation. The VM treats a pointer to an Instance and a
// pointer to its Metadata interchangeably; in Go that equivalence is
// modeled by Metadata always being Instance's first field rather than
// by raw pointer arithmetic.
type Metadata struct {
	Refcount  *refcount.Counter
	TypeID    format.TypeSymbol
	VariantID format.VariantId
}

// Instance is a live heap object: its header plus its packed data area,
// sized and laid out per its variant's Layout. Data is addressed
// through FieldOffset, never through raw pointer arithmetic.
type Instance struct {
	Metadata Metadata
	Data     []byte
}

// FieldOffset returns the packing offset of the member-th field of
// variant v, as computed by ComputeLayout.
func (d ObjectDescription) FieldOffset(variant format.VariantId, member int) uint32 {
	return d.Variants[variant].Layout.Offsets[member]
}
