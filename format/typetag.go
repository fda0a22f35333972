package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// TypeTagKind discriminates a TypeTag. Non-object tags carry no
// payload; TagObject carries a StringIndex naming the type.
type TypeTagKind byte

const (
	TagUnit TypeTagKind = iota
	TagBool
	TagU8
	TagI8
	TagU16
	TagI16
	TagU32
	TagI32
	TagU64
	TagI64
	TagF32
	TagF64
	TagObject
)

// TypeTag is a primitive-or-object type discriminant. Object is only
// meaningful when Kind == TagObject.
type TypeTag struct {
	Kind   TypeTagKind
	Object StringIndex
}

// Unit, Bool, ... are convenience constructors for the payload-less tags.
func Unit() TypeTag    { return TypeTag{Kind: TagUnit} }
func Bool() TypeTag    { return TypeTag{Kind: TagBool} }
func U8() TypeTag      { return TypeTag{Kind: TagU8} }
func I8() TypeTag      { return TypeTag{Kind: TagI8} }
func U16() TypeTag     { return TypeTag{Kind: TagU16} }
func I16() TypeTag     { return TypeTag{Kind: TagI16} }
func U32Tag() TypeTag  { return TypeTag{Kind: TagU32} }
func I32Tag() TypeTag  { return TypeTag{Kind: TagI32} }
func U64Tag() TypeTag  { return TypeTag{Kind: TagU64} }
func I64Tag() TypeTag  { return TypeTag{Kind: TagI64} }
func F32() TypeTag      { return TypeTag{Kind: TagF32} }
func F64() TypeTag      { return TypeTag{Kind: TagF64} }
func ObjectTag(s StringIndex) TypeTag { return TypeTag{Kind: TagObject, Object: s} }

// IsObject reports whether t names a heap object type.
func (t TypeTag) IsObject() bool {
	return t.Kind == TagObject
}

// encode appends t's binary representation to w.
func (t TypeTag) encode(w *binary.Writer) {
	w.WriteByte(byte(t.Kind))
	if t.Kind == TagObject {
		w.WriteU32(t.Object)
	}
}

// decodeTypeTag reads a TypeTag from r.
func decodeTypeTag(r *binary.Reader, path ...string) (TypeTag, error) {
	tagByte, ok := r.ReadByte()
	if !ok {
		return TypeTag{}, errors.Truncated(errors.PhaseDecode, path, 1, r.Len())
	}
	if tagByte > byte(TagObject) {
		return TypeTag{}, errors.UnknownTag(errors.PhaseDecode, path, "MaruTypeTag", uint64(tagByte))
	}
	kind := TypeTagKind(tagByte)
	if kind != TagObject {
		return TypeTag{Kind: kind}, nil
	}
	idx, ok := r.ReadU32()
	if !ok {
		return TypeTag{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	return TypeTag{Kind: TagObject, Object: idx}, nil
}
