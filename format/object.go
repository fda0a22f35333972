package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// Member is one declared field of a Variant: a name and its type.
type Member struct {
	Name StringIndex
	Type TypeTag
}

// Variant is one case of a sum-typed Object. Members are
// declaration-ordered; physical layout is computed separately by the
// object package from this same ordering.
type Variant struct {
	Name     StringIndex
	TypeName StringIndex
	Members  []Member
}

// Object describes one declared type: its name, a monomorphized name,
// and its ordered list of variants. Internal is 0 for a non-internal
// type and any nonzero value for an internal one; the exact value
// round-trips untouched rather than being normalized.
type Object struct {
	Name     StringIndex
	TypeName StringIndex
	Variants []Variant
	Internal uint32
}

func (v Variant) encode(w *binary.Writer) {
	w.WriteU32(v.Name)
	w.WriteU32(v.TypeName)
	w.WriteU32(uint32(len(v.Members)))
	for _, m := range v.Members {
		w.WriteU32(m.Name)
		m.Type.encode(w)
	}
}

func decodeVariant(r *binary.Reader, path ...string) (Variant, error) {
	name, ok := r.ReadU32()
	if !ok {
		return Variant{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	typeName, ok := r.ReadU32()
	if !ok {
		return Variant{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	membersLen, ok := r.ReadU32()
	if !ok {
		return Variant{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	members := make([]Member, 0, membersLen)
	for i := uint32(0); i < membersLen; i++ {
		memberName, ok := r.ReadU32()
		if !ok {
			return Variant{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
		}
		tag, err := decodeTypeTag(r, append(path, "member")...)
		if err != nil {
			return Variant{}, err
		}
		members = append(members, Member{Name: memberName, Type: tag})
	}
	return Variant{Name: name, TypeName: typeName, Members: members}, nil
}

func (o Object) encode(w *binary.Writer) {
	w.WriteU32(o.Name)
	w.WriteU32(o.TypeName)
	w.WriteU32(uint32(len(o.Variants)))
	for _, v := range o.Variants {
		v.encode(w)
	}
	w.WriteU32(o.Internal)
}

func decodeObject(r *binary.Reader, path ...string) (Object, error) {
	name, ok := r.ReadU32()
	if !ok {
		return Object{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	typeName, ok := r.ReadU32()
	if !ok {
		return Object{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	variantsLen, ok := r.ReadU32()
	if !ok {
		return Object{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	variants := make([]Variant, 0, variantsLen)
	for i := uint32(0); i < variantsLen; i++ {
		variant, err := decodeVariant(r, append(path, "variant")...)
		if err != nil {
			return Object{}, err
		}
		variants = append(variants, variant)
	}
	internal, ok := r.ReadU32()
	if !ok {
		return Object{}, errors.Truncated(errors.PhaseDecode, path, 4, r.Len())
	}
	return Object{Name: name, TypeName: typeName, Variants: variants, Internal: internal}, nil
}
