package format_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

func TestTypeTagObjectEncoding(t *testing.T) {
	w := binary.NewWriter()
	tag := format.ObjectTag(42)
	// exercise the TypeTag encoder indirectly through a Member, since
	// encode is unexported: wrap it in a one-member variant and decode
	// it back out.
	m := format.New()
	fieldName := m.AddString("value")
	m.AddObject(format.Object{
		Variants: []format.Variant{
			{Members: []format.Member{{Name: fieldName, Type: tag}}},
		},
	})
	data := m.Encode()
	decoded, err := format.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.Objects[0].Variants[0].Members[0].Type
	if got.Kind != format.TagObject || got.Object != 42 {
		t.Errorf("round-tripped tag = %+v, want Kind=TagObject Object=42", got)
	}
	_ = w
}

func TestTypeTagUnknownDiscriminant(t *testing.T) {
	// A raw TypeTag byte of 255 has no corresponding TypeTagKind; this
	// shows up as an unknown-tag decode error when embedded as a
	// function return type.
	header := []byte{format.Magic, 0, 0, 0}
	header = append(header, 0, 0, 0, 0) // module_name
	header = append(header, 0, 0, 0, 0) // objects_len = 0
	header = append(header, 1, 0, 0, 0) // functions_len = 1
	header = append(header, 0, 0, 0, 0) // function.name
	header = append(header, 0, 0, 0, 0) // function.type_name
	header = append(header, 0, 0, 0, 0) // params_len = 0
	header = append(header, 255)        // return_type tag byte: invalid

	_, err := format.Decode(header)
	if err == nil {
		t.Fatal("expected an unknown-tag error for discriminant 255")
	}
}
