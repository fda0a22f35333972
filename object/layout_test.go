package object_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/object"
)

func TestComputeLayoutEmptyVariant(t *testing.T) {
	got := object.ComputeLayout(nil)
	if got.Size != 0 || got.Align != 1 {
		t.Errorf("ComputeLayout(nil) = %+v, want size 0 align 1", got)
	}
}

func TestComputeLayoutPacksByDescendingAlignment(t *testing.T) {
	// Declared order u8, u32, u16 should pack as u32 (align4, off0),
	// u16 (align2, off4), u8 (align1, off6), total size rounded to 8.
	members := []format.Member{
		{Name: 0, Type: format.U8()},
		{Name: 1, Type: format.U32Tag()},
		{Name: 2, Type: format.U16()},
	}
	got := object.ComputeLayout(members)

	if got.Align != 4 {
		t.Fatalf("Align = %d, want 4", got.Align)
	}
	if len(got.Offsets) != 3 {
		t.Fatalf("got %d offsets, want 3", len(got.Offsets))
	}
	if got.Offsets[1] != 0 {
		t.Errorf("u32 member offset = %d, want 0", got.Offsets[1])
	}
	if got.Offsets[2] != 4 {
		t.Errorf("u16 member offset = %d, want 4", got.Offsets[2])
	}
	if got.Offsets[0] != 6 {
		t.Errorf("u8 member offset = %d, want 6", got.Offsets[0])
	}
	if got.Size != 8 {
		t.Errorf("Size = %d, want 8 (rounded up to the max alignment)", got.Size)
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		off, align, want uint32
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{3, 1, 3},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := object.AlignTo(tt.off, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.off, tt.align, got, tt.want)
		}
	}
}
