package alloc

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/object"
)

func newTestDescs(t *testing.T) *object.DescTable {
	t.Helper()
	table := object.NewDescTable()
	table.Push(format.Object{
		Name: 1,
		Variants: []format.Variant{
			{Members: []format.Member{{Name: 0, Type: format.U64Tag()}}},
		},
	})
	table.Freeze()
	return table
}

func TestAllocateFreshInstance(t *testing.T) {
	a := New(newTestDescs(t))
	inst, err := a.Allocate(1, 0)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(inst.Data) != 8 {
		t.Errorf("Data length = %d, want 8 (one u64 member)", len(inst.Data))
	}
	if inst.Metadata.Refcount.FetchValue() != 1 {
		t.Errorf("fresh instance refcount = %d, want 1", inst.Metadata.Refcount.FetchValue())
	}
	if inst.Metadata.TypeID != 1 || inst.Metadata.VariantID != 0 {
		t.Errorf("unexpected metadata: %+v", inst.Metadata)
	}
}

func TestReuseThenAllocatePopsFromFreeList(t *testing.T) {
	a := New(newTestDescs(t))
	first, _ := a.Allocate(1, 0)
	a.Reuse(first)

	if got := a.poolDepth(1); got != 1 {
		t.Fatalf("poolDepth(1) after Reuse = %d, want 1", got)
	}

	second, err := a.Allocate(1, 0)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second != first {
		t.Error("Allocate should have popped the reused instance off the free list")
	}
	if a.poolDepth(1) != 0 {
		t.Errorf("poolDepth(1) after re-allocating = %d, want 0", a.poolDepth(1))
	}
	if second.Metadata.Refcount.FetchValue() != 1 {
		t.Errorf("reused instance should get a fresh refcount of 1, got %d", second.Metadata.Refcount.FetchValue())
	}
}

func TestAllocateUnknownSymbolFails(t *testing.T) {
	a := New(newTestDescs(t))
	defer func() {
		if recover() == nil {
			t.Error("Allocate with an unknown symbol should be fatal (panic)")
		}
	}()
	a.Allocate(99, 0)
}

func TestStackFramePoolRoundTrip(t *testing.T) {
	a := New(newTestDescs(t))
	f := a.AllocateStackFrame(3)
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
	a.ReuseStackFrame(f)
	if f.HasMemory() {
		t.Error("ReuseStackFrame should have freed the register arrays")
	}

	reused := a.AllocateStackFrame(5)
	if reused != f {
		t.Error("AllocateStackFrame should have popped the pooled shell")
	}
	if reused.Len() != 5 {
		t.Errorf("Len() after reuse = %d, want 5", reused.Len())
	}
}
