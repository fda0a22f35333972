package frame_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
)

func TestNewHasRequestedRegisterCount(t *testing.T) {
	f := frame.New(4)
	if f.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", f.Len())
	}
	if !f.HasMemory() {
		t.Fatal("a freshly allocated frame should have live register arrays")
	}
}

func TestSetGet(t *testing.T) {
	f := frame.New(2)
	f.Set(1, 0xDEADBEEF, format.U32Tag())
	value, tag := f.Get(1)
	if value != 0xDEADBEEF {
		t.Errorf("Get(1) value = %#x, want 0xDEADBEEF", value)
	}
	if tag.Kind != format.TagU32 {
		t.Errorf("Get(1) tag = %v, want TagU32", tag.Kind)
	}
}

func TestClearZeroesSlot(t *testing.T) {
	f := frame.New(1)
	f.Set(0, 123, format.U32Tag())
	f.Clear(0)
	value, tag := f.Get(0)
	if value != 0 || tag.Kind != format.TagUnit {
		t.Errorf("Clear left value=%d tag=%v, want 0, TagUnit", value, tag.Kind)
	}
}

func TestFreeMemoryInvariant(t *testing.T) {
	f := frame.New(3)
	f.FreeMemory()
	if f.HasMemory() {
		t.Error("HasMemory() should be false after FreeMemory")
	}
	if f.Len() != 0 {
		t.Errorf("Len() after FreeMemory = %d, want 0", f.Len())
	}
	// idempotent
	f.FreeMemory()
}

func TestChainAndUnchain(t *testing.T) {
	root := frame.New(0)
	child := frame.New(0)
	root.Chain(child)

	if child.Prev != root || root.Next != child {
		t.Fatal("Chain did not link prev/next correctly")
	}

	current := child.Unchain()
	if current != root {
		t.Errorf("Unchain returned %p, want root frame %p", current, root)
	}
	if root.Next != nil {
		t.Error("root.Next should be nil after unchaining its only child")
	}
	if child.Prev != nil || child.Next != nil {
		t.Error("unchained frame should have nil Prev/Next")
	}
}

func TestResetReplacesRegisterArrays(t *testing.T) {
	f := frame.New(2)
	f.Set(0, 42, format.U32Tag())
	f.ReturnSlot = 7
	f.Reset(5)

	if f.Len() != 5 {
		t.Fatalf("Len() after Reset(5) = %d, want 5", f.Len())
	}
	if f.ReturnSlot != 0 {
		t.Errorf("ReturnSlot after Reset = %d, want 0", f.ReturnSlot)
	}
	value, _ := f.Get(0)
	if value != 0 {
		t.Errorf("Get(0) after Reset = %d, want 0 (fresh array)", value)
	}
}

func TestUnchainRootReturnsNil(t *testing.T) {
	root := frame.New(0)
	if got := root.Unchain(); got != nil {
		t.Errorf("Unchain on a root frame = %p, want nil", got)
	}
}
