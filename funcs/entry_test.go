package funcs_test

import (
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
	"github.com/Ki11erRabbit/Maru/funcs"
)

func TestFromModuleBytecodeEntry(t *testing.T) {
	m := format.New()
	name := m.AddString("main")
	bcIdx := m.AddBytecode([]byte{0x01, 0x02})
	m.AddFunction(format.Function{Name: name, TypeName: name, BytecodeIdx: bcIdx, VariableCount: 1})

	table, err := funcs.FromModule(m)
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	entry, err := table.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if entry.IsNative() {
		t.Fatal("entry with a non-negative BytecodeIdx should not be native")
	}

	resolved, err := entry.GetFunction()
	if err != nil {
		t.Fatalf("GetFunction: %v", err)
	}
	if resolved.Kind != funcs.KindBytecode || len(resolved.Bytecode) != 2 {
		t.Errorf("resolved = %+v, want 2-byte bytecode body", resolved)
	}
}

func TestFromModuleRejectsOutOfRangeBytecodeIndex(t *testing.T) {
	m := format.New()
	name := m.AddString("main")
	m.AddFunction(format.Function{Name: name, TypeName: name, BytecodeIdx: 5})

	if _, err := funcs.FromModule(m); err == nil {
		t.Fatal("expected FromModule to reject an out-of-range bytecode index")
	}
}

func TestNativeEntryRequiresResolutionFirst(t *testing.T) {
	m := format.New()
	name := m.AddString("native_fn")
	m.AddFunction(format.Function{Name: name, TypeName: name, BytecodeIdx: -1})

	table, err := funcs.FromModule(m)
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	entry, _ := table.Get(0)
	if !entry.IsNative() {
		t.Fatal("entry with BytecodeIdx -1 should be native")
	}

	if _, err := entry.GetFunction(); err == nil {
		t.Error("GetFunction on an unresolved native entry should fail")
	}

	called := false
	entry.SetFunctionPtr(func(f *frame.StackFrame) { called = true })

	resolved, err := entry.GetFunction()
	if err != nil {
		t.Fatalf("GetFunction after resolution: %v", err)
	}
	if resolved.Kind != funcs.KindNative {
		t.Fatalf("resolved.Kind = %v, want KindNative", resolved.Kind)
	}
	resolved.Native(nil)
	if !called {
		t.Error("resolved native function was not the one installed by SetFunctionPtr")
	}
	if entry.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1", entry.CallCount())
	}
}

func TestSetFunctionPtrTwicePanics(t *testing.T) {
	m := format.New()
	m.AddFunction(format.Function{BytecodeIdx: -1})
	table, _ := funcs.FromModule(m)
	entry, _ := table.Get(0)

	entry.SetFunctionPtr(func(f *frame.StackFrame) {})

	defer func() {
		if recover() == nil {
			t.Error("SetFunctionPtr called twice should panic")
		}
	}()
	entry.SetFunctionPtr(func(f *frame.StackFrame) {})
}

func TestTableGetOutOfRange(t *testing.T) {
	m := format.New()
	table, _ := funcs.FromModule(m)
	if _, err := table.Get(0); err == nil {
		t.Error("Get on an empty table should fail")
	}
}
