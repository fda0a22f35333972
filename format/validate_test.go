package format_test

import (
	"strings"
	"testing"

	"github.com/Ki11erRabbit/Maru/format"
)

func TestValidateAcceptsWellFormedModule(t *testing.T) {
	m := format.New()
	name := m.AddString("main")
	bcIdx := m.AddBytecode([]byte{0x00})
	m.AddFunction(format.Function{Name: name, TypeName: name, ReturnType: format.Unit(), BytecodeIdx: bcIdx})
	m.AddLocation(format.Location{File: name})

	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateCollectsMultipleViolations(t *testing.T) {
	m := format.New()
	// A function naming a string index that doesn't exist and a
	// bytecode index that doesn't exist, in the same module: Validate
	// must report both rather than stopping at the first.
	m.AddFunction(format.Function{Name: 99, TypeName: 99, ReturnType: format.Unit(), BytecodeIdx: 5})

	err := m.Validate()
	if err == nil {
		t.Fatal("expected Validate to report errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "string_index") {
		t.Errorf("expected a string_index violation, got %q", msg)
	}
	if !strings.Contains(msg, "bytecode_index") {
		t.Errorf("expected a bytecode_index violation, got %q", msg)
	}
}

func TestValidateRejectsMismatchedLocationsLength(t *testing.T) {
	m := format.New()
	m.AddBytecode([]byte{0x00})
	m.AddBytecode([]byte{0x01})
	name := m.AddString("x")
	m.AddLocation(format.Location{File: name}) // only 1 location for 2 bytecode entries

	err := m.Validate()
	if err == nil {
		t.Fatal("expected Validate to reject a mismatched locations map length")
	}
	if !strings.Contains(err.Error(), "locations") {
		t.Errorf("expected a locations-related message, got %q", err.Error())
	}
}

func TestValidateAllowsEmptyLocationsMap(t *testing.T) {
	m := format.New()
	m.AddBytecode([]byte{0x00})
	m.AddBytecode([]byte{0x01})
	// no locations added: empty is always acceptable, regardless of
	// bytecode table length.
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for an empty locations map", err)
	}
}
