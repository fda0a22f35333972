package bytecode_test

import (
	"encoding/binary"
	"testing"

	"github.com/Ki11erRabbit/Maru/bytecode"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestDecodeLoad32(t *testing.T) {
	blob := append([]byte{byte(bytecode.Load32)}, u32le(3)...)
	blob = append(blob, u32le(100)...)

	d := bytecode.NewDecoder(blob)
	inst, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if inst.Op != bytecode.Load32 || inst.Dst != 3 || inst.Immediate32 != 100 {
		t.Errorf("decoded = %+v, want Dst=3 Immediate32=100", inst)
	}
	if !d.Done() {
		t.Error("expected the cursor to have consumed the whole blob")
	}
}

func TestDecodeArithmeticTriple(t *testing.T) {
	blob := append([]byte{byte(bytecode.AddU)}, u32le(0)...)
	blob = append(blob, u32le(1)...)
	blob = append(blob, u32le(2)...)

	inst, err := bytecode.NewDecoder(blob).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if inst.Dst != 0 || inst.Lhs != 1 || inst.Rhs != 2 {
		t.Errorf("decoded = %+v, want Dst=0 Lhs=1 Rhs=2", inst)
	}
}

func TestDecodeReturnUnitHasNoPayload(t *testing.T) {
	blob := []byte{byte(bytecode.ReturnUnit), byte(bytecode.ReturnUnit)}
	d := bytecode.NewDecoder(blob)

	first, err := d.Next()
	if err != nil || first.Op != bytecode.ReturnUnit {
		t.Fatalf("first Next() = %+v, %v", first, err)
	}
	second, err := d.Next()
	if err != nil || second.Op != bytecode.ReturnUnit {
		t.Fatalf("second Next() = %+v, %v", second, err)
	}
	if !d.Done() {
		t.Error("expected both zero-payload instructions to be consumed")
	}
}

func TestDecodeInvalidOpcode(t *testing.T) {
	_, err := bytecode.NewDecoder([]byte{255}).Next()
	if err == nil {
		t.Fatal("expected an error decoding an invalid opcode byte")
	}
}

func TestDecodeTruncatedOperand(t *testing.T) {
	// Load32 needs a 4-byte dst and a 4-byte immediate; give it only 2.
	blob := append([]byte{byte(bytecode.Load32)}, 0, 0)
	_, err := bytecode.NewDecoder(blob).Next()
	if err == nil {
		t.Fatal("expected an error decoding a truncated operand")
	}
}

func TestDecodeCall(t *testing.T) {
	blob := []byte{byte(bytecode.Call)}
	blob = append(blob, u32le(7)...)  // function symbol
	blob = append(blob, u32le(9)...)  // dst
	blob = append(blob, u32le(2)...)  // args_len
	blob = append(blob, 1)            // arg0.increment_ref
	blob = append(blob, u32le(0)...)  // arg0.register
	blob = append(blob, 0)            // arg1.increment_ref
	blob = append(blob, u32le(1)...)  // arg1.register

	inst, err := bytecode.NewDecoder(blob).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if inst.FunctionSymbol != 7 || inst.Dst != 9 {
		t.Fatalf("decoded = %+v, want FunctionSymbol=7 Dst=9", inst)
	}
	if len(inst.Args) != 2 || !inst.Args[0].IncrementRef || inst.Args[1].IncrementRef {
		t.Errorf("args = %+v, unexpected", inst.Args)
	}
}

func TestDecodeCreateClosure(t *testing.T) {
	blob := []byte{byte(bytecode.CreateClosure)}
	blob = append(blob, u32le(6)...) // dst
	blob = append(blob, u32le(2)...) // capture_count
	blob = append(blob, u32le(4)...) // capture[0]
	blob = append(blob, u32le(5)...) // capture[1]
	blob = append(blob, u32le(3)...) // function_symbol

	inst, err := bytecode.NewDecoder(blob).Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if inst.Dst != 6 {
		t.Errorf("Dst = %d, want 6", inst.Dst)
	}
	if len(inst.CaptureRegisters) != 2 || inst.CaptureRegisters[0] != 4 || inst.CaptureRegisters[1] != 5 {
		t.Errorf("CaptureRegisters = %v, want [4 5]", inst.CaptureRegisters)
	}
	if inst.FunctionSymbol != 3 {
		t.Errorf("FunctionSymbol = %d, want 3", inst.FunctionSymbol)
	}
}

func TestDecodeAllSequence(t *testing.T) {
	blob := []byte{byte(bytecode.ReturnUnit), byte(bytecode.ReturnTailUnit)}
	insts, err := bytecode.DecodeAll(blob)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(insts) != 2 || insts[0].Op != bytecode.ReturnUnit || insts[1].Op != bytecode.ReturnTailUnit {
		t.Errorf("DecodeAll() = %+v, unexpected", insts)
	}
}
