package exec

import (
	"math/bits"

	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/frame"
)

// bitwiseTriple implements the two/three-register bitwise family: And,
// Or, Xor, ShiftLeft, LogicalShiftRight, ArithmeticShiftRight. Shift
// amounts are masked to 0-63 the way a native 64-bit shift instruction
// behaves, rather than trapping on an out-of-range count.
func bitwiseTriple(f *frame.StackFrame, inst bytecode.Instruction) {
	lhs, lhsTag := f.Get(inst.Lhs)
	rhs, _ := f.Get(inst.Rhs)

	switch inst.Op {
	case bytecode.And:
		f.Set(inst.Dst, lhs&rhs, lhsTag)
	case bytecode.Or:
		f.Set(inst.Dst, lhs|rhs, lhsTag)
	case bytecode.Xor:
		f.Set(inst.Dst, lhs^rhs, lhsTag)
	case bytecode.ShiftLeft:
		f.Set(inst.Dst, lhs<<(rhs&63), lhsTag)
	case bytecode.LogicalShiftRight:
		f.Set(inst.Dst, lhs>>(rhs&63), lhsTag)
	case bytecode.ArithmeticShiftRight:
		f.Set(inst.Dst, uint64(int64(lhs)>>(rhs&63)), lhsTag)
	}
}

// bitwiseUnary implements Not and ByteSwap, the two single-operand
// bitwise opcodes.
func bitwiseUnary(f *frame.StackFrame, inst bytecode.Instruction) {
	src, tag := f.Get(inst.Src)

	switch inst.Op {
	case bytecode.Not:
		f.Set(inst.Dst, ^src, tag)
	case bytecode.ByteSwap:
		f.Set(inst.Dst, bits.ReverseBytes64(src), tag)
	}
}
