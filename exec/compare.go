package exec

import (
	"math"

	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
)

func setBool(f *frame.StackFrame, dst bytecode.Register, v bool) {
	var word uint64
	if v {
		word = 1
	}
	f.Set(dst, word, format.Bool())
}

// compare implements every two-register comparison opcode, producing a
// Bool result. EqI/NeqI compare the raw 64-bit word regardless of
// signedness, since bitwise equality is signedness-independent.
func compare(f *frame.StackFrame, inst bytecode.Instruction) {
	lhs, lhsTag := f.Get(inst.Lhs)
	rhs, _ := f.Get(inst.Rhs)

	switch inst.Op {
	case bytecode.EqI:
		setBool(f, inst.Dst, lhs == rhs)
	case bytecode.NeqI:
		setBool(f, inst.Dst, lhs != rhs)
	case bytecode.EqF:
		setBool(f, inst.Dst, asFloat(lhs, lhsTag) == asFloat(rhs, lhsTag))
	case bytecode.NeqF:
		setBool(f, inst.Dst, asFloat(lhs, lhsTag) != asFloat(rhs, lhsTag))

	case bytecode.LtU:
		setBool(f, inst.Dst, lhs < rhs)
	case bytecode.GtU:
		setBool(f, inst.Dst, lhs > rhs)
	case bytecode.LteU:
		setBool(f, inst.Dst, lhs <= rhs)
	case bytecode.GteU:
		setBool(f, inst.Dst, lhs >= rhs)

	case bytecode.LtS:
		setBool(f, inst.Dst, int64(lhs) < int64(rhs))
	case bytecode.GtS:
		setBool(f, inst.Dst, int64(lhs) > int64(rhs))
	case bytecode.LteS:
		setBool(f, inst.Dst, int64(lhs) <= int64(rhs))
	case bytecode.GteS:
		setBool(f, inst.Dst, int64(lhs) >= int64(rhs))

	case bytecode.LtF:
		setBool(f, inst.Dst, asFloat(lhs, lhsTag) < asFloat(rhs, lhsTag))
	case bytecode.GtF:
		setBool(f, inst.Dst, asFloat(lhs, lhsTag) > asFloat(rhs, lhsTag))
	case bytecode.LteF:
		setBool(f, inst.Dst, asFloat(lhs, lhsTag) <= asFloat(rhs, lhsTag))
	case bytecode.GteF:
		setBool(f, inst.Dst, asFloat(lhs, lhsTag) >= asFloat(rhs, lhsTag))
	}
}

// classify implements IsNull, IsNaN, and IsInfinity, the three
// single-register classification opcodes.
func classify(f *frame.StackFrame, inst bytecode.Instruction) {
	src, tag := f.Get(inst.Src)

	switch inst.Op {
	case bytecode.IsNull:
		setBool(f, inst.Dst, tag.IsObject() && handle(src) == nullHandle)
	case bytecode.IsNaN:
		setBool(f, inst.Dst, math.IsNaN(asFloat(src, tag)))
	case bytecode.IsInfinity:
		setBool(f, inst.Dst, math.IsInf(asFloat(src, tag), 0))
	}
}
