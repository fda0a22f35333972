package exec

import (
	"math"

	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
)

// arithmetic implements the three arithmetic families (unsigned,
// signed, floating-point). Registers carry their operand width in the
// tracked TypeTag, but integer arithmetic always executes at full
// register width (64 bits) regardless, keeping one generic numeric core
// and leaving narrowing to the bytecode compiler; float arithmetic uses
// the F32 or F64 width named by the lhs tag. Divide-by-zero and the
// overflowing signed division MinInt64 / -1 surface as a *errors.Error
// trap the caller must propagate to the running program, not as a Go
// panic. AddS, SubS and MulS wrap on overflow, and RemS of MinInt64 by
// -1 yields 0.
func arithmetic(f *frame.StackFrame, inst bytecode.Instruction) error {
	lhs, lhsTag := f.Get(inst.Lhs)
	rhs, _ := f.Get(inst.Rhs)

	switch inst.Op {
	case bytecode.AddU:
		f.Set(inst.Dst, lhs+rhs, lhsTag)
	case bytecode.SubU:
		f.Set(inst.Dst, lhs-rhs, lhsTag)
	case bytecode.MulU:
		f.Set(inst.Dst, lhs*rhs, lhsTag)
	case bytecode.DivU:
		if rhs == 0 {
			return errors.Trap("division by zero")
		}
		f.Set(inst.Dst, lhs/rhs, lhsTag)
	case bytecode.RemU:
		if rhs == 0 {
			return errors.Trap("division by zero")
		}
		f.Set(inst.Dst, lhs%rhs, lhsTag)

	case bytecode.AddS:
		f.Set(inst.Dst, uint64(int64(lhs)+int64(rhs)), lhsTag)
	case bytecode.SubS:
		f.Set(inst.Dst, uint64(int64(lhs)-int64(rhs)), lhsTag)
	case bytecode.MulS:
		f.Set(inst.Dst, uint64(int64(lhs)*int64(rhs)), lhsTag)
	case bytecode.DivS:
		a, b := int64(lhs), int64(rhs)
		if b == 0 {
			return errors.Trap("division by zero")
		}
		if a == math.MinInt64 && b == -1 {
			return errors.Trap("signed division overflow")
		}
		f.Set(inst.Dst, uint64(a/b), lhsTag)
	case bytecode.RemS:
		a, b := int64(lhs), int64(rhs)
		if b == 0 {
			return errors.Trap("division by zero")
		}
		if a == math.MinInt64 && b == -1 {
			f.Set(inst.Dst, 0, lhsTag)
			return nil
		}
		f.Set(inst.Dst, uint64(a%b), lhsTag)

	case bytecode.AddF:
		f.Set(inst.Dst, floatBits(asFloat(lhs, lhsTag)+asFloat(rhs, lhsTag), lhsTag), lhsTag)
	case bytecode.SubF:
		f.Set(inst.Dst, floatBits(asFloat(lhs, lhsTag)-asFloat(rhs, lhsTag), lhsTag), lhsTag)
	case bytecode.MulF:
		f.Set(inst.Dst, floatBits(asFloat(lhs, lhsTag)*asFloat(rhs, lhsTag), lhsTag), lhsTag)
	case bytecode.DivF:
		// IEEE-754 division by zero yields +/-Inf or NaN, not a trap.
		f.Set(inst.Dst, floatBits(asFloat(lhs, lhsTag)/asFloat(rhs, lhsTag), lhsTag), lhsTag)
	}
	return nil
}

// asFloat reinterprets v's low bits as a float of the width named by
// tag (F32 or F64), widening an F32 value to float64 for computation.
func asFloat(v uint64, tag format.TypeTag) float64 {
	if tag.Kind == format.TagF32 {
		return float64(math.Float32frombits(uint32(v)))
	}
	return math.Float64frombits(v)
}

// floatBits narrows a computed float64 back to the register word width
// named by tag.
func floatBits(v float64, tag format.TypeTag) uint64 {
	if tag.Kind == format.TagF32 {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(v)
}
