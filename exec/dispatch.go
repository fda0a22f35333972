package exec

import (
	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/frame"
)

// Dispatch applies inst's effect to f (and, for object/global/closure
// opcodes, to ctx) and reports what the caller should do with control
// flow next. It implements exactly one instruction; looping over a
// bytecode blob, following jumps, and sequencing calls are an
// interpreter's job, deliberately left outside this package.
func Dispatch(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) (Step, error) {
	switch inst.Op {
	case bytecode.Load8, bytecode.Load16, bytecode.Load32, bytecode.Load64,
		bytecode.Loadf32, bytecode.Loadf64:
		loadImmediate(f, inst)

	case bytecode.LoadReturn:
		loadReturn(f, inst)

	case bytecode.Copy:
		copyRegister(f, inst)
	case bytecode.FetchRef:
		fetchRef(f, inst)
	case bytecode.Clone:
		if err := cloneRegister(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.Move:
		moveRegister(f, inst)
	case bytecode.Clear:
		clearRegister(f, inst)
	case bytecode.Forget:
		forgetRegister(f, inst)
	case bytecode.Destroy:
		if err := destroyRegister(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.MakeShared:
		if err := makeShared(ctx, f, inst); err != nil {
			return Step{}, err
		}

	case bytecode.SetGlobal:
		if err := setGlobal(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.CopyGlobal:
		if err := copyGlobal(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.CloneGlobal:
		if err := cloneGlobal(ctx, f, inst); err != nil {
			return Step{}, err
		}

	case bytecode.AddU, bytecode.SubU, bytecode.MulU, bytecode.DivU, bytecode.RemU,
		bytecode.AddS, bytecode.SubS, bytecode.MulS, bytecode.DivS, bytecode.RemS,
		bytecode.AddF, bytecode.SubF, bytecode.MulF, bytecode.DivF:
		if err := arithmetic(f, inst); err != nil {
			return Step{}, err
		}

	case bytecode.And, bytecode.Or, bytecode.Xor,
		bytecode.ShiftLeft, bytecode.LogicalShiftRight, bytecode.ArithmeticShiftRight:
		bitwiseTriple(f, inst)
	case bytecode.Not, bytecode.ByteSwap:
		bitwiseUnary(f, inst)

	case bytecode.EqI, bytecode.NeqI, bytecode.EqF, bytecode.NeqF,
		bytecode.LtU, bytecode.GtU, bytecode.LteU, bytecode.GteU,
		bytecode.LtS, bytecode.GtS, bytecode.LteS, bytecode.GteS,
		bytecode.LtF, bytecode.GtF, bytecode.LteF, bytecode.GteF:
		compare(f, inst)

	case bytecode.IsNull, bytecode.IsNaN, bytecode.IsInfinity:
		classify(f, inst)

	case bytecode.CreateObject:
		if err := createObject(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.GetField:
		if err := getField(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.CopyField:
		if err := copyField(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.TakeField:
		if err := takeField(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.SetField:
		if err := setField(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.MoveField:
		if err := moveField(ctx, f, inst); err != nil {
			return Step{}, err
		}
	case bytecode.PlaceField:
		if err := placeField(ctx, f, inst); err != nil {
			return Step{}, err
		}

	case bytecode.CreateClosure:
		if err := createClosure(ctx, f, inst); err != nil {
			return Step{}, err
		}

	case bytecode.Call:
		return call(ctx, f, inst, false)
	case bytecode.CallTail:
		return call(ctx, f, inst, true)
	case bytecode.Invoke:
		return invoke(ctx, f, inst, false)
	case bytecode.InvokeTail:
		return invoke(ctx, f, inst, true)
	case bytecode.Return:
		return returnValue(f, inst, false), nil
	case bytecode.ReturnTail:
		return returnValue(f, inst, true), nil
	case bytecode.ReturnUnit:
		return returnUnit(f, false), nil
	case bytecode.ReturnTailUnit:
		return returnUnit(f, true), nil

	case bytecode.Jump:
		return Step{Flow: FlowJump, Branch: inst.Branch}, nil
	case bytecode.If:
		cond, _ := f.Get(inst.Dst)
		branch := inst.ElseBranch
		if cond != 0 {
			branch = inst.Branch
		}
		return Step{Flow: FlowBranch, Branch: branch}, nil
	case bytecode.Switch:
		operand, _ := f.Get(inst.Dst)
		return Step{Flow: FlowSwitch, SwitchOperand: operand, SwitchCases: inst.SwitchCases}, nil
	case bytecode.Match:
		operand, _ := f.Get(inst.Dst)
		return Step{Flow: FlowMatch, MatchOperand: operand, MatchCases: inst.MatchCases}, nil
	case bytecode.StartBlock:
		// A block-entry marker; it carries no register effect of its own.
	}

	return Step{Flow: FlowNext}, nil
}
