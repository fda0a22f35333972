package exec

import (
	"encoding/binary"

	"github.com/Ki11erRabbit/Maru/bytecode"
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
	"github.com/Ki11erRabbit/Maru/object"
	"github.com/Ki11erRabbit/Maru/refcount"
)

// Flow names what a control-transfer instruction asks its caller to do
// next. Dispatch never follows a branch, performs a call, or pops a
// frame itself; that sequencing belongs to an interpreter loop outside
// this package's scope. A Step only reports the decoded intent, with
// any register-level side effects (refcount bumps on call arguments,
// capturing closure state) already applied.
type Flow int

const (
	FlowNext Flow = iota
	FlowJump
	FlowBranch
	FlowSwitch
	FlowMatch
	FlowCall
	FlowInvoke
	FlowReturn
)

// Step is Dispatch's report of a control-transfer instruction's
// effect; zero value (FlowNext) means "advance to the following
// instruction," which is what every non-control-flow opcode produces.
type Step struct {
	Flow Flow

	Branch     bytecode.JumpBranch
	ElseBranch bytecode.JumpBranch

	SwitchOperand uint64
	SwitchCases   []bytecode.SwitchCase

	MatchOperand uint64
	MatchCases   []bytecode.MatchCase

	FunctionSymbol format.FunctionSymbol
	ClosureHandle  uint64
	Dst            bytecode.Register
	Args           []uint64
	ArgTypes       []format.TypeTag
	Tail           bool
}

// closureTypeSymbol marks a heap instance as a closure environment
// rather than a declared object type; no entry in the module's
// DescTable carries this value, so a lookup against it always fails,
// keeping closures out of the ordinary object layout machinery.
const closureTypeSymbol format.TypeSymbol = ^format.TypeSymbol(0)

// captureStride is the width of one closure-captured value's flat on-heap
// representation: the raw word, its kind, and (for object references)
// the type name index, stored at a fixed 13-byte stride.
const captureStride = 13

func encodeCapture(buf []byte, value uint64, tag format.TypeTag) {
	binary.LittleEndian.PutUint64(buf[0:8], value)
	buf[8] = byte(tag.Kind)
	binary.LittleEndian.PutUint32(buf[9:13], tag.Object)
}

func decodeCapture(buf []byte) (uint64, format.TypeTag) {
	value := binary.LittleEndian.Uint64(buf[0:8])
	tag := format.TypeTag{Kind: format.TypeTagKind(buf[8]), Object: binary.LittleEndian.Uint32(buf[9:13])}
	return value, tag
}

// createClosure captures the named registers' current values into a
// new heap-allocated closure environment and stores its handle in
// inst.Dst, incrementing the refcount of any captured object
// reference so the closure shares ownership with the capturing frame.
func createClosure(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction) error {
	n := len(inst.CaptureRegisters)
	data := make([]byte, n*captureStride+4)
	for i, reg := range inst.CaptureRegisters {
		v, tag := f.Get(reg)
		if tag.IsObject() {
			if h := handle(v); h != nullHandle {
				obj, err := ctx.heap.resolve(h)
				if err != nil {
					return err
				}
				obj.Metadata.Refcount.Increment()
			}
		}
		encodeCapture(data[i*captureStride:], v, tag)
	}
	binary.LittleEndian.PutUint32(data[n*captureStride:], inst.FunctionSymbol)

	closure := &object.Instance{
		Metadata: object.Metadata{Refcount: refcount.New(), TypeID: closureTypeSymbol},
		Data:     data,
	}
	hd := ctx.heap.publish(closure)
	f.Set(inst.Dst, uint64(hd), format.ObjectTag(0))
	return nil
}

// Captures returns a closure instance's captured registers and target
// function symbol, for use when Invoke builds the callee's frame.
func Captures(ctx *Context, closureHandle uint64) ([]uint64, []format.TypeTag, format.FunctionSymbol, error) {
	obj, err := ctx.heap.resolve(handle(closureHandle))
	if err != nil {
		return nil, nil, 0, err
	}
	if obj.Metadata.TypeID != closureTypeSymbol {
		return nil, nil, 0, errors.New(errors.PhaseDispatch, errors.KindInvariant).
			Detail("handle does not refer to a closure environment").Build()
	}
	n := (len(obj.Data) - 4) / captureStride
	values := make([]uint64, n)
	types := make([]format.TypeTag, n)
	for i := 0; i < n; i++ {
		values[i], types[i] = decodeCapture(obj.Data[i*captureStride:])
	}
	fn := format.FunctionSymbol(binary.LittleEndian.Uint32(obj.Data[n*captureStride:]))
	return values, types, fn, nil
}

func incrementArgs(ctx *Context, f *frame.StackFrame, args []bytecode.CallArgument) ([]uint64, []format.TypeTag, error) {
	values := make([]uint64, len(args))
	types := make([]format.TypeTag, len(args))
	for i, arg := range args {
		v, tag := f.Get(arg.Register)
		if arg.IncrementRef && tag.IsObject() {
			if h := handle(v); h != nullHandle {
				obj, err := ctx.heap.resolve(h)
				if err != nil {
					return nil, nil, err
				}
				obj.Metadata.Refcount.Increment()
			}
		}
		values[i], types[i] = v, tag
	}
	return values, types, nil
}

// call reports a Call/CallTail's decoded intent, having already
// incremented the refcount of any argument marked IncrementRef.
func call(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction, tail bool) (Step, error) {
	values, types, err := incrementArgs(ctx, f, inst.Args)
	if err != nil {
		return Step{}, err
	}
	return Step{
		Flow:           FlowCall,
		FunctionSymbol: inst.FunctionSymbol,
		Dst:            inst.Dst,
		Args:           values,
		ArgTypes:       types,
		Tail:           tail,
	}, nil
}

// invoke reports an Invoke/InvokeTail's decoded intent: which register
// holds the closure handle, plus the same argument refcount bookkeeping
// as call.
func invoke(ctx *Context, f *frame.StackFrame, inst bytecode.Instruction, tail bool) (Step, error) {
	values, types, err := incrementArgs(ctx, f, inst.Args)
	if err != nil {
		return Step{}, err
	}
	closure, _ := f.Get(inst.Src)
	return Step{
		Flow:          FlowInvoke,
		ClosureHandle: closure,
		Dst:           inst.Dst,
		Args:          values,
		ArgTypes:      types,
		Tail:          tail,
	}, nil
}

// returnValue deposits src's value into the frame's ReturnSlot for the
// caller to collect with LoadReturn, and reports a FlowReturn step.
func returnValue(f *frame.StackFrame, inst bytecode.Instruction, tail bool) Step {
	v, _ := f.Get(inst.Src)
	f.ReturnSlot = v
	return Step{Flow: FlowReturn, Tail: tail}
}

// returnUnit deposits the unit value (zero) and reports a FlowReturn
// step, for the ReturnUnit/ReturnTailUnit opcodes that carry no
// operand register.
func returnUnit(f *frame.StackFrame, tail bool) Step {
	f.ReturnSlot = 0
	return Step{Flow: FlowReturn, Tail: tail}
}
