package bytecode

import (
	"encoding/binary"

	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
)

// Instruction is one decoded bytecode instruction. Not every field is
// meaningful for every Op; which fields apply is determined by which
// operand group Op belongs to (see the switch in Decoder.Next below).
type Instruction struct {
	Op Opcode

	Dst, Src, Lhs, Rhs Register

	Immediate8  uint8
	Immediate16 uint16
	Immediate32 uint32
	Immediate64 uint64

	TypeSymbol format.TypeSymbol
	Variant    format.VariantId
	Member     uint32

	GlobalID uint32

	Branch     JumpBranch
	ElseBranch JumpBranch

	SwitchCases []SwitchCase
	MatchCases  []MatchCase

	FunctionSymbol format.FunctionSymbol
	Args           []CallArgument

	CaptureRegisters []Register
}

// cursor is a small little-endian byte-slice reader local to this
// package; format/internal/binary is not importable here, since Go's
// internal-package visibility is scoped to format's own subtree.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) byte() (byte, bool) {
	if c.remaining() < 1 {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

func (c *cursor) u16() (uint16, bool) {
	if c.remaining() < 2 {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, true
}

func (c *cursor) u32() (uint32, bool) {
	if c.remaining() < 4 {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, true
}

func (c *cursor) i32() (int32, bool) {
	v, ok := c.u32()
	return int32(v), ok
}

func (c *cursor) u64() (uint64, bool) {
	if c.remaining() < 8 {
		return 0, false
	}
	v := binary.LittleEndian.Uint64(c.data[c.pos:])
	c.pos += 8
	return v, true
}

func (c *cursor) callArgument() (CallArgument, bool) {
	flag, ok := c.byte()
	if !ok {
		return CallArgument{}, false
	}
	reg, ok := c.u32()
	if !ok {
		return CallArgument{}, false
	}
	return CallArgument{IncrementRef: flag != 0, Register: reg}, true
}

func (c *cursor) jumpBranch() (JumpBranch, bool) {
	id, ok := c.u32()
	if !ok {
		return JumpBranch{}, false
	}
	offset, ok := c.i32()
	if !ok {
		return JumpBranch{}, false
	}
	return JumpBranch{BlockID: id, Offset: offset}, true
}

func (c *cursor) switchCase() (SwitchCase, bool) {
	value, ok := c.u64()
	if !ok {
		return SwitchCase{}, false
	}
	branch, ok := c.jumpBranch()
	if !ok {
		return SwitchCase{}, false
	}
	return SwitchCase{Value: value, Branch: branch}, true
}

func (c *cursor) matchCase() (MatchCase, bool) {
	tag, ok := c.u32()
	if !ok {
		return MatchCase{}, false
	}
	branch, ok := c.jumpBranch()
	if !ok {
		return MatchCase{}, false
	}
	return MatchCase{Tag: tag, Branch: branch}, true
}

// Decoder walks a bytecode blob opcode by opcode, maintaining a cursor
// into the blob that advances by exactly one instruction's width per
// call to Next.
type Decoder struct {
	c cursor
}

// NewDecoder returns a Decoder positioned at the start of blob.
func NewDecoder(blob []byte) *Decoder {
	return &Decoder{c: cursor{data: blob}}
}

// Position returns the current byte offset into the blob.
func (d *Decoder) Position() int { return d.c.pos }

// Done reports whether the cursor has consumed the whole blob.
func (d *Decoder) Done() bool { return d.c.remaining() == 0 }

func truncated(d *Decoder, field string) error {
	return errors.New(errors.PhaseDecode, errors.KindTruncated).
		Path("bytecode", field).
		Detail("truncated instruction operand at offset %d", d.c.pos).
		Build()
}

// Next decodes one instruction at the cursor's current position,
// advancing it by exactly that instruction's encoded width. It fails
// with a descriptive error rather than panicking on an unknown opcode
// or a truncated operand.
func (d *Decoder) Next() (Instruction, error) {
	opByte, ok := d.c.byte()
	if !ok {
		return Instruction{}, truncated(d, "opcode")
	}
	op := Opcode(opByte)
	if !op.Valid() {
		return Instruction{}, errors.UnknownTag(errors.PhaseDecode, []string{"bytecode", "opcode"}, "Opcode", uint64(opByte))
	}

	inst := Instruction{Op: op}

	switch op {
	case Load8:
		dst, ok1 := d.c.u32()
		imm, ok2 := d.c.byte()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, "Load8")
		}
		inst.Dst, inst.Immediate8 = dst, imm

	case Load16:
		dst, ok1 := d.c.u32()
		imm, ok2 := d.c.u16()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, "Load16")
		}
		inst.Dst, inst.Immediate16 = dst, imm

	case Load32, Loadf32:
		dst, ok1 := d.c.u32()
		imm, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Immediate32 = dst, imm

	case Load64, Loadf64:
		dst, ok1 := d.c.u32()
		imm, ok2 := d.c.u64()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Immediate64 = dst, imm

	case Copy, Clone, Move, FetchRef:
		dst, ok1 := d.c.u32()
		src, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Src = dst, src

	case Clear, Destroy, Forget, MakeShared:
		reg, ok := d.c.u32()
		if !ok {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst = reg

	case LoadReturn:
		dst, ok := d.c.u32()
		if !ok {
			return Instruction{}, truncated(d, "LoadReturn")
		}
		inst.Dst = dst

	case SetGlobal:
		global, ok1 := d.c.u32()
		src, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, "SetGlobal")
		}
		inst.GlobalID, inst.Src = global, src

	case CopyGlobal, CloneGlobal:
		dst, ok1 := d.c.u32()
		global, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.GlobalID = dst, global

	case AddU, SubU, MulU, DivU, RemU,
		AddS, SubS, MulS, DivS, RemS,
		AddF, SubF, MulF, DivF,
		And, Or, Xor, ShiftLeft, LogicalShiftRight, ArithmeticShiftRight,
		EqI, NeqI, EqF, NeqF,
		LtU, GtU, LteU, GteU, LtS, GtS, LteS, GteS, LtF, GtF, LteF, GteF:
		dst, ok1 := d.c.u32()
		lhs, ok2 := d.c.u32()
		rhs, ok3 := d.c.u32()
		if !ok1 || !ok2 || !ok3 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Lhs, inst.Rhs = dst, lhs, rhs

	case Not, ByteSwap, IsNull, IsNaN, IsInfinity:
		dst, ok1 := d.c.u32()
		src, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Src = dst, src

	case CreateObject:
		dst, ok1 := d.c.u32()
		typeSym, ok2 := d.c.u32()
		variant, ok3 := d.c.u32()
		if !ok1 || !ok2 || !ok3 {
			return Instruction{}, truncated(d, "CreateObject")
		}
		inst.Dst, inst.TypeSymbol, inst.Variant = dst, typeSym, variant

	case GetField, CopyField, TakeField:
		dst, ok1 := d.c.u32()
		obj, ok2 := d.c.u32()
		variant, ok3 := d.c.u32()
		member, ok4 := d.c.u32()
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Src, inst.Variant, inst.Member = dst, obj, variant, member

	case SetField, MoveField, PlaceField:
		obj, ok1 := d.c.u32()
		variant, ok2 := d.c.u32()
		member, ok3 := d.c.u32()
		src, ok4 := d.c.u32()
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Dst, inst.Variant, inst.Member, inst.Src = obj, variant, member, src

	case Call, CallTail:
		fn, ok1 := d.c.u32()
		var dst uint32
		ok2 := true
		if op == Call {
			dst, ok2 = d.c.u32()
		}
		argsLen, ok3 := d.c.u32()
		if !ok1 || !ok2 || !ok3 {
			return Instruction{}, truncated(d, op.String())
		}
		args := make([]CallArgument, 0, argsLen)
		for i := uint32(0); i < argsLen; i++ {
			arg, ok := d.c.callArgument()
			if !ok {
				return Instruction{}, truncated(d, op.String()+".arg")
			}
			args = append(args, arg)
		}
		inst.FunctionSymbol, inst.Dst, inst.Args = fn, dst, args

	case Invoke, InvokeTail:
		closure, ok1 := d.c.u32()
		var dst uint32
		ok2 := true
		if op == Invoke {
			dst, ok2 = d.c.u32()
		}
		argsLen, ok3 := d.c.u32()
		if !ok1 || !ok2 || !ok3 {
			return Instruction{}, truncated(d, op.String())
		}
		args := make([]CallArgument, 0, argsLen)
		for i := uint32(0); i < argsLen; i++ {
			arg, ok := d.c.callArgument()
			if !ok {
				return Instruction{}, truncated(d, op.String()+".arg")
			}
			args = append(args, arg)
		}
		inst.Src, inst.Dst, inst.Args = closure, dst, args

	case Return, ReturnTail:
		src, ok := d.c.u32()
		if !ok {
			return Instruction{}, truncated(d, op.String())
		}
		inst.Src = src

	case ReturnUnit, ReturnTailUnit:
		// no payload

	case CreateClosure:
		// (dst:u32, capture_count:u32, capture_registers:[u32;
		// capture_count], function_symbol:u32), with a leading dst
		// register for uniformity with every other value-producing
		// opcode in the catalog.
		dst, ok0 := d.c.u32()
		if !ok0 {
			return Instruction{}, truncated(d, "CreateClosure")
		}
		count, ok1 := d.c.u32()
		if !ok1 {
			return Instruction{}, truncated(d, "CreateClosure")
		}
		captures := make([]Register, 0, count)
		for i := uint32(0); i < count; i++ {
			reg, ok := d.c.u32()
			if !ok {
				return Instruction{}, truncated(d, "CreateClosure.capture")
			}
			captures = append(captures, reg)
		}
		fn, ok2 := d.c.u32()
		if !ok2 {
			return Instruction{}, truncated(d, "CreateClosure")
		}
		inst.Dst, inst.CaptureRegisters, inst.FunctionSymbol = dst, captures, fn

	case Jump:
		branch, ok := d.c.jumpBranch()
		if !ok {
			return Instruction{}, truncated(d, "Jump")
		}
		inst.Branch = branch

	case If:
		cond, ok1 := d.c.u32()
		thenBranch, ok2 := d.c.jumpBranch()
		elseBranch, ok3 := d.c.jumpBranch()
		if !ok1 || !ok2 || !ok3 {
			return Instruction{}, truncated(d, "If")
		}
		inst.Dst, inst.Branch, inst.ElseBranch = cond, thenBranch, elseBranch

	case Switch:
		operand, ok1 := d.c.u32()
		count, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, "Switch")
		}
		cases := make([]SwitchCase, 0, count)
		for i := uint32(0); i < count; i++ {
			sc, ok := d.c.switchCase()
			if !ok {
				return Instruction{}, truncated(d, "Switch.case")
			}
			cases = append(cases, sc)
		}
		inst.Dst, inst.SwitchCases = operand, cases

	case Match:
		operand, ok1 := d.c.u32()
		count, ok2 := d.c.u32()
		if !ok1 || !ok2 {
			return Instruction{}, truncated(d, "Match")
		}
		cases := make([]MatchCase, 0, count)
		for i := uint32(0); i < count; i++ {
			mc, ok := d.c.matchCase()
			if !ok {
				return Instruction{}, truncated(d, "Match.case")
			}
			cases = append(cases, mc)
		}
		inst.Dst, inst.MatchCases = operand, cases

	case StartBlock:
		id, ok := d.c.u32()
		if !ok {
			return Instruction{}, truncated(d, "StartBlock")
		}
		inst.Dst = id
	}

	return inst, nil
}

// DecodeAll decodes every instruction in blob in order. It is a
// convenience wrapper over repeated Next calls; the dispatch loop
// itself is deliberately out of scope for this package.
func DecodeAll(blob []byte) ([]Instruction, error) {
	d := NewDecoder(blob)
	var out []Instruction
	for !d.Done() {
		inst, err := d.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}
