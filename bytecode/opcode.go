package bytecode

import "fmt"

// Opcode is a single bytecode instruction's one-byte discriminant. The
// numeric assignment below is fixed wire format: any decoder or
// compiler targeting this catalog must agree on these exact values.
type Opcode byte

const (
	Load8 Opcode = iota
	Load16
	Load32
	Load64
	Loadf32
	Loadf64
	Copy
	Clone
	Move
	Clear
	Destroy
	Forget
	LoadReturn
	FetchRef
	MakeShared
	SetGlobal
	CopyGlobal
	CloneGlobal
	AddU
	SubU
	MulU
	DivU
	RemU
	AddS
	SubS
	MulS
	DivS
	RemS
	AddF
	SubF
	MulF
	DivF
	And
	Or
	Xor
	Not
	ShiftLeft
	LogicalShiftRight
	ArithmeticShiftRight
	ByteSwap
	EqI
	NeqI
	EqF
	NeqF
	LtU
	GtU
	LteU
	GteU
	LtS
	GtS
	LteS
	GteS
	LtF
	GtF
	LteF
	GteF
	CreateObject
	IsNull
	IsNaN
	IsInfinity
	GetField
	CopyField
	TakeField
	SetField
	MoveField
	PlaceField
	Call
	CallTail
	Invoke
	InvokeTail
	Return
	ReturnTail
	ReturnUnit
	ReturnTailUnit
	CreateClosure
	Jump
	If
	Switch
	Match
	StartBlock

	// opcodeCount is the size of the catalog (80 opcodes); any byte
	// value at or beyond it is not a valid opcode.
	opcodeCount
)

// String names an opcode for diagnostics; an unrecognized byte prints
// as its numeric value rather than panicking.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", byte(op))
}

// Valid reports whether op is one of the 80 catalog members.
func (op Opcode) Valid() bool {
	return op < opcodeCount
}

var opcodeNames = map[Opcode]string{
	Load8: "Load8", Load16: "Load16", Load32: "Load32", Load64: "Load64",
	Loadf32: "Loadf32", Loadf64: "Loadf64",
	Copy: "Copy", Clone: "Clone", Move: "Move", Clear: "Clear",
	Destroy: "Destroy", Forget: "Forget",
	LoadReturn: "LoadReturn", FetchRef: "FetchRef", MakeShared: "MakeShared",
	SetGlobal: "SetGlobal", CopyGlobal: "CopyGlobal", CloneGlobal: "CloneGlobal",
	AddU: "AddU", SubU: "SubU", MulU: "MulU", DivU: "DivU", RemU: "RemU",
	AddS: "AddS", SubS: "SubS", MulS: "MulS", DivS: "DivS", RemS: "RemS",
	AddF: "AddF", SubF: "SubF", MulF: "MulF", DivF: "DivF",
	And: "And", Or: "Or", Xor: "Xor", Not: "Not",
	ShiftLeft: "ShiftLeft", LogicalShiftRight: "LogicalShiftRight",
	ArithmeticShiftRight: "ArithmeticShiftRight", ByteSwap: "ByteSwap",
	EqI: "EqI", NeqI: "NeqI", EqF: "EqF", NeqF: "NeqF",
	LtU: "LtU", GtU: "GtU", LteU: "LteU", GteU: "GteU",
	LtS: "LtS", GtS: "GtS", LteS: "LteS", GteS: "GteS",
	LtF: "LtF", GtF: "GtF", LteF: "LteF", GteF: "GteF",
	CreateObject: "CreateObject", IsNull: "IsNull", IsNaN: "IsNaN", IsInfinity: "IsInfinity",
	GetField: "GetField", CopyField: "CopyField", TakeField: "TakeField",
	SetField: "SetField", MoveField: "MoveField", PlaceField: "PlaceField",
	Call: "Call", CallTail: "CallTail", Invoke: "Invoke", InvokeTail: "InvokeTail",
	Return: "Return", ReturnTail: "ReturnTail", ReturnUnit: "ReturnUnit", ReturnTailUnit: "ReturnTailUnit",
	CreateClosure: "CreateClosure",
	Jump:          "Jump", If: "If", Switch: "Switch", Match: "Match", StartBlock: "StartBlock",
}
