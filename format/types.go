package format

// StringIndex is a 32-bit index into a module's string table.
type StringIndex = uint32

// TypeSymbol is a 32-bit index into the object descriptor table. 0 is
// reserved for the stack-frame type.
type TypeSymbol = uint32

// VariantId is a 32-bit index into a type's variant list.
type VariantId = uint32

// FunctionSymbol is a 32-bit index into the function table.
type FunctionSymbol = uint32

// BytecodeIndex indexes the bytecode table. Non-negative values are
// in-range indices; negative values mean "internal" (native) body or
// externally-resolved initializer.
type BytecodeIndex = int32

// Register is a local register slot index within a stack frame.
type Register = uint32

// Id is a label identifier for basic blocks or variants.
type Id = uint32

// FrameTypeSymbol is the reserved TypeSymbol naming the stack-frame
// type.
const FrameTypeSymbol TypeSymbol = 0
