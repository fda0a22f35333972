// Package exec implements the per-instruction dispatch contracts of
// the bytecode catalog: what each opcode does to a stack frame's
// register file, the object descriptor table, and the allocator. It
// stops at the single-instruction boundary — sequencing opcodes,
// following jumps, and looping until halt is the job of a bytecode
// interpreter loop, which this package deliberately leaves out of
// scope.
package exec
