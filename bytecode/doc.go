// Package bytecode implements the instruction catalog and decoder: a
// bit-exact 80-opcode enumeration and a cursor-based decoder that
// turns a bytecode blob into a sequence of Instruction values. Only
// the per-instruction decode contract lives here; the dispatch
// semantics (what each opcode does to a stack frame) live in package
// exec, and a full interpreter loop is deliberately out of scope.
package bytecode
