// Package funcs implements the function table and its one-shot native
// function pointer resolution: a FunctionSymbol-indexed vector of
// entries, each either a bytecode body or (once the linker resolves
// it) a native function pointer, plus a call counter reserved for
// future tiering.
package funcs
