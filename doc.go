// Package maru provides a Go implementation of the Maru VM runtime
// core: the on-disk module file container, the bytecode decoder, the
// hybrid reference counter, the object descriptor table, the typed-
// pool allocator, the stack frame/register file, and the per-
// instruction dispatch contracts a bytecode interpreter is built on.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	maru/               Root package with the Machine facade
//	├── format/         Module file container codec
//	│   └── internal/binary/ little-endian fixed-width reader/writer
//	├── bytecode/       Opcode catalog and instruction decoder
//	├── refcount/       Hybrid (unique/shared) reference counter
//	├── object/         Type tags, descriptor table, layout calculator
//	├── alloc/          Typed-pool allocator
//	├── frame/          Stack frame and register file
//	├── strtab/         String internment table
//	├── funcs/          Function table and one-shot native resolution
//	├── exec/           Per-instruction dispatch contracts
//	├── linker/         Placeholder for a future loader/linker
//	├── errors/         Structured decode/runtime error type
//	├── logging/        zap-backed logger
//	└── cmd/maruinspect/ Terminal browser for a decoded module file
//
// # Quick start
//
// Load a module file and set up a Machine ready to dispatch
// instructions against it:
//
//	m, err := maru.Load(data)
//	if err != nil {
//		return err
//	}
//	step, err := m.Step(frame, inst)
package maru
