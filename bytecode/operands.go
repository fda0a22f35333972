package bytecode

import "github.com/Ki11erRabbit/Maru/format"

// Register and Id mirror format's index types; re-exported here so
// callers working purely with bytecode need not import format for
// these two names.
type Register = format.Register
type Id = format.Id

// CallArgument is one argument slot passed to Call/CallTail/Invoke/
// InvokeTail: which register holds the value, and whether the callee's
// copy should bump the value's refcount.
type CallArgument struct {
	IncrementRef bool
	Register     Register
}

// JumpBranch names a destination for Jump/If/Switch/Match: the target
// block's label and a byte offset into the bytecode blob.
type JumpBranch struct {
	BlockID Id
	Offset  int32
}

// SwitchCase is one arm of a Switch instruction: match a constant
// value, then take the given branch.
type SwitchCase struct {
	Value  uint64
	Branch JumpBranch
}

// MatchCase is one arm of a Match instruction: match a variant tag,
// then take the given branch.
type MatchCase struct {
	Tag    Id
	Branch JumpBranch
}
