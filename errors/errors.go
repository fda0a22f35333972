package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred.
type Phase string

const (
	PhaseDecode    Phase = "decode"    // module file -> in-memory tables
	PhaseEncode    Phase = "encode"    // in-memory tables -> module file
	PhaseValidate  Phase = "validate"  // cross-table invariant checking
	PhaseAlloc     Phase = "alloc"     // typed-pool allocator
	PhaseRefcount  Phase = "refcount"  // hybrid reference counter
	PhaseDispatch  Phase = "dispatch"  // instruction execution contracts
	PhaseFrame     Phase = "frame"     // stack frame / register file
	PhaseFunctable Phase = "functable" // function table resolution
)

// Kind categorizes the error.
type Kind string

const (
	KindTruncated      Kind = "truncated"
	KindBadMagic       Kind = "bad_magic"
	KindBadVersion     Kind = "bad_version"
	KindUnknownTag     Kind = "unknown_tag"
	KindOutOfRange     Kind = "out_of_range"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindLengthMismatch Kind = "length_mismatch"
	KindInvariant      Kind = "invariant_violation"
	KindAllocation     Kind = "allocation_failed"
	KindAlreadySet     Kind = "already_set"
	KindTrap           Kind = "trap"
)

// Error is the structured error type used throughout the Maru VM core.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's Phase and Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{Phase: phase, Kind: kind},
	}
}

// Path sets the field path.
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Truncated creates a truncated-input decode error.
func Truncated(phase Phase, path []string, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// BadMagic creates a bad-magic-byte decode error.
func BadMagic(got byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadMagic,
		Detail: fmt.Sprintf("expected magic 0x4D, got 0x%02X", got),
		Value:  got,
	}
}

// UnknownTag creates an unknown-discriminant decode error.
func UnknownTag(phase Phase, path []string, what string, tag uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownTag,
		Path:   path,
		Detail: fmt.Sprintf("unknown %s tag: %d", what, tag),
		Value:  tag,
	}
}

// OutOfRange creates an out-of-range symbol/index error.
func OutOfRange(phase Phase, path []string, what string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("%s %d out of range (length %d)", what, index, length),
		Value:  index,
	}
}

// InvalidUTF8 creates an invalid-UTF-8 decode error.
func InvalidUTF8(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: "invalid UTF-8 in string table entry",
	}
}

// LengthMismatch creates a length-mismatch invariant error.
func LengthMismatch(phase Phase, path []string, what string, a, b int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthMismatch,
		Path:   path,
		Detail: fmt.Sprintf("%s: %d != %d", what, a, b),
	}
}

// Invariant creates a generic invariant-violation error. These are
// always fatal - the caller is expected to panic with this error rather
// than propagate it, except during module validation where multiple may
// be collected before reporting.
func Invariant(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: detail,
	}
}

// Trap creates a non-fatal runtime arithmetic exception (divide by
// zero, signed division overflow): the running bytecode program must consume
// this, not the host process.
func Trap(detail string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindTrap,
		Detail: detail,
	}
}

// AllocationFailed creates an allocator-exhaustion error.
func AllocationFailed(detail string) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindAllocation,
		Detail: detail,
	}
}

// AlreadySet creates a one-shot-write-violated-twice error.
func AlreadySet(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAlreadySet,
		Detail: fmt.Sprintf("%s already set", what),
	}
}
