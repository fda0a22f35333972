// Package errors provides the structured error type used across the Maru
// VM core.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (what kind of failure it was). The Error type carries a field path and
// an optional wrapped cause so decode diagnostics can point at the exact
// table entry that failed.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncated).
//		Path("bytecode_table", "entry[3]").
//		Detail("need 10 bytes, have 2").
//		Build()
//
// Or use the convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseDecode, path, 10, 2)
//	err := errors.OutOfRange(errors.PhaseDecode, path, "string_index", 42, 10)
//
// All errors implement the standard error interface and support
// errors.Is/As. Multiple independent failures (e.g. several invariant
// violations found while validating a module) are combined with
// go.uber.org/multierr rather than stopping at the first one.
package errors
