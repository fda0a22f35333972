// Package frame implements the per-call stack frame and its register
// file: the doubly-linked live call chain, the return and closure
// scratch slots, and the parallel value/type-tag register arrays.
package frame
