// Package object holds the type-level metadata for Maru's object model:
// primitive/object type tags resolved against a live descriptor table,
// per-variant member layout, and the frozen, TypeSymbol-indexed
// descriptor table built once at VM bring-up.
package object
