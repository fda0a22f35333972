// Package alloc implements the typed-pool allocator: one LIFO free list
// per TypeSymbol, plus a dedicated pool for stack-frame shells, giving
// O(1) amortized reuse of same-type storage.
package alloc
