package refcount

import "sync/atomic"

// Counter is a hybrid reference counter: positive values are a
// non-atomic, uniquely-owned count; negative values are an atomic,
// shared count whose magnitude is the true reference count. Zero is
// never a valid observed value.
type Counter struct {
	v atomic.Int64
}

// New creates a Counter for a freshly allocated, uniquely-owned object.
func New() *Counter {
	c := &Counter{}
	c.v.Store(1)
	return c
}

// NewAtomic creates a Counter for a freshly allocated object that is
// shared from the moment it is created.
func NewAtomic() *Counter {
	c := &Counter{}
	c.v.Store(-1)
	return c
}

// FetchValue reads the current signed count. This read is non-atomic by
// contract: reaching the counter at all implies the caller already
// holds a live reference, so no concurrent writer can be racing a first
// publication.
func (c *Counter) FetchValue() int64 {
	return c.v.Load()
}

// MakeShared transitions a unique (positive) counter into shared
// (negative) mode by negating it in place. Idempotent when already
// shared. This is a one-way transition.
func (c *Counter) MakeShared() {
	for {
		old := c.v.Load()
		if old <= 0 {
			return
		}
		if c.v.CompareAndSwap(old, -old) {
			return
		}
	}
}

// MakeUnshared transitions a shared counter back to unique mode, but
// only when the counter is exactly -1 (a true unique reference that
// happens to be in shared representation). Returns true on success.
// This is the only legal back-transition, and only valid when the
// caller can prove no concurrent holder exists.
func (c *Counter) MakeUnshared() bool {
	return c.v.CompareAndSwap(-1, 1)
}

// Increment increments the reference count. Panics if the counter is
// currently zero, which is a miscompiled-bytecode or VM-bug condition.
func (c *Counter) Increment() {
	for {
		old := c.v.Load()
		if old == 0 {
			panic("refcount: incrementing a reference count of zero")
		}
		var next int64
		if old < 0 {
			next = old - 1 // magnitude grows
		} else {
			next = old + 1
		}
		if c.v.CompareAndSwap(old, next) {
			return
		}
	}
}

// Decrement decrements the reference count and returns the new signed
// value. Panics if the counter is currently zero. Callers interpret a
// returned value of 0 as "the object reached zero references; destroy
// it" regardless of which mode it was decremented in.
func (c *Counter) Decrement() int64 {
	for {
		old := c.v.Load()
		if old == 0 {
			panic("refcount: decrementing a reference count of zero")
		}
		var next int64
		if old < 0 {
			next = old + 1 // magnitude shrinks
		} else {
			next = old - 1
		}
		if c.v.CompareAndSwap(old, next) {
			return next
		}
	}
}

// IsShared reports whether the counter is currently in shared (atomic)
// mode, i.e. its sign is negative.
func (c *Counter) IsShared() bool {
	return c.v.Load() < 0
}

// IsZero reports whether the last-observed count reached zero, meaning
// the owning object has no remaining references and must be destroyed.
// Both +0 and -0 collapse to int64(0), so a single comparison suffices.
func IsZero(decremented int64) bool {
	return decremented == 0
}
