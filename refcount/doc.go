// Package refcount implements the hybrid precise reference counter used
// by every heap object in the Maru VM.
//
// A single signed 64-bit word encodes both the count and the access
// mode through its sign, following the Perceus model: a positive count
// means the object is uniquely owned and updates are non-atomic; a
// negative count means the object has been shared across an unknown
// number of owners and updates must be atomic, with the magnitude of
// the negative value giving the true count. Most objects in a
// register-based language never leave their owning frame, so paying for
// atomics only once an object is actually shared is a meaningful win.
//
// The zero value of Counter is invalid and must never be observed; a
// Counter is constructed with either New or NewAtomic.
package refcount
