package exec

import (
	"sync"

	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/object"
)

// A register never stores a raw *object.Instance pointer; it stores a
// handle, a 1-based index into the Context's live-object table. Handle
// 0 is reserved to mean "no object" (the IsNull contract checks
// against it). This keeps heap references as an explicit newtype
// rather than raw pointer arithmetic, without unsafe pointer-to-integer
// conversions, following the same handle-plus-free-list shape the
// allocator already uses for pooled instances.
type handle uint64

const nullHandle handle = 0

// heapTable maps live handles to their instances, reusing freed slots
// the way a resource table recycles descriptor slots.
type heapTable struct {
	mu    sync.Mutex
	slots []*object.Instance
	free  []handle
}

func (h *heapTable) publish(inst *object.Instance) handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.free); n > 0 {
		idx := h.free[n-1]
		h.free = h.free[:n-1]
		h.slots[idx-1] = inst
		return idx
	}
	h.slots = append(h.slots, inst)
	return handle(len(h.slots))
}

func (h *heapTable) resolve(hd handle) (*object.Instance, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hd == nullHandle || int(hd) > len(h.slots) || h.slots[hd-1] == nil {
		return nil, errors.New(errors.PhaseDispatch, errors.KindInvariant).
			Path("exec", "handle").
			Detail("dereferenced a null or unknown object handle").
			Build()
	}
	return h.slots[hd-1], nil
}

func (h *heapTable) release(hd handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hd == nullHandle || int(hd) > len(h.slots) {
		return
	}
	h.slots[hd-1] = nil
	h.free = append(h.free, hd)
}
