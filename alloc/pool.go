package alloc

import (
	"sync"

	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/frame"
	"github.com/Ki11erRabbit/Maru/logging"
	"github.com/Ki11erRabbit/Maru/object"
	"github.com/Ki11erRabbit/Maru/refcount"
	"go.uber.org/zap"
)

// Allocator is a process-wide, mutex-protected typed-pool allocator.
// One free list is kept per TypeSymbol; a separate free list (pool 0)
// holds reusable stack-frame shells. The lock is held only across a
// push/pop of a FIFO-as-LIFO slice and one allocation, keeping every
// critical section short.
type Allocator struct {
	mu        sync.Mutex
	descs     *object.DescTable
	freeLists map[format.TypeSymbol][]*object.Instance
	framePool []*frame.StackFrame
}

// New returns an Allocator backed by a frozen object descriptor table.
func New(descs *object.DescTable) *Allocator {
	return &Allocator{
		descs:     descs,
		freeLists: make(map[format.TypeSymbol][]*object.Instance),
	}
}

// Allocate pops a free instance of the given type off its pool, or
// allocates a fresh one sized per the descriptor's layout if the pool
// is empty, initializes a unique-owner Metadata header on it, and
// returns it. An out-of-range symbol is a fatal condition: it is
// logged through logging.Fatal, which panics.
func (a *Allocator) Allocate(symbol format.TypeSymbol, variant format.VariantId) (*object.Instance, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if list := a.freeLists[symbol]; len(list) > 0 {
		inst := list[len(list)-1]
		a.freeLists[symbol] = list[:len(list)-1]
		inst.Metadata = object.Metadata{Refcount: refcount.New(), TypeID: symbol, VariantID: variant}
		return inst, nil
	}

	desc, err := a.descs.Get(symbol)
	if err != nil {
		logging.Fatal("alloc: allocate with unknown type symbol", zap.Uint32("symbol", symbol))
		return nil, err
	}

	data := make([]byte, desc.InstanceSize)
	return &object.Instance{
		Metadata: object.Metadata{Refcount: refcount.New(), TypeID: symbol, VariantID: variant},
		Data:     data,
	}, nil
}

// Reuse returns inst to its type's free list. The caller must have
// already observed the refcount reach zero; Reuse does not itself
// check this. It does not release the backing storage.
func (a *Allocator) Reuse(inst *object.Instance) {
	a.mu.Lock()
	defer a.mu.Unlock()
	symbol := inst.Metadata.TypeID
	a.freeLists[symbol] = append(a.freeLists[symbol], inst)
}

// Destroy physically releases inst's storage. Go's garbage collector
// reclaims the backing array once the last reference is dropped, so
// Destroy only drops inst's data area and clears its header; it does
// not remove inst from a free list it was already pushed onto.
func (a *Allocator) Destroy(inst *object.Instance) {
	inst.Data = nil
	inst.Metadata = object.Metadata{}
}

// AllocateStackFrame pops a frame shell off the frame pool (resetting
// its register arrays to varCount slots), or builds a fresh shell if
// the pool is empty.
func (a *Allocator) AllocateStackFrame(varCount uint32) *frame.StackFrame {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.framePool); n > 0 {
		f := a.framePool[n-1]
		a.framePool = a.framePool[:n-1]
		f.Reset(varCount)
		return f
	}
	return frame.New(varCount)
}

// ReuseStackFrame frees f's two parallel register arrays and pushes
// the now-memory-less shell back onto the frame pool.
func (a *Allocator) ReuseStackFrame(f *frame.StackFrame) {
	f.FreeMemory()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.framePool = append(a.framePool, f)
}

// DestroyStackFrame releases f's register arrays without returning the
// shell to the pool, the stack-frame analogue of Destroy.
func (a *Allocator) DestroyStackFrame(f *frame.StackFrame) {
	f.FreeMemory()
}

// poolDepth reports how many free instances of symbol are currently
// pooled. Exposed for tests; not part of the allocator's external
// contract.
func (a *Allocator) poolDepth(symbol format.TypeSymbol) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.freeLists[symbol])
}
