package object

import (
	"sync"

	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
)

// VariantDescription is one variant of a declared object type: its
// name, monomorphized name, member list, and computed Layout.
type VariantDescription struct {
	Name     format.StringIndex
	TypeName format.StringIndex
	Members  []format.Member
	Layout   Layout
}

// ObjectDescription describes one declared type, indexed by TypeSymbol
// in an ObjectDescTable: its name, monomorphized name, total instance
// size, and an ordered list of VariantDescription.
type ObjectDescription struct {
	Name         format.StringIndex
	TypeName     format.StringIndex
	InstanceSize uint32
	Variants     []VariantDescription
}

// describeObject builds an ObjectDescription from a decoded format.Object,
// computing each variant's layout and the object's overall instance size
// (the largest variant's size, since variants of a sum type share one
// storage slot).
func describeObject(o format.Object) ObjectDescription {
	variants := make([]VariantDescription, len(o.Variants))
	var instanceSize uint32
	for i, v := range o.Variants {
		layout := ComputeLayout(v.Members)
		variants[i] = VariantDescription{
			Name:     v.Name,
			TypeName: v.TypeName,
			Members:  v.Members,
			Layout:   layout,
		}
		if layout.Size > instanceSize {
			instanceSize = layout.Size
		}
	}
	return ObjectDescription{
		Name:         o.Name,
		TypeName:     o.TypeName,
		InstanceSize: instanceSize,
		Variants:     variants,
	}
}

// DescTable is the frozen, TypeSymbol-indexed table of every declared
// object type in a module. TypeSymbol 0 is reserved for
// the stack-frame type and is never populated here; callers resolve it
// through the frame package instead.
//
// A DescTable is built with repeated calls to Push followed by one call
// to Freeze, after which it is read-only and may be shared freely
// across goroutines. Calling Push after Freeze, or Freeze twice, is a
// programmer error and panics.
type DescTable struct {
	mu     sync.Mutex
	descs  []ObjectDescription
	frozen bool
}

// NewDescTable returns an empty, unfrozen table.
func NewDescTable() *DescTable {
	return &DescTable{}
}

// Push appends an object's description, assigning it the next available
// TypeSymbol (starting at 1, since 0 is reserved). Panics if the table
// has already been frozen.
func (t *DescTable) Push(o format.Object) format.TypeSymbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		panic("object: Push called on a frozen DescTable")
	}
	symbol := format.TypeSymbol(len(t.descs) + 1)
	t.descs = append(t.descs, describeObject(o))
	return symbol
}

// Freeze installs the table as read-only. Calling Freeze twice panics,
// matching the "install once, fail loudly on second install" contract
// this repository uses for every process-wide singleton.
func (t *DescTable) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		panic("object: DescTable frozen twice")
	}
	t.frozen = true
}

// Get returns the description for symbol. Accessing TypeSymbol 0 or any
// index beyond the table's populated range is a fatal condition and is
// reported as a *errors.Error rather than a panic, so callers at the
// dispatch boundary can log it through logging.Fatal before aborting.
func (t *DescTable) Get(symbol format.TypeSymbol) (ObjectDescription, error) {
	if symbol == format.FrameTypeSymbol || int(symbol) > len(t.descs) {
		return ObjectDescription{}, errors.OutOfRange(errors.PhaseDispatch, []string{"object", "type_symbol"},
			"type_symbol", int(symbol), len(t.descs)+1)
	}
	return t.descs[symbol-1], nil
}

// Len reports how many object types are registered, excluding the
// reserved stack-frame symbol.
func (t *DescTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.descs)
}
