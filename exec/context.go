package exec

import (
	"github.com/Ki11erRabbit/Maru/alloc"
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format"
	"github.com/Ki11erRabbit/Maru/funcs"
	"github.com/Ki11erRabbit/Maru/object"
	"github.com/Ki11erRabbit/Maru/strtab"
)

// globalSlot holds one global variable's current value, mirroring the
// register file's (raw word, tracked type) pairing.
type globalSlot struct {
	value uint64
	tag   format.TypeTag
}

// Context bundles everything a single instruction's dispatch needs:
// the frozen descriptor and function tables, the allocator, the
// interned string table, and global variable storage. One Context is
// built per loaded module and shared read-mostly across every call.
type Context struct {
	Descs     *object.DescTable
	Alloc     *alloc.Allocator
	Strings   *strtab.Table
	Functions *funcs.Table

	globals []globalSlot
	heap    heapTable
}

// NewContext builds a Context with globalCount uninitialized global
// slots.
func NewContext(descs *object.DescTable, allocator *alloc.Allocator, strings *strtab.Table, functions *funcs.Table, globalCount int) *Context {
	return &Context{
		Descs:     descs,
		Alloc:     allocator,
		Strings:   strings,
		Functions: functions,
		globals:   make([]globalSlot, globalCount),
	}
}

func (c *Context) global(id uint32) (*globalSlot, error) {
	if int(id) >= len(c.globals) {
		return nil, errors.OutOfRange(errors.PhaseDispatch, []string{"exec", "global_id"}, "global_id", int(id), len(c.globals))
	}
	return &c.globals[id], nil
}
