package cow

import (
	"fmt"

	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Handle is a value-semantics view of a possibly shared Box. Use Copy to
// create another owner; assigning the pointer does not attach anything.
type Handle[V any] struct {
	box *Box[V]
}

// New returns a handle on a fresh box holding value.
func New[V any](value V, opts ...Option) *Handle[V] {
	return &Handle[V]{box: NewBox(value, opts...)}
}

// Default returns a handle on a fresh box holding V's zero value.
func Default[V any](opts ...Option) *Handle[V] {
	var zero V
	return New(zero, opts...)
}

// Copy attaches a new handle to h's box. The value is not copied.
func (h *Handle[V]) Copy() *Handle[V] {
	b := h.live("copy")
	b.Acquire()
	return &Handle[V]{box: b}
}

// Assign detaches h from its box and attaches it to other's. The new box is
// acquired before the old one is released, so assigning a handle to itself,
// or to a handle already sharing its box, never frees the box.
func (h *Handle[V]) Assign(other *Handle[V]) *Handle[V] {
	nb := other.live("assign from")
	ob := h.live("assign to")
	nb.Acquire()
	ob.Release()
	h.box = nb
	return h
}

// Release detaches h from its box and reports whether that freed the box.
// The handle is dead afterwards; releasing it again is a no-op.
func (h *Handle[V]) Release() (freed bool) {
	if h.box == nil {
		return false
	}
	b := h.box
	h.box = nil
	return b.Release()
}

// Released reports whether Release has been called on h.
func (h *Handle[V]) Released() bool {
	return h.box == nil
}

// Get returns a copy of the current value without detaching from the box.
func (h *Handle[V]) Get() V {
	return h.live("read").value
}

// Read returns accessor applied to h's value. It never copies the box.
func Read[V, R any](h *Handle[V], accessor func(V) R) R {
	return accessor(h.live("read").value)
}

// Write applies mutator to a value owned by h alone. When the box is shared,
// h first moves to a duplicate; the other handles keep the original. The
// duplicate is made before h detaches, so a panicking Copy leaves h attached
// to the shared box. Write returns h so updates chain.
func (h *Handle[V]) Write(mutator func(*V)) *Handle[V] {
	b := h.live("write")
	if !b.Unique() {
		d := b.duplicate()
		// Shared, so the count stays above zero.
		b.Release()
		h.box = d
		b = d
	}
	mutator(&b.value)
	return h
}

// Unique reports whether h is the only handle on its box.
func (h *Handle[V]) Unique() bool {
	return h.live("inspect").Unique()
}

// UseCount returns the number of handles attached to h's box.
func (h *Handle[V]) UseCount() int {
	return h.live("inspect").Count()
}

// Shares reports whether h and other are attached to the same box.
func (h *Handle[V]) Shares(other *Handle[V]) bool {
	return h.live("inspect") == other.live("inspect")
}

// BoxID returns the ID of the box h is attached to.
func (h *Handle[V]) BoxID() string {
	return h.live("inspect").ID()
}

func (h *Handle[V]) live(op string) *Box[V] {
	if h == nil || h.box == nil {
		panic(fmt.Errorf("%s: %w", op, types.ErrHandleReleased))
	}
	return h.box
}
