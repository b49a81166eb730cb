package cow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Box holds a value and the number of handles attached to it. A box with a
// count of zero is destroyed; Acquire and Release on it panic.
type Box[V any] struct {
	id      string
	value   V
	count   int
	tracker Tracker
}

// NewBox allocates a box holding value with a count of one.
func NewBox[V any](value V, opts ...Option) *Box[V] {
	o := buildOptions(opts)
	return newBox(value, o.tracker)
}

func newBox[V any](value V, tracker Tracker) *Box[V] {
	b := &Box[V]{
		id:      generateUUID(),
		value:   value,
		count:   1,
		tracker: tracker,
	}
	if b.tracker != nil {
		b.tracker.Allocated(b.id)
	}
	return b
}

// ID returns the identifier assigned when the box was allocated.
func (b *Box[V]) ID() string { return b.id }

// Count returns the number of attached handles.
func (b *Box[V]) Count() int { return b.count }

// Unique reports whether exactly one handle is attached.
func (b *Box[V]) Unique() bool { return b.count == 1 }

// Acquire attaches one more handle.
func (b *Box[V]) Acquire() {
	b.mustBeLive("acquire")
	b.count++
}

// Release detaches one handle. When the count reaches zero the value is
// disposed and zeroed, the tracker is told, and Release returns true. The
// box must not be used after that.
func (b *Box[V]) Release() (freed bool) {
	b.mustBeLive("release")
	b.count--
	if b.count > 0 {
		return false
	}
	dispose(&b.value)
	var zero V
	b.value = zero
	if b.tracker != nil {
		b.tracker.Freed(b.id)
	}
	return true
}

// duplicate allocates a new box, count one, holding a copy of b's value.
func (b *Box[V]) duplicate() *Box[V] {
	b.mustBeLive("duplicate")
	d := newBox(cloneValue(b.value), b.tracker)
	if d.tracker != nil {
		d.tracker.Duplicated(b.id, d.id)
	}
	return d
}

func (b *Box[V]) mustBeLive(op string) {
	if b.count <= 0 {
		panic(fmt.Errorf("%s box %s: %w", op, b.id, types.ErrBoxDestroyed))
	}
}

func cloneValue[V any](v V) V {
	if c, ok := any(v).(Copyable[V]); ok {
		return c.Copy()
	}
	return v
}

// dispose calls Dispose on the value, whether it is implemented on the value
// or on its pointer.
func dispose[V any](v *V) {
	if d, ok := any(*v).(Disposer); ok {
		d.Dispose()
		return
	}
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
	}
}

// generateUUID generates a new UUID v7 for box IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
