package cow

// Tracker observes box lifecycle events. Implementations must not call back
// into the box or handle that raised the event.
type Tracker interface {
	// Allocated is called for every new box, including duplicates.
	Allocated(id string)
	// Duplicated follows the Allocated call for a box created by
	// copy-on-write from src.
	Duplicated(src, dst string)
	// Freed is called once when a box's count reaches zero.
	Freed(id string)
}

// Copyable values produce their own duplicate when a shared box is written.
// Values that do not implement it are copied by assignment.
type Copyable[V any] interface {
	Copy() V
}

// Disposer values are notified when the box holding them is destroyed,
// before the value is zeroed. Values holding handles release them here.
type Disposer interface {
	Dispose()
}

// Option configures new boxes.
type Option func(*options)

type options struct {
	tracker Tracker
}

// WithTracker reports the lifecycle of the box, and of every box duplicated
// from it, to t.
func WithTracker(t Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
