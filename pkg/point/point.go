// Package point wraps types.Point in a copy-on-write handle. Copies share one
// point until either side sets a coordinate.
package point

import (
	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Handle is a shared, copy-on-write reference to a point.
type Handle struct {
	h *cow.Handle[types.Point]
}

// Default returns a handle on the origin.
func Default(opts ...cow.Option) *Handle {
	return &Handle{h: cow.Default[types.Point](opts...)}
}

// New returns a handle on the point (x, y).
func New(x, y int, opts ...cow.Option) *Handle {
	return FromPoint(types.NewPoint(x, y), opts...)
}

// FromPoint returns a handle on a copy of p.
func FromPoint(p types.Point, opts ...cow.Option) *Handle {
	return &Handle{h: cow.New(p, opts...)}
}

// Copy returns another handle sharing the same point.
func (p *Handle) Copy() *Handle {
	return &Handle{h: p.h.Copy()}
}

// Assign makes p share other's point.
func (p *Handle) Assign(other *Handle) *Handle {
	p.h.Assign(other.h)
	return p
}

// Release detaches p. It reports whether the point was freed.
func (p *Handle) Release() bool {
	return p.h.Release()
}

// X returns the x coordinate.
func (p *Handle) X() int {
	return cow.Read(p.h, types.Point.X)
}

// Y returns the y coordinate.
func (p *Handle) Y() int {
	return cow.Read(p.h, types.Point.Y)
}

// Point returns a copy of the current point.
func (p *Handle) Point() types.Point {
	return p.h.Get()
}

// SetX sets the x coordinate on p's own copy of the point.
func (p *Handle) SetX(x int) *Handle {
	p.h.Write(func(pt *types.Point) { pt.SetX(x) })
	return p
}

// SetY sets the y coordinate on p's own copy of the point.
func (p *Handle) SetY(y int) *Handle {
	p.h.Write(func(pt *types.Point) { pt.SetY(y) })
	return p
}

// Shares reports whether p and other reference the same point.
func (p *Handle) Shares(other *Handle) bool {
	return p.h.Shares(other.h)
}

// UseCount returns the number of handles sharing p's point.
func (p *Handle) UseCount() int {
	return p.h.UseCount()
}
