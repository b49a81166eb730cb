package types

// Point is a plain two-field value. The zero value is the origin {0, 0}.
type Point struct {
	x int
	y int
}

// NewPoint returns the point (x, y).
func NewPoint(x, y int) Point {
	return Point{x: x, y: y}
}

// X returns the x coordinate.
func (p Point) X() int { return p.x }

// Y returns the y coordinate.
func (p Point) Y() int { return p.y }

// SetX sets the x coordinate and returns p so setters chain.
func (p *Point) SetX(x int) *Point {
	p.x = x
	return p
}

// SetY sets the y coordinate and returns p so setters chain.
func (p *Point) SetY(y int) *Point {
	p.y = y
	return p
}
