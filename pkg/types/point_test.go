package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDefault(t *testing.T) {
	var p Point
	assert.Equal(t, 0, p.X())
	assert.Equal(t, 0, p.Y())
}

func TestPointSettersChain(t *testing.T) {
	p := NewPoint(10, 20)
	assert.Equal(t, 10, p.X())
	assert.Equal(t, 20, p.Y())

	p.SetX(1).SetY(2)
	assert.Equal(t, NewPoint(1, 2), p)
}

func TestPointCopyIsIndependent(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := p1
	p2.SetX(7)

	assert.Equal(t, 1, p1.X(), "assignment copies the point")
	assert.Equal(t, 7, p2.X())
}
