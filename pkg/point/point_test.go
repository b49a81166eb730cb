package point

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/cowbox/pkg/types"
)

func TestDefault(t *testing.T) {
	h := Default()
	assert.Equal(t, 0, h.X())
	assert.Equal(t, 0, h.Y())
}

func TestFromPoint(t *testing.T) {
	p := types.NewPoint(3, 4)
	h := FromPoint(p)
	p.SetX(99)

	assert.Equal(t, 3, h.X(), "handle holds its own copy")
}

func TestCopyThenSet(t *testing.T) {
	tests := []struct {
		name       string
		update     func(*Handle)
		wantWriter types.Point
	}{
		{
			name:       "set x",
			update:     func(h *Handle) { h.SetX(5) },
			wantWriter: types.NewPoint(5, 20),
		},
		{
			name:       "set y",
			update:     func(h *Handle) { h.SetY(6) },
			wantWriter: types.NewPoint(10, 6),
		},
		{
			name:       "chained",
			update:     func(h *Handle) { h.SetX(1).SetY(2) },
			wantWriter: types.NewPoint(1, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h1 := New(10, 20)
			h2 := h1.Copy()
			assert.True(t, h1.Shares(h2))

			tt.update(h2)

			assert.Equal(t, tt.wantWriter, h2.Point())
			assert.Equal(t, types.NewPoint(10, 20), h1.Point())
			assert.False(t, h1.Shares(h2))
		})
	}
}

func TestAssign(t *testing.T) {
	h1 := New(1, 2)
	h2 := New(3, 4)

	h1.Assign(h2)
	assert.Equal(t, types.NewPoint(3, 4), h1.Point())
	assert.Equal(t, 2, h2.UseCount())

	h1.Assign(h1)
	assert.Equal(t, 2, h1.UseCount())

	assert.False(t, h1.Release())
	assert.True(t, h2.Release())
}
