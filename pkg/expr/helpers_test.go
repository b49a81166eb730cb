package expr

import (
	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// counter is a cow.Tracker counting node allocations and frees.
type counter struct {
	allocated int
	freed     int
}

func (c *counter) Allocated(string)          { c.allocated++ }
func (c *counter) Duplicated(string, string) {}
func (c *counter) Freed(string)              { c.freed++ }

func (c *counter) live() int { return c.allocated - c.freed }

// buildScenario returns ((-5)*(3+4)) with every temporary handle released,
// so the result holds the only external handle on its nodes.
func buildScenario(opts ...cow.Option) *Expr {
	five := Const(5, opts...)
	neg := Unary(types.OpNeg, five, opts...)
	three := Const(3, opts...)
	four := Const(4, opts...)
	sum := Binary(types.OpAdd, three, four, opts...)
	t := Binary(types.OpMul, neg, sum, opts...)
	for _, e := range []*Expr{five, neg, three, four, sum} {
		e.Release()
	}
	return t
}
