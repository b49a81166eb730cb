package expr

import (
	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Expr is a handle on a shared expression node.
type Expr struct {
	h *cow.Handle[node]
}

// Const returns a leaf holding n.
func Const(n int, opts ...cow.Option) *Expr {
	return newExpr(node{kind: types.KindConstant, value: n}, opts)
}

// Unary returns op applied to operand. The new node shares operand's node;
// the caller keeps its own handle.
func Unary(op types.Operator, operand *Expr, opts ...cow.Option) *Expr {
	return newExpr(node{
		kind:     types.KindUnary,
		op:       op,
		operands: []*cow.Handle[node]{operand.h.Copy()},
	}, opts)
}

// Binary returns op applied to left and right. The new node shares both
// operand nodes; the caller keeps its own handles.
func Binary(op types.Operator, left, right *Expr, opts ...cow.Option) *Expr {
	return newExpr(node{
		kind:     types.KindBinary,
		op:       op,
		operands: []*cow.Handle[node]{left.h.Copy(), right.h.Copy()},
	}, opts)
}

func newExpr(n node, opts []cow.Option) *Expr {
	return &Expr{h: cow.New(n, opts...)}
}

// Copy returns another handle on e's node.
func (e *Expr) Copy() *Expr {
	return &Expr{h: e.h.Copy()}
}

// Assign makes e refer to other's node. Self-assignment is safe.
func (e *Expr) Assign(other *Expr) *Expr {
	e.h.Assign(other.h)
	return e
}

// Release detaches e and reports whether its node was freed.
func (e *Expr) Release() bool {
	return e.h.Release()
}

// Kind returns the variant of e's node.
func (e *Expr) Kind() types.Kind {
	return cow.Read(e.h, func(n node) types.Kind { return n.kind })
}

// Shares reports whether e and other refer to the same node.
func (e *Expr) Shares(other *Expr) bool {
	return e.h.Shares(other.h)
}

// UseCount returns the number of handles on e's node, including handles
// held by parent nodes.
func (e *Expr) UseCount() int {
	return e.h.UseCount()
}
