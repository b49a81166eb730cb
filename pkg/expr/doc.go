// Package expr builds integer arithmetic expressions whose nodes are shared
// through copy-on-write handles.
//
// Constructing a node attaches to its operands instead of copying them, so
// expressions form a DAG:
//
//	t := expr.Binary(types.OpMul,
//		expr.Unary(types.OpNeg, expr.Const(5)),
//		expr.Binary(types.OpAdd, expr.Const(3), expr.Const(4)))
//	sq := expr.Binary(types.OpMul, t, t) // t's node is shared twice
//	sq.Render()                          // "(((-5)*(3+4))*((-5)*(3+4)))"
//	sq.Eval()                            // 1225
//
// Nodes never change after construction. Eval and Render only read, so they
// are safe on shared nodes. Releasing the last handle on a node releases its
// operands in turn.
package expr
