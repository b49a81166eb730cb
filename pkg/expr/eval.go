package expr

import (
	"fmt"

	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Eval computes the value of e. The left operand of a binary node is
// evaluated before the right. An operator not defined for its node kind
// returns *types.OperatorError; dividing by zero returns an error wrapping
// types.ErrDivisionByZero.
func (e *Expr) Eval() (int, error) {
	return eval(e.h)
}

func eval(h *cow.Handle[node]) (int, error) {
	n := h.Get()
	switch n.kind {
	case types.KindConstant:
		return n.value, nil

	case types.KindUnary:
		if n.op != types.OpNeg {
			return 0, &types.OperatorError{Kind: n.kind, Op: n.op}
		}
		v, err := eval(n.operands[0])
		if err != nil {
			return 0, err
		}
		return -v, nil

	case types.KindBinary:
		l, err := eval(n.operands[0])
		if err != nil {
			return 0, err
		}
		r, err := eval(n.operands[1])
		if err != nil {
			return 0, err
		}
		return apply(n, l, r)
	}
	return 0, &types.OperatorError{Kind: n.kind, Op: n.op}
}

func apply(n node, l, r int) (int, error) {
	switch n.op {
	case types.OpAdd:
		return l + r, nil
	case types.OpSub:
		return l - r, nil
	case types.OpMul:
		return l * r, nil
	case types.OpDiv:
		if r == 0 {
			return 0, fmt.Errorf("divide %d: %w", l, types.ErrDivisionByZero)
		}
		return l / r, nil
	}
	return 0, &types.OperatorError{Kind: n.kind, Op: n.op}
}
