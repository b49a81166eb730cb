package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cowbox/pkg/types"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		expr *Expr
		want int
	}{
		{name: "constant", expr: Const(7), want: 7},
		{name: "negative constant", expr: Const(-7), want: -7},
		{name: "negation", expr: Unary(types.OpNeg, Const(7)), want: -7},
		{name: "double negation", expr: Unary(types.OpNeg, Unary(types.OpNeg, Const(7))), want: 7},
		{name: "add", expr: Binary(types.OpAdd, Const(3), Const(4)), want: 7},
		{name: "subtract", expr: Binary(types.OpSub, Const(3), Const(4)), want: -1},
		{name: "multiply", expr: Binary(types.OpMul, Const(3), Const(4)), want: 12},
		{name: "divide", expr: Binary(types.OpDiv, Const(12), Const(4)), want: 3},
		{name: "divide truncates toward zero", expr: Binary(types.OpDiv, Const(-7), Const(2)), want: -3},
		{name: "scenario", expr: buildScenario(), want: -35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.expr.Eval()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	zero := Binary(types.OpSub, Const(4), Const(4))
	e := Binary(types.OpDiv, Const(1), zero)

	_, err := e.Eval()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDivisionByZero)
	assert.NotErrorIs(t, err, types.ErrInvalidOperator)
}

func TestEvalInvalidOperator(t *testing.T) {
	tests := []struct {
		name     string
		expr     *Expr
		wantKind types.Kind
		wantOp   types.Operator
	}{
		{
			name:     "unary plus",
			expr:     Unary(types.OpAdd, Const(1)),
			wantKind: types.KindUnary,
			wantOp:   types.OpAdd,
		},
		{
			name:     "binary modulo",
			expr:     Binary("%", Const(1), Const(2)),
			wantKind: types.KindBinary,
			wantOp:   "%",
		},
		{
			name:     "unary operator checked before its operand",
			expr:     Unary(types.OpAdd, Binary(types.OpDiv, Const(1), Const(0))),
			wantKind: types.KindUnary,
			wantOp:   types.OpAdd,
		},
		{
			name:     "nested in a valid parent",
			expr:     Binary(types.OpAdd, Const(1), Unary("!", Const(0))),
			wantKind: types.KindUnary,
			wantOp:   "!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.expr.Eval()
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrInvalidOperator)
			assert.NotErrorIs(t, err, types.ErrDivisionByZero)

			var opErr *types.OperatorError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, tt.wantKind, opErr.Kind)
			assert.Equal(t, tt.wantOp, opErr.Op)
		})
	}
}

func TestEvalLeftBeforeRight(t *testing.T) {
	// Both operands fail; the left error wins.
	e := Binary(types.OpAdd,
		Binary(types.OpDiv, Const(1), Const(0)),
		Unary("?", Const(1)))

	_, err := e.Eval()
	assert.ErrorIs(t, err, types.ErrDivisionByZero)
}
