package expr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cowbox/pkg/types"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		expr *Expr
		want string
	}{
		{name: "constant", expr: Const(42), want: "42"},
		{name: "negative constant", expr: Const(-5), want: "-5"},
		{name: "negation", expr: Unary(types.OpNeg, Const(5)), want: "(-5)"},
		{name: "binary", expr: Binary(types.OpAdd, Const(3), Const(4)), want: "(3+4)"},
		{name: "negative left operand", expr: Binary(types.OpAdd, Const(-5), Const(3)), want: "(-5+3)"},
		{name: "scenario", expr: buildScenario(), want: "((-5)*(3+4))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.expr.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestRenderInvalidOperator(t *testing.T) {
	e := Binary(types.OpMul, Const(2), Unary(types.OpAdd, Const(1)))

	_, err := e.Render()
	assert.ErrorIs(t, err, types.ErrInvalidOperator)
	assert.Equal(t, `<invalid: invalid operator "+" in unary node>`, e.String())
}

func TestRenderIsStable(t *testing.T) {
	e := buildScenario()
	first, err := e.Render()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := e.Render()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestConcurrentReads(t *testing.T) {
	tree := buildScenario()
	sq := Binary(types.OpMul, tree, tree)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			v, err := sq.Eval()
			assert.NoError(t, err)
			assert.Equal(t, 1225, v)
		}()
		go func() {
			defer wg.Done()
			s, err := sq.Render()
			assert.NoError(t, err)
			assert.Equal(t, "(((-5)*(3+4))*((-5)*(3+4)))", s)
		}()
	}
	wg.Wait()
}
