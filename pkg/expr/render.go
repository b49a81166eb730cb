package expr

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// Render returns the fully parenthesized form of e: constants as decimal
// integers, unary nodes as (<op><operand>), binary nodes as
// (<left><op><right>). An operator not defined for its node kind returns
// *types.OperatorError.
func (e *Expr) Render() (string, error) {
	var b strings.Builder
	if err := render(&b, e.h); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String implements fmt.Stringer.
func (e *Expr) String() string {
	s, err := e.Render()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return s
}

func render(b *strings.Builder, h *cow.Handle[node]) error {
	n := h.Get()
	if n.kind == types.KindConstant {
		b.WriteString(strconv.Itoa(n.value))
		return nil
	}
	if !n.op.ValidFor(n.kind) {
		return &types.OperatorError{Kind: n.kind, Op: n.op}
	}

	b.WriteByte('(')
	switch n.kind {
	case types.KindUnary:
		b.WriteString(string(n.op))
		if err := render(b, n.operands[0]); err != nil {
			return err
		}
	case types.KindBinary:
		if err := render(b, n.operands[0]); err != nil {
			return err
		}
		b.WriteString(string(n.op))
		if err := render(b, n.operands[1]); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}
