package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorValidFor(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		kind Kind
		want bool
	}{
		{name: "unary negation", op: OpNeg, kind: KindUnary, want: true},
		{name: "unary plus rejected", op: OpAdd, kind: KindUnary, want: false},
		{name: "binary add", op: OpAdd, kind: KindBinary, want: true},
		{name: "binary sub", op: OpSub, kind: KindBinary, want: true},
		{name: "binary mul", op: OpMul, kind: KindBinary, want: true},
		{name: "binary div", op: OpDiv, kind: KindBinary, want: true},
		{name: "binary modulo rejected", op: "%", kind: KindBinary, want: false},
		{name: "empty operator rejected", op: "", kind: KindBinary, want: false},
		{name: "constants take no operator", op: OpAdd, kind: KindConstant, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.ValidFor(tt.kind))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "constant", KindConstant.String())
	assert.Equal(t, "unary", KindUnary.String())
	assert.Equal(t, "binary", KindBinary.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
