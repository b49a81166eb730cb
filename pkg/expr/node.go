package expr

import (
	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

// node is one immutable expression node. operands holds zero, one, or two
// handles depending on kind.
type node struct {
	kind     types.Kind
	value    int
	op       types.Operator
	operands []*cow.Handle[node]
}

// Dispose releases the operand handles when the node's box is destroyed.
func (n node) Dispose() {
	for _, o := range n.operands {
		o.Release()
	}
}
