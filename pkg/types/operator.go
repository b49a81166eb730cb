package types

// Operator tags unary and binary expression nodes with the symbol they
// render as.
type Operator string

// Supported operators. OpSub doubles as unary negation.
const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// OpNeg is the unary negation operator.
const OpNeg = OpSub

// binaryOperators is the set of operators accepted by binary nodes.
var binaryOperators = map[Operator]bool{
	OpAdd: true,
	OpSub: true,
	OpMul: true,
	OpDiv: true,
}

// ValidFor reports whether op is defined for nodes of kind k. Constants
// take no operator, unary nodes only negate, binary nodes take + - * /.
func (op Operator) ValidFor(k Kind) bool {
	switch k {
	case KindUnary:
		return op == OpNeg
	case KindBinary:
		return binaryOperators[op]
	default:
		return false
	}
}

// Kind identifies the variant of an expression node.
type Kind uint8

const (
	// KindConstant is a leaf holding an integer.
	KindConstant Kind = iota
	// KindUnary applies an operator to one operand.
	KindUnary
	// KindBinary applies an operator to a left and a right operand.
	KindBinary
)

// String returns the node kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}
