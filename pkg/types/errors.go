package types

import (
	"errors"
	"fmt"
)

// Handle lifecycle errors. Misuse of a released handle panics with a value
// wrapping ErrHandleReleased; there is no recoverable path.
var (
	ErrHandleReleased = errors.New("handle already released")
	ErrBoxDestroyed   = errors.New("box already destroyed")
)

// Expression errors.
var (
	ErrInvalidOperator = errors.New("invalid operator")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrParse           = errors.New("parse error")
)

// OperatorError reports an operator that is not defined for the node kind
// it was found on. It matches ErrInvalidOperator under errors.Is.
type OperatorError struct {
	Kind Kind
	Op   Operator
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("invalid operator %q in %s node", string(e.Op), e.Kind)
}

// Is reports whether target is ErrInvalidOperator.
func (e *OperatorError) Is(target error) bool {
	return target == ErrInvalidOperator
}

// ParseError reports a syntax error in expression text. Col is 1-based.
// It matches ErrParse under errors.Is.
type ParseError struct {
	Col int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Col, e.Msg)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
