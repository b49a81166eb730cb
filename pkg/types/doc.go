// Package types defines the value types, operator and node-kind tags, CLI
// configuration, and standard errors shared by the cowbox packages.
//
// Point is the plain carrier wrapped by point.Handle. Operator and Kind tag
// the nodes of an expr.Expr. The Err* values are sentinels checked with
// errors.Is; OperatorError and ParseError carry the offending detail.
package types
