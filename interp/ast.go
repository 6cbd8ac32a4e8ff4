package interp

import "go.tmlkit.dev/tml/value"

// Node is one AST node. The concrete types below are the only
// implementations.
type Node interface {
	node()
}

// EmptyNode is the parse of a token stream with nothing in it.
type EmptyNode struct{}

// ParseErrorNode records a syntax error found during parsing; Eval turns
// it into an [ErrParse].
type ParseErrorNode struct {
	Msg string
}

// CallNode is a function call: a bare (unquoted) Text name applied to
// zero or more comma-separated argument expressions.
type CallNode struct {
	Fn   string
	Args []Node
}

// ConditionalNode is a ternary "cond ? then : else" expression.
type ConditionalNode struct {
	Cond, Then, Else Node
}

// ValueLitNode wraps a source Value used directly as an operand.
type ValueLitNode struct {
	Val value.Value
}

// BinaryNode is a left-op-right expression.
type BinaryNode struct {
	Left  Node
	Op    TokenKind
	Right Node
}

// PostfixNode is a left-op expression. No grammar rule currently
// produces one (the token set has no postfix operator); [Eval] reports
// [ErrNotImplemented] for a hand-built one.
type PostfixNode struct {
	Left Node
	Op   TokenKind
}

// PrefixNode is an op-right expression: unary + or -.
type PrefixNode struct {
	Op    TokenKind
	Right Node
}

func (EmptyNode) node()       {}
func (ParseErrorNode) node()  {}
func (CallNode) node()        {}
func (ConditionalNode) node() {}
func (ValueLitNode) node()    {}
func (BinaryNode) node()      {}
func (PostfixNode) node()     {}
func (PrefixNode) node()      {}
