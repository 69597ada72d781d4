// Released under an MIT license. See LICENSE.

// Package node defines the expression trees built by the parser.
package node

import (
	"strings"

	"github.com/michaelmacinnis/rationals/internal/common/struct/token"
)

// I (node) is any part of a parsed expression.
type I interface {
	Source() *token.T
	String() string
}

// Binary is an infix operation.
type Binary struct {
	Left  I
	Op    *token.T
	Right I
}

// Call is a call to a built-in function.
type Call struct {
	Args []I
	Name *token.T
}

// Number is a numeric literal.
type Number struct {
	Value *token.T
}

// Span is a range or progression between two values.
// A Span with neither Step nor Down set is a range.
type Span struct {
	Down bool
	From I
	Op   *token.T
	Step I
	To   I
}

// String is a quoted literal.
type String struct {
	Value *token.T
}

// Unary is a negation.
type Unary struct {
	Op      *token.T
	Operand I
}

// Source returns the operator token for b.
func (b *Binary) Source() *token.T { return b.Op }

// Source returns the function name token for c.
func (c *Call) Source() *token.T { return c.Name }

// Source returns the literal token for n.
func (n *Number) Source() *token.T { return n.Value }

// Source returns the span operator token for s.
func (s *Span) Source() *token.T { return s.Op }

// Source returns the literal token for s.
func (s *String) Source() *token.T { return s.Value }

// Source returns the operator token for u.
func (u *Unary) Source() *token.T { return u.Op }

// String returns the fully parenthesized text of b.
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.Value() + " " + b.Right.String() + ")"
}

// String returns the text of c.
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}

	return c.Name.Value() + "(" + strings.Join(args, ", ") + ")"
}

// String returns the text of n.
func (n *Number) String() string {
	return n.Value.Value()
}

// String returns the fully parenthesized text of s.
func (s *Span) String() string {
	op := ".."
	if s.Down {
		op = " downto "
	}

	v := "(" + s.From.String() + op + s.To.String()
	if s.Step != nil {
		v += " step " + s.Step.String()
	}

	return v + ")"
}

// String returns the quoted text of s.
func (s *String) String() string {
	return "'" + s.Value.Value() + "'"
}

// String returns the fully parenthesized text of u.
func (u *Unary) String() string {
	return "(-" + u.Operand.String() + ")"
}
