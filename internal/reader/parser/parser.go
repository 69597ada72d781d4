// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for rational expressions.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/rationals/internal/common/struct/node"
	"github.com/michaelmacinnis/rationals/internal/common/struct/token"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(node.I)    // Function to call to emit a parsed expression.
	fail  func(error)     // Function to call when a line can't be parsed.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of expressions.
// Blank lines are emitted as nil.
func New(emit func(node.I), fail func(error), item func() *token.T) *T {
	return &T{emit: emit, fail: fail, item: item}
}

// Parse consumes tokens and emits expressions until there are no more tokens.
// A line that fails to parse is reported and skipped.
func (p *T) Parse() {
	for t := p.peek(); t != nil; t = p.peek() {
		p.line()
	}
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

// Skip the rest of the current line.
func (p *T) discard() {
	for t := p.peek(); t != nil; t = p.peek() {
		p.consume()

		if t.Is('\n') {
			return
		}
	}
}

func (p *T) expect(cs ...token.Class) *token.T {
	t := p.peek()
	if t.Is(cs...) {
		return p.consume()
	}

	// Make a nice error message.
	n := len(cs)
	e := make([]string, n)

	for i, c := range cs[:n-1] {
		e[i] = c.String()
	}

	l := cs[n-1].String()
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	l = strings.Join(e[:n-1], ", ") + l

	if t == nil {
		panic("expected " + l + " got end of input")
	}

	panic(t.Source() + ": expected " + l + " got " + adapted.CanonicalString(t.Value()))
}

func (p *T) line() {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			p.fail(r)
		case string:
			p.fail(errors.New(r))
		default:
			p.fail(fmt.Errorf("unexpected error: %v", r))
		}

		p.discard()
	}()

	if p.peek().Is('\n') {
		p.consume()
		p.emit(nil)

		return
	}

	e := p.expression()

	p.expect('\n')

	p.emit(e)
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected(t *token.T) {
	if t == nil {
		panic("unexpected end of input")
	}

	v := t.Value()
	if t.Is('\n') {
		v = "end of line"
	} else {
		v = adapted.CanonicalString(v)
	}

	panic(t.Source() + ": unexpected " + v)
}

// T state functions.

// <expression> ::= <span> ((Compare | 'in') <span>)?
func (p *T) expression() node.I {
	l := p.span()

	t := p.peek()
	if t.Is(token.Compare) || t.Keyword("in") {
		p.consume()

		return &node.Binary{Left: l, Op: t, Right: p.span()}
	}

	return l
}

// <span> ::= <sum> ((Span | 'downto') <sum> ('step' <sum>)?)?
func (p *T) span() node.I {
	from := p.sum()

	t := p.peek()
	if !t.Is(token.Span) && !t.Keyword("downto") {
		return from
	}

	p.consume()

	s := &node.Span{
		Down: t.Keyword("downto"),
		From: from,
		Op:   t,
		To:   p.sum(),
	}

	if p.peek().Keyword("step") {
		p.consume()

		s.Step = p.sum()
	}

	return s
}

// <sum> ::= <product> (('+' | '-') <product>)*
func (p *T) sum() node.I {
	l := p.product()

	for p.peek().Is('+', '-') {
		op := p.consume()
		l = &node.Binary{Left: l, Op: op, Right: p.product()}
	}

	return l
}

// <product> ::= <unary> (('*' | '/') <unary>)*
func (p *T) product() node.I {
	l := p.unary()

	for p.peek().Is('*', '/') {
		op := p.consume()
		l = &node.Binary{Left: l, Op: op, Right: p.unary()}
	}

	return l
}

// <unary> ::= '-' <unary> | <primary>
func (p *T) unary() node.I {
	if p.peek().Is('-') {
		op := p.consume()

		return &node.Unary{Op: op, Operand: p.unary()}
	}

	return p.primary()
}

// <primary> ::= Number | String | Symbol '(' <arguments> ')' | '(' <expression> ')'
func (p *T) primary() node.I {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		return &node.Number{Value: p.consume()}

	case t.Is(token.String):
		return &node.String{Value: p.consume()}

	case t.Is(token.Symbol) && !reserved(t.Value()):
		p.consume()

		c := &node.Call{Name: t}

		p.expect('(')

		if !p.peek().Is(')') {
			c.Args = append(c.Args, p.expression())

			for p.peek().Is(',') {
				p.consume()

				c.Args = append(c.Args, p.expression())
			}
		}

		p.expect(')')

		return c

	case t.Is('('):
		p.consume()

		e := p.expression()

		p.expect(')')

		return e
	}

	p.unexpected(t)

	return nil
}

func reserved(s string) bool {
	switch s {
	case "downto", "in", "step":
		return true
	}

	return false
}
