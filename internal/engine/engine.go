// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed expressions.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/struct/node"
	"github.com/michaelmacinnis/rationals/internal/common/type/num"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
	"github.com/michaelmacinnis/rationals/internal/common/type/str"
	"github.com/michaelmacinnis/rationals/internal/engine/commands"
)

// T (engine) evaluates expressions using a table of commands.
type T struct {
	commands *commands.T
}

// New creates a new T. See commands.New for the meaning of limit.
func New(limit int) *T {
	return &T{commands: commands.New(limit)}
}

// Evaluate returns the value of the expression n. A nil expression
// (a blank line) has a nil value. Errors are prefixed with the location
// of the expression that failed.
func (e *T) Evaluate(n node.I) (c cell.I, err error) {
	if n == nil {
		return nil, nil
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if l, ok := r.(*located); ok {
			err = l.error
		} else {
			err = failure(r)
		}
	}()

	return e.eval(n), nil
}

// Names returns the names of the built-in functions.
func (e *T) Names() []string {
	return e.commands.Names()
}

type located struct {
	error
}

func (e *T) apply(n node.I, f commands.Function, args ...node.I) cell.I {
	v := make([]cell.I, 0, len(args))
	for _, a := range args {
		if a != nil {
			v = append(v, e.eval(a))
		}
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if l, ok := r.(*located); ok {
			panic(l)
		}

		panic(&located{fmt.Errorf("%s: %w", n.Source().Source(), failure(r))})
	}()

	return f(v)
}

func (e *T) eval(n node.I) cell.I {
	switch n := n.(type) {
	case *node.Binary:
		return e.apply(n, e.commands.Operator(n.Op.Value()), n.Left, n.Right)

	case *node.Call:
		f, ok := e.commands.Function(n.Name.Value())
		if !ok {
			panic(&located{fmt.Errorf(
				"%s: unknown function %s",
				n.Source().Source(), adapted.CanonicalString(n.Name.Value()),
			)})
		}

		return e.apply(n, f, n.Args...)

	case *node.Number:
		return e.apply(n, number(n.Value.Value()))

	case *node.Span:
		op := ".."
		if n.Down {
			op = "downto"
		}

		return e.apply(n, e.commands.Operator(op), n.From, n.To, n.Step)

	case *node.String:
		return str.New(n.Value.Value())

	case *node.Unary:
		return e.apply(n, e.commands.Operator("neg"), n.Operand)
	}

	panic(fmt.Sprintf("cannot evaluate %T", n))
}

func failure(r interface{}) error {
	switch r := r.(type) {
	case error:
		return r
	case string:
		return errors.New(r)
	case common.Stringer:
		return errors.New(r.String())
	}

	return errors.New("unexpected error")
}

func number(s string) commands.Function {
	return func(_ []cell.I) cell.I {
		parse := rational.Parse
		if strings.ContainsAny(s, ".eE") {
			parse = rational.ParseDecimal
		}

		r, err := parse(s)
		if err != nil {
			panic(err)
		}

		return num.Rat(r)
	}
}
