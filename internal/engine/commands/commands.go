// Released under an MIT license. See LICENSE.

// Package commands provides the calculator's operators and built-in functions.
//
// Commands panic when passed bad arguments. The engine recovers and
// reports the failure against the expression being evaluated.
package commands

import (
	"sort"

	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
)

// Function is the signature shared by all operators and built-ins.
type Function func(args []cell.I) cell.I

// T (commands) holds the operators and built-in functions.
type T struct {
	functions map[string]Function
	limit     int
	operators map[string]Function
}

// New creates the command table. Listing a sequence with more than
// limit elements fails. A limit of zero means no limit.
func New(limit int) *T {
	t := &T{limit: limit}

	t.functions = map[string]Function{
		"add":      add,
		"compare":  compare,
		"decimal":  decimal,
		"den":      den,
		"div":      div,
		"empty":    empty,
		"end":      end,
		"first":    first,
		"gcd":      gcd,
		"help":     t.help,
		"last":     last,
		"list":     t.list,
		"mul":      mul,
		"num":      numerator,
		"rational": parse,
		"step":     step,
		"sub":      sub,
		"text":     text,
	}

	t.operators = map[string]Function{
		"!=":     relation(ne),
		"*":      mul,
		"+":      add,
		"-":      sub,
		"..":     span,
		"/":      div,
		"<":      relation(lt),
		"<=":     relation(le),
		"==":     relation(eq),
		">":      relation(gt),
		">=":     relation(ge),
		"downto": downto,
		"in":     in,
		"neg":    neg,
	}

	return t
}

// Function returns the built-in function called name.
func (t *T) Function(name string) (Function, bool) {
	f, ok := t.functions[name]

	return f, ok
}

// Names returns the names of all built-in functions in sorted order.
func (t *T) Names() []string {
	names := make([]string, 0, len(t.functions))
	for k := range t.functions {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Operator returns the function for the operator op.
func (t *T) Operator(op string) Function {
	f, ok := t.operators[op]
	if !ok {
		panic("unknown operator " + op)
	}

	return f
}
