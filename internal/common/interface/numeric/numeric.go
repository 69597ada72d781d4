// Released under an MIT license. See LICENSE.

// Package numeric defines the interface for cells that hold a rational number.
package numeric

import (
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
)

// I (numeric) is anything that can be treated as a rational number.
type I interface {
	Rat() *rational.T
}

type numeric = I

// Integer returns the value of c, if c is a whole number.
func Integer(c cell.I) *rational.T {
	r := Number(c)
	if !r.IsInt() {
		panic(r.String() + " is not an integer")
	}

	return r
}

// Number returns the *rational.T value for a cell, if possible.
func Number(c cell.I) *rational.T {
	r, ok := c.(numeric)
	if !ok {
		// Not all cell types can be treated as numbers.
		panic(c.Name() + " cannot be used in a numeric context")
	}

	return r.Rat()
}
