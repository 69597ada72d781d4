// Released under an MIT license. See LICENSE.

// Package num provides the calculator's number type.
package num

import (
	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/interface/numeric"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
)

const name = "number"

// T (num) wraps the rational.T type.
type T rational.T

type num = T

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	return Rat(rational.Int64(i))
}

// Rat wraps the *rational.T r as a num.
func Rat(r *rational.T) cell.I {
	return (*num)(r)
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Equal(To(c).Rat())
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *rational.T.
func (n *num) Rat() *rational.T {
	return (*rational.T)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().String()
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)
	return ok
}

// To returns a *num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if n, ok := c.(*num); ok {
		return n
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type is numeric.
	_ = numeric.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
