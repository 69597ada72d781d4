// Released under an MIT license. See LICENSE.

// Package str provides the calculator's string type.
package str

import (
	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)
	return ok
}

// To returns a *str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if s, ok := c.(*str); ok {
		return s
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
