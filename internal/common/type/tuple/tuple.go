// Released under an MIT license. See LICENSE.

// Package tuple provides the calculator's list of values.
package tuple

import (
	"strings"

	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
)

const name = "list"

// T (tuple) is an ordered list of cells.
type T []cell.I

type tuple = T

// New creates a new tuple holding v.
func New(v ...cell.I) cell.I {
	t := tuple(v)

	return &t
}

// Equal returns true if c is a tuple with equal elements.
func (t *tuple) Equal(c cell.I) bool {
	o, ok := c.(*tuple)
	if !ok || len(*t) != len(*o) {
		return false
	}

	for i, v := range *t {
		if !v.Equal((*o)[i]) {
			return false
		}
	}

	return true
}

// Fields returns the text of each element of the tuple t.
func (t *tuple) Fields() []string {
	s := make([]string, len(*t))
	for i, v := range *t {
		s[i] = common.String(v)
	}

	return s
}

// Name returns the type name for the tuple t.
func (t *tuple) Name() string {
	return name
}

// String returns the text of the tuple t.
func (t *tuple) String() string {
	return strings.Join(t.Fields(), " ")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t tuple

	// The tuple type is a cell.
	_ = cell.I(&t)

	// The tuple type is a stringer.
	_ = common.Stringer(&t)
}
