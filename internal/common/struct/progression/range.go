// Released under an MIT license. See LICENSE.

package progression

import (
	"fmt"
)

// Range is a closed progression whose step is the domain's unit step.
type Range[E any] struct {
	T[E]
}

// NewRange creates a range from start to end inclusive using step.
// The step is normally one for the domain. It must not be zero.
func NewRange[E any](d Domain[E], start, end, step E) (*Range[E], error) {
	p, err := New(d, start, end, step)
	if err != nil {
		return nil, err
	}

	return &Range[E]{*p}, nil
}

// Contains returns true if v lies between the first and last elements of
// the range r, inclusive. The value need not fall on a step boundary.
func (r *Range[E]) Contains(v E) bool {
	return r.domain.Compare(r.first, v) <= 0 && r.domain.Compare(v, r.last) <= 0
}

// EndExclusive returns the value one unit past the end of the range r.
func (r *Range[E]) EndExclusive() E {
	return r.domain.After(r.first, r.last)
}

// EndInclusive returns the last element of the range r.
func (r *Range[E]) EndInclusive() E {
	return r.domain.Copy(r.last)
}

// Equal returns true if r and o have the same bounds.
// All empty ranges are equal.
func (r *Range[E]) Equal(o *Range[E]) bool {
	if r.IsEmpty() && o.IsEmpty() {
		return true
	}

	return r.domain.Compare(r.first, o.first) == 0 &&
		r.domain.Compare(r.last, o.last) == 0
}

// IsEmpty returns true if the start of the range r is greater than its end.
func (r *Range[E]) IsEmpty() bool {
	return r.domain.Compare(r.first, r.last) > 0
}

// Progression returns the underlying progression of the range r.
func (r *Range[E]) Progression() *T[E] {
	return &r.T
}

// Start returns the first element of the range r.
func (r *Range[E]) Start() E {
	return r.domain.Copy(r.first)
}

// String returns the text of the range r.
func (r *Range[E]) String() string {
	return fmt.Sprintf("%v..%v", r.first, r.last)
}
