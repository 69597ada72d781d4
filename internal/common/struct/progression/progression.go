// Released under an MIT license. See LICENSE.

// Package progression provides stepped sequences over an ordered numeric
// domain and the closed ranges built on top of them.
//
// A progression is immutable once created. Each iterator owns its own
// cursor so any number of iterators can walk the same progression.
package progression

import (
	"errors"
	"fmt"
)

// Errors returned by progressions and their iterators.
var (
	ErrExhausted = errors.New("exhausted iterator")
	ErrStep      = errors.New("invalid step")
)

// Domain is the arithmetic a progression needs from its element type.
type Domain[E any] interface {
	Add(a, b E) E
	Compare(a, b E) int

	// Copy returns a value equal to a that the caller is free to modify.
	Copy(a E) E

	Negate(a E) E
	Sign(a E) int

	// Last returns the last value reachable from start by a whole number
	// of steps that does not pass end. Step is never zero.
	Last(start, end, step E) E

	// After returns the value one unit past last for a range that
	// starts at first.
	After(first, last E) E
}

// T (progression) is a sequence from first to last in increments of step.
type T[E any] struct {
	domain Domain[E]
	first  E
	last   E
	step   E
}

// New creates a progression that starts at start and moves toward end,
// never passing it. To go backwards step must be negative.
func New[E any](d Domain[E], start, end, step E) (*T[E], error) {
	if d.Sign(step) == 0 {
		return nil, fmt.Errorf("%w: step must be non-zero", ErrStep)
	}

	return &T[E]{
		domain: d,
		first:  start,
		last:   d.Last(start, end, step),
		step:   step,
	}, nil
}

// Each calls f for each element of the progression p until f returns false.
func (p *T[E]) Each(f func(E) bool) {
	for i := p.Iterator(); i.HasNext(); {
		v, err := i.Next()
		if err != nil || !f(v) {
			return
		}
	}
}

// Equal returns true if p and o have the same elements.
// All empty progressions are equal.
func (p *T[E]) Equal(o *T[E]) bool {
	if p.IsEmpty() && o.IsEmpty() {
		return true
	}

	return p.domain.Compare(p.first, o.first) == 0 &&
		p.domain.Compare(p.last, o.last) == 0 &&
		p.domain.Compare(p.step, o.step) == 0
}

// First returns the first element of the progression p.
func (p *T[E]) First() E {
	return p.domain.Copy(p.first)
}

// IsEmpty returns true if the progression p has no elements.
//
// A progression with a positive step is empty if its first element is
// greater than its last. With a negative step it is empty if its first
// element is less than its last.
func (p *T[E]) IsEmpty() bool {
	if p.increasing() {
		return p.domain.Compare(p.first, p.last) > 0
	}

	return p.domain.Compare(p.first, p.last) < 0
}

// Iterator returns a new iterator positioned before the first element of p.
func (p *T[E]) Iterator() *Iterator[E] {
	more := p.domain.Compare(p.first, p.last) <= 0
	if !p.increasing() {
		more = p.domain.Compare(p.first, p.last) >= 0
	}

	next := p.last
	if more {
		next = p.first
	}

	return &Iterator[E]{
		domain: p.domain,
		final:  p.last,
		more:   more,
		next:   next,
		step:   p.step,
	}
}

// Last returns the last element of the progression p.
// It may differ from the end the progression was created with.
func (p *T[E]) Last() E {
	return p.domain.Copy(p.last)
}

// Step returns the increment between elements of the progression p.
func (p *T[E]) Step() E {
	return p.domain.Copy(p.step)
}

// String returns the text of the progression p.
func (p *T[E]) String() string {
	if p.increasing() {
		return fmt.Sprintf("%v..%v step %v", p.first, p.last, p.step)
	}

	return fmt.Sprintf("%v downTo %v step %v", p.first, p.last, p.domain.Negate(p.step))
}

func (p *T[E]) increasing() bool {
	return p.domain.Sign(p.step) > 0
}

// Iterator walks the elements of a progression.
type Iterator[E any] struct {
	domain Domain[E]
	final  E
	more   bool
	next   E
	step   E
}

// HasNext returns true if a call to Next will return another element.
func (i *Iterator[E]) HasNext() bool {
	return i.more
}

// Next returns the next element, or ErrExhausted if there are no more.
func (i *Iterator[E]) Next() (E, error) {
	v := i.next

	if i.domain.Compare(v, i.final) == 0 {
		if !i.more {
			var zero E

			return zero, ErrExhausted
		}

		i.more = false
	} else {
		i.next = i.domain.Add(i.next, i.step)
	}

	return i.domain.Copy(v), nil
}
