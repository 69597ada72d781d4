// Released under an MIT license. See LICENSE.

// Package seq provides the calculator's range and progression type.
// Integer and rational progressions are both presented as sequences
// of rational numbers.
package seq

import (
	"math/big"

	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/struct/progression"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
)

// T (seq) wraps a progression or range from either numeric domain.
type T struct {
	bounded bool // A range rather than a progression.
	each    func(func(*rational.T) bool)
	empty   bool
	end     *rational.T
	first   *rational.T
	last    *rational.T
	step    *rational.T
	text    string
}

type seq = T

// Integer wraps the integer progression p.
func Integer(p *progression.T[*big.Int]) cell.I {
	return wrap(p, rational.Int)
}

// IntegerRange wraps the integer range r.
func IntegerRange(r *progression.Range[*big.Int]) cell.I {
	return bounds(r, rational.Int, r.String())
}

// Rational wraps the rational progression p.
func Rational(p *progression.T[*rational.T]) cell.I {
	return wrap(p, same)
}

// RationalRange wraps the rational range r.
func RationalRange(r *rational.Range) cell.I {
	return bounds(r.Range, same, r.String())
}

// Contains returns true if v is in s. For a range, v need only lie
// between the range's bounds. For a progression, v must also be a whole
// number of steps from the first element.
func (s *seq) Contains(v *rational.T) bool {
	if s.empty {
		return false
	}

	lo, hi := s.first, s.last
	if s.step.Sign() < 0 {
		lo, hi = hi, lo
	}

	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return false
	}

	if s.bounded {
		return true
	}

	n, err := v.Sub(s.first).Quo(s.step)

	return err == nil && n.IsInt()
}

// Each calls f for each element of s until f returns false.
func (s *seq) Each(f func(*rational.T) bool) {
	s.each(f)
}

// End returns the exclusive end of the range s.
func (s *seq) End() *rational.T {
	if !s.bounded {
		panic("a progression does not have an exclusive end")
	}

	return s.end
}

// Equal returns true if c is a sequence of the same kind with the same elements.
func (s *seq) Equal(c cell.I) bool {
	o, ok := c.(*seq)
	if !ok || s.bounded != o.bounded {
		return false
	}

	if s.empty && o.empty {
		return true
	}

	return s.first.Equal(o.first) && s.last.Equal(o.last) && s.step.Equal(o.step)
}

// First returns the first element of s.
func (s *seq) First() *rational.T {
	return s.first
}

// IsEmpty returns true if s has no elements.
func (s *seq) IsEmpty() bool {
	return s.empty
}

// Last returns the last element of s.
func (s *seq) Last() *rational.T {
	return s.last
}

// Name returns the type name for s.
func (s *seq) Name() string {
	if s.bounded {
		return "range"
	}

	return "progression"
}

// Step returns the increment between elements of s.
func (s *seq) Step() *rational.T {
	return s.step
}

// String returns the text of s.
func (s *seq) String() string {
	return s.text
}

// Is returns true if c is a seq.
func Is(c cell.I) bool {
	_, ok := c.(*seq)
	return ok
}

// To returns a *seq if c is a seq; Otherwise it panics.
func To(c cell.I) *seq {
	if s, ok := c.(*seq); ok {
		return s
	}

	panic(c.Name() + " is not a range or progression")
}

func bounds[E any](r *progression.Range[E], convert func(E) *rational.T, text string) *seq {
	s := wrap(r.Progression(), convert)

	s.bounded = true
	s.empty = r.IsEmpty()
	s.end = convert(r.EndExclusive())
	s.text = text

	return s
}

func same(r *rational.T) *rational.T {
	return r
}

func wrap[E any](p *progression.T[E], convert func(E) *rational.T) *seq {
	return &seq{
		each: func(f func(*rational.T) bool) {
			p.Each(func(e E) bool {
				return f(convert(e))
			})
		},
		empty: p.IsEmpty(),
		first: convert(p.First()),
		last:  convert(p.Last()),
		step:  convert(p.Step()),
		text:  p.String(),
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t seq

	// The seq type is a cell.
	_ = cell.I(&t)

	// The seq type is a stringer.
	_ = common.Stringer(&t)
}
