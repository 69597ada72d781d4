// Released under an MIT license. See LICENSE.

package rational

import (
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/rationals/internal/common/struct/progression"
)

// Domain supplies rational arithmetic to the progression package.
type Domain struct{}

// Add returns a + b.
func (Domain) Add(a, b *T) *T {
	return a.Add(b)
}

// After returns last plus one unit of first's denominator.
//
// Rationals have no successor. This is a convention for the exclusive end
// of a range, not the next rational after last.
func (Domain) After(first, last *T) *T {
	return last.Add(&T{num: big.NewInt(1), den: first.Denom()})
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b.
func (Domain) Compare(a, b *T) int {
	return a.Cmp(b)
}

// Copy returns a. Rationals are never modified once created.
func (Domain) Copy(a *T) *T {
	return a
}

// Last returns the last element of the progression from start to end by step.
func (Domain) Last(start, end, step *T) *T {
	return last(start, end, step)
}

// Negate returns -a.
func (Domain) Negate(a *T) *T {
	return a.Neg()
}

// Sign returns the sign of a.
func (Domain) Sign(a *T) int {
	return a.Sign()
}

// FromClosedRange creates a progression from start toward end, not
// passing it, in increments of step. Step must not be zero.
func FromClosedRange(start, end, step *T) (*progression.T[*T], error) {
	return progression.New[*T](Domain{}, start, end, step)
}

// Last returns the last value reachable from start in whole steps that
// does not pass end. It fails if step is zero.
func Last(start, end, step *T) (*T, error) {
	if step.Sign() == 0 {
		return nil, fmt.Errorf("%w: step is zero", progression.ErrStep)
	}

	return last(start, end, step), nil
}

// Range is a closed range of rationals. Unlike an integer range its step
// is derived from the bounds, so its text includes the step.
type Range struct {
	*progression.Range[*T]
}

// NewRange creates the range from start to end inclusive. Its step is one
// over the denominator that start and end share once aligned, the smallest
// increment that reaches end exactly from start.
func NewRange(start, end *T) *Range {
	_, _, d := align(start, end)

	r, err := progression.NewRange[*T](Domain{}, start, end, canonical(one, d))
	if err != nil {
		// The step 1/d is never zero.
		panic(err.Error())
	}

	return &Range{r}
}

// Equal returns true if r and o have the same bounds.
// All empty ranges are equal.
func (r *Range) Equal(o *Range) bool {
	return r.Range.Equal(o.Range)
}

// String returns the text of the range r as "a..b step s".
func (r *Range) String() string {
	return r.Progression().String()
}

func last(start, end, step *T) *T {
	c := start.Cmp(end)
	if step.Sign() > 0 && c >= 0 || step.Sign() < 0 && c <= 0 {
		return end
	}

	// The number of whole steps from start toward end. The quotient
	// is positive so truncation is the floor.
	q := Must(end.Sub(start).Quo(step))
	n := new(big.Int).Quo(q.n(), q.d())

	return start.Add(Int(n).Mul(step))
}
