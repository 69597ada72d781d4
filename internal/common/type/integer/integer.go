// Released under an MIT license. See LICENSE.

// Package integer provides progressions and ranges of arbitrary-precision integers.
package integer

import (
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/rationals/internal/common/struct/progression"
)

// Domain supplies big.Int arithmetic to the progression package.
type Domain struct{}

//nolint:gochecknoglobals
var one = big.NewInt(1)

// Add returns a new big.Int set to a + b.
func (Domain) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// After returns last + 1.
func (Domain) After(_, last *big.Int) *big.Int {
	return new(big.Int).Add(last, one)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b.
func (Domain) Compare(a, b *big.Int) int {
	return a.Cmp(b)
}

// Copy returns a new big.Int set to a.
func (Domain) Copy(a *big.Int) *big.Int {
	return dup(a)
}

// Last returns the last element of the progression from start to end by step.
func (Domain) Last(start, end, step *big.Int) *big.Int {
	return last(start, end, step)
}

// Negate returns a new big.Int set to -a.
func (Domain) Negate(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}

// Sign returns the sign of a.
func (Domain) Sign(a *big.Int) int {
	return a.Sign()
}

// FromClosedRange creates a progression from start toward end, not
// passing it, in increments of step. Step must not be zero.
func FromClosedRange(start, end, step *big.Int) (*progression.T[*big.Int], error) {
	return progression.New[*big.Int](Domain{}, dup(start), dup(end), dup(step))
}

// Last returns the last value reachable from start in whole steps that
// does not pass end. It fails if step is zero.
func Last(start, end, step *big.Int) (*big.Int, error) {
	if step.Sign() == 0 {
		return nil, fmt.Errorf("%w: step is zero", progression.ErrStep)
	}

	return last(start, end, step), nil
}

// Range creates the range of integers from start to end inclusive.
func Range(start, end *big.Int) *progression.Range[*big.Int] {
	r, err := progression.NewRange[*big.Int](Domain{}, dup(start), dup(end), big.NewInt(1))
	if err != nil {
		// A step of one is never zero.
		panic(err.Error())
	}

	return r
}

// The difference (a - b) mod c, for positive c.
func differenceModulo(a, b, c *big.Int) *big.Int {
	am := new(big.Int).Mod(a, c)
	bm := new(big.Int).Mod(b, c)

	return am.Mod(am.Sub(am, bm), c)
}

func dup(i *big.Int) *big.Int {
	return new(big.Int).Set(i)
}

func last(start, end, step *big.Int) *big.Int {
	if step.Sign() > 0 {
		if start.Cmp(end) >= 0 {
			return dup(end)
		}

		return new(big.Int).Sub(end, differenceModulo(end, start, step))
	}

	if start.Cmp(end) <= 0 {
		return dup(end)
	}

	return new(big.Int).Add(end, differenceModulo(start, end, new(big.Int).Neg(step)))
}
