// Released under an MIT license. See LICENSE.

// Package rational provides an exact arbitrary-precision rational number type.
//
// Every value is kept in canonical form: the numerator and denominator
// share no common factor and the denominator is positive. Values are
// immutable. Arithmetic always returns a new value.
package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// Errors returned when creating or parsing rationals.
var (
	ErrDenominator = errors.New("invalid denominator")
	ErrLiteral     = errors.New("malformed literal")
)

// T (rational) is an exact rational number.
// The zero value is 0.
type T struct {
	num *big.Int
	den *big.Int
}

type rational = T

//nolint:gochecknoglobals
var (
	one = big.NewInt(1)
	ten = big.NewInt(10)

	zero = new(big.Int)
)

// New creates the canonical rational for numerator/denominator.
// It fails with ErrDenominator if denominator is zero.
func New(numerator, denominator *big.Int) (*T, error) {
	if denominator.Sign() == 0 {
		return nil, fmt.Errorf("%w: the denominator can't be zero", ErrDenominator)
	}

	return canonical(numerator, denominator), nil
}

// Int creates the rational i/1.
func Int(i *big.Int) *T {
	return canonical(i, one)
}

// Int64 creates the rational i/1.
func Int64(i int64) *T {
	return Int(big.NewInt(i))
}

// Must returns r or panics if err is not nil.
func Must(r *T, err error) *T {
	if err != nil {
		panic(err)
	}

	return r
}

// Of creates the rational a/b.
func Of(a, b int64) (*T, error) {
	return New(big.NewInt(a), big.NewInt(b))
}

// Add returns r + o.
func (r *rational) Add(o *T) *T {
	a, b, d := align(r, o)

	return canonical(new(big.Int).Add(a, b), d)
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to,
// or greater than o.
func (r *rational) Cmp(o *T) int {
	return r.Sub(o).n().Sign()
}

// Denom returns a copy of the denominator of r. It is always positive.
func (r *rational) Denom() *big.Int {
	return new(big.Int).Set(r.d())
}

// Equal returns true if r and o are the same number.
func (r *rational) Equal(o *T) bool {
	return r.n().Cmp(o.n()) == 0 && r.d().Cmp(o.d()) == 0
}

// IsInt returns true if the denominator of r is 1.
func (r *rational) IsInt() bool {
	return r.d().Cmp(one) == 0
}

// Less returns true if r is less than o.
func (r *rational) Less(o *T) bool {
	return r.Cmp(o) < 0
}

// Mul returns r * o.
func (r *rational) Mul(o *T) *T {
	return canonical(
		new(big.Int).Mul(r.n(), o.n()),
		new(big.Int).Mul(r.d(), o.d()),
	)
}

// Neg returns -r.
func (r *rational) Neg() *T {
	return &T{
		num: new(big.Int).Neg(r.n()),
		den: r.Denom(),
	}
}

// Num returns a copy of the numerator of r. It carries the sign of r.
func (r *rational) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Quo returns r / o. It fails with ErrDenominator if o is zero.
func (r *rational) Quo(o *T) (*T, error) {
	i, err := o.Reciprocal()
	if err != nil {
		return nil, err
	}

	return r.Mul(i), nil
}

// Reciprocal returns 1/r. It fails with ErrDenominator if r is zero.
func (r *rational) Reciprocal() (*T, error) {
	return New(r.d(), r.n())
}

// Sign returns -1, 0 or +1 depending on whether r is negative, zero or positive.
func (r *rational) Sign() int {
	return r.n().Sign()
}

// String returns r as "numerator/denominator" or, if r is an integer,
// as just the numerator.
func (r *rational) String() string {
	if r.IsInt() {
		return r.n().String()
	}

	if r.n().Cmp(r.d()) == 0 {
		return "1"
	}

	return r.n().String() + "/" + r.d().String()
}

// Sub returns r - o.
func (r *rational) Sub(o *T) *T {
	a, b, d := align(r, o)

	return canonical(new(big.Int).Sub(a, b), d)
}

func (r *rational) d() *big.Int {
	if r.den == nil {
		return one
	}

	return r.den
}

func (r *rational) n() *big.Int {
	if r.num == nil {
		return zero
	}

	return r.num
}

// Rewrite r and o over a common denominator. Returns the two numerators
// and the shared denominator.
func align(r, o *T) (*big.Int, *big.Int, *big.Int) {
	if r.d().Cmp(o.d()) == 0 {
		return r.n(), o.n(), r.d()
	}

	rn := new(big.Int).Mul(r.n(), o.d())
	rd := new(big.Int).Mul(r.d(), o.d())

	on := new(big.Int).Mul(o.n(), r.d())
	od := new(big.Int).Mul(o.d(), r.d())

	if rd.Cmp(od) != 0 {
		panic("denominators differ after alignment: " + rd.String() + ", " + od.String())
	}

	return rn, on, rd
}

// Reduce numerator/denominator to lowest terms with a positive denominator.
// The denominator must not be zero. The arguments are not modified.
func canonical(numerator, denominator *big.Int) *T {
	n := new(big.Int).Set(numerator)
	d := new(big.Int).Set(denominator)

	// Dividing out a shared power of ten first keeps the operands to GCD small.
	if p := powerOfTen(n, d); p != nil {
		n.Quo(n, p)
		d.Quo(d, p)
	}

	if n.Cmp(d) == 0 {
		return &T{num: big.NewInt(1), den: big.NewInt(1)}
	}

	g := new(big.Int).GCD(nil, nil, n, d)

	n.Quo(n, g)
	d.Quo(d, g)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return &T{num: n, den: d}
}

// The largest power of ten dividing both n and d, or nil if there is none.
func powerOfTen(n, d *big.Int) *big.Int {
	f := new(big.Int).Set(ten)
	m := new(big.Int)

	found := false

	for m.Rem(n, f).Sign() == 0 && m.Rem(d, f).Sign() == 0 {
		found = true

		f.Mul(f, ten)
	}

	if !found {
		return nil
	}

	return f.Quo(f, ten)
}
