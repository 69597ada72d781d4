// Released under an MIT license. See LICENSE.

package rational

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The largest power of ten a decimal literal may scale by.
const maxExponent = 10000

// Parse creates a rational from text of the form "n" or "n/d" where n and
// d are base 10 integer literals.
func Parse(s string) (*T, error) {
	switch strings.Count(s, "/") {
	case 0:
		n, err := integer(s)
		if err != nil {
			return nil, err
		}

		return Int(n), nil

	case 1:
		i := strings.IndexByte(s, '/')

		n, err := integer(s[:i])
		if err != nil {
			return nil, err
		}

		d, err := integer(s[i+1:])
		if err != nil {
			return nil, err
		}

		return New(n, d)
	}

	return nil, fmt.Errorf("%w: bad denominator pattern in %s", ErrLiteral, strconv.Quote(s))
}

// ParseDecimal creates the exact rational value of a decimal literal
// such as "0.125" or "-1.5e3". Literals that scale their digits by more
// than 10^10000 in either direction are rejected.
func ParseDecimal(s string) (*T, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLiteral, err.Error())
	}

	e := int64(v.Exponent())
	if e < -maxExponent || e > maxExponent {
		return nil, fmt.Errorf(
			"%w: exponent of %s is outside -%d..%d",
			ErrLiteral, strconv.Quote(s), maxExponent, maxExponent,
		)
	}

	n := v.Coefficient()
	d := big.NewInt(1)

	if e < 0 {
		d.Exp(ten, big.NewInt(-e), nil)
	} else {
		n.Mul(n, new(big.Int).Exp(ten, big.NewInt(e), nil))
	}

	return New(n, d)
}

// Decimal returns r rounded to places digits after the decimal point.
func (r *rational) Decimal(places int32) string {
	n := decimal.NewFromBigInt(r.n(), 0)
	d := decimal.NewFromBigInt(r.d(), 0)

	return n.DivRound(d, places).StringFixed(places)
}

func integer(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrLiteral, strconv.Quote(s))
	}

	return i, nil
}
