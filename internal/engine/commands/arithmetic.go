// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/interface/numeric"
	"github.com/michaelmacinnis/rationals/internal/common/type/num"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
	"github.com/michaelmacinnis/rationals/internal/common/validate"
)

func add(args []cell.I) cell.I {
	sum := rational.Int64(0)

	for _, a := range args {
		sum = sum.Add(numeric.Number(a))
	}

	return num.Rat(sum)
}

func div(args []cell.I) cell.I {
	v := validate.Variadic(args, 1)

	quotient := numeric.Number(v[0])

	for _, a := range v[1:] {
		q, err := quotient.Quo(numeric.Number(a))
		if err != nil {
			panic(err)
		}

		quotient = q
	}

	return num.Rat(quotient)
}

func mul(args []cell.I) cell.I {
	v := validate.Variadic(args, 1)

	product := numeric.Number(v[0])

	for _, a := range v[1:] {
		product = product.Mul(numeric.Number(a))
	}

	return num.Rat(product)
}

func neg(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(numeric.Number(v[0]).Neg())
}

func sub(args []cell.I) cell.I {
	v := validate.Variadic(args, 1)

	difference := numeric.Number(v[0])

	for _, a := range v[1:] {
		difference = difference.Sub(numeric.Number(a))
	}

	return num.Rat(difference)
}
