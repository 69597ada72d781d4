// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/interface/numeric"
	"github.com/michaelmacinnis/rationals/internal/common/type/num"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
	"github.com/michaelmacinnis/rationals/internal/common/type/str"
	"github.com/michaelmacinnis/rationals/internal/common/type/tuple"
	"github.com/michaelmacinnis/rationals/internal/common/validate"
)

const maxPlaces = 1000

func decimal(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	places := numeric.Integer(v[1]).Num()
	if places.Sign() < 0 || places.Cmp(big.NewInt(maxPlaces)) > 0 {
		panic("places must be between 0 and 1000")
	}

	return str.New(numeric.Number(v[0]).Decimal(int32(places.Int64())))
}

func den(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(rational.Int(numeric.Number(v[0]).Denom()))
}

func gcd(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	a := numeric.Integer(v[0]).Num()
	b := numeric.Integer(v[1]).Num()

	return num.Rat(rational.Int(new(big.Int).GCD(nil, nil, a, b)))
}

func (t *T) help(args []cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	pattern := "*"
	if len(v) == 1 {
		pattern = common.String(v[0])
	}

	var names []cell.I

	for _, name := range t.Names() {
		ok, err := adapted.Match(pattern, name)
		if err != nil {
			panic(err)
		}

		if ok {
			names = append(names, str.New(name))
		}
	}

	return tuple.New(names...)
}

func numerator(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(rational.Int(numeric.Number(v[0]).Num()))
}

func parse(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	r, err := rational.Parse(common.String(v[0]))
	if err != nil {
		panic(err)
	}

	return num.Rat(r)
}

func text(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(common.String(v[0]))
}
