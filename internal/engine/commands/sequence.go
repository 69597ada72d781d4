// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/interface/numeric"
	"github.com/michaelmacinnis/rationals/internal/common/type/boolean"
	"github.com/michaelmacinnis/rationals/internal/common/type/integer"
	"github.com/michaelmacinnis/rationals/internal/common/type/num"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
	"github.com/michaelmacinnis/rationals/internal/common/type/seq"
	"github.com/michaelmacinnis/rationals/internal/common/type/tuple"
	"github.com/michaelmacinnis/rationals/internal/common/validate"
)

func downto(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 3)

	by := rational.Int64(-1)
	if len(v) == 3 { //nolint:gomnd
		by = numeric.Number(v[2]).Neg()
	}

	return progress(numeric.Number(v[0]), numeric.Number(v[1]), by)
}

func empty(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(seq.To(v[0]).IsEmpty())
}

func end(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(seq.To(v[0]).End())
}

func first(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(seq.To(v[0]).First())
}

func in(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(seq.To(v[1]).Contains(numeric.Number(v[0])))
}

func last(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(seq.To(v[0]).Last())
}

func (t *T) list(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	s := seq.To(v[0])

	var elements []cell.I

	s.Each(func(r *rational.T) bool {
		if t.limit > 0 && len(elements) == t.limit {
			panic(fmt.Sprintf("%s has more than %d elements", s, t.limit))
		}

		elements = append(elements, num.Rat(r))

		return true
	})

	return tuple.New(elements...)
}

func progress(from, to, by *rational.T) cell.I {
	if from.IsInt() && to.IsInt() && by.IsInt() {
		p, err := integer.FromClosedRange(from.Num(), to.Num(), by.Num())
		if err != nil {
			panic(err)
		}

		return seq.Integer(p)
	}

	p, err := rational.FromClosedRange(from, to, by)
	if err != nil {
		panic(err)
	}

	return seq.Rational(p)
}

func span(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 3)

	from := numeric.Number(v[0])
	to := numeric.Number(v[1])

	if len(v) == 3 { //nolint:gomnd
		return progress(from, to, numeric.Number(v[2]))
	}

	if from.IsInt() && to.IsInt() {
		return seq.IntegerRange(integer.Range(from.Num(), to.Num()))
	}

	return seq.RationalRange(rational.NewRange(from, to))
}

func step(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(seq.To(v[0]).Step())
}
