// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/interface/numeric"
	"github.com/michaelmacinnis/rationals/internal/common/type/boolean"
	"github.com/michaelmacinnis/rationals/internal/common/type/num"
	"github.com/michaelmacinnis/rationals/internal/common/validate"
)

func compare(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.Int(int64(numeric.Number(v[0]).Cmp(numeric.Number(v[1]))))
}

func eq(a, b cell.I) bool {
	return a.Equal(b)
}

func ge(a, b cell.I) bool {
	return numeric.Number(a).Cmp(numeric.Number(b)) >= 0
}

func gt(a, b cell.I) bool {
	return numeric.Number(a).Cmp(numeric.Number(b)) > 0
}

func le(a, b cell.I) bool {
	return numeric.Number(a).Cmp(numeric.Number(b)) <= 0
}

func lt(a, b cell.I) bool {
	return numeric.Number(a).Cmp(numeric.Number(b)) < 0
}

func ne(a, b cell.I) bool {
	return !a.Equal(b)
}

func relation(f func(a, b cell.I) bool) Function {
	return func(args []cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		return boolean.Bool(f(v[0], v[1]))
	}
}
