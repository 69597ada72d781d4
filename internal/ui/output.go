// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/rationals/internal/common"
	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/type/num"
	"github.com/michaelmacinnis/rationals/internal/common/type/tuple"
)

const defaultWidth = 80

// Print writes the value c to w. If places is positive, a non-integer
// number is followed by its decimal approximation. If width is positive,
// lists are wrapped to fit.
func Print(w io.Writer, c cell.I, places, width int) {
	if c == nil {
		return
	}

	if t, ok := c.(*tuple.T); ok && width > 0 {
		fmt.Fprintln(w, wrap(t.Fields(), width))

		return
	}

	s := common.String(c)

	if places > 0 && num.Is(c) {
		r := num.To(c).Rat()
		if !r.IsInt() {
			s += " ~ " + r.Decimal(int32(places))
		}
	}

	fmt.Fprintln(w, s)
}

func wrap(fields []string, width int) string {
	var b strings.Builder

	n := 0

	for _, f := range fields {
		switch {
		case n == 0:
		case n+1+len(f) > width:
			b.WriteByte('\n')

			n = 0
		default:
			b.WriteByte(' ')
			n++
		}

		b.WriteString(f)
		n += len(f)
	}

	return b.String()
}
