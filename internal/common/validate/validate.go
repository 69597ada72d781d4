// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to built-in functions.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
)

// Count returns a phrase like "1 argument" or "2 arguments".
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed panics unless between min and max arguments were passed.
func Fixed(actual []cell.I, min, max int) []cell.I {
	n := len(actual)

	if n < min {
		panic(fmt.Sprintf("expected %s, passed %d", atLeast(min, max), n))
	}

	if n > max {
		s := Count(max, "argument", "s")
		if min < max {
			s = "at most " + s
		}

		panic(fmt.Sprintf("expected %s, passed %d", s, n))
	}

	return actual
}

// Variadic panics unless at least min arguments were passed.
func Variadic(actual []cell.I, min int) []cell.I {
	if len(actual) < min {
		s := Count(min, "argument", "s")

		panic(fmt.Sprintf("expected at least %s, passed %d", s, len(actual)))
	}

	return actual
}

func atLeast(min, max int) string {
	s := Count(min, "argument", "s")
	if min < max {
		s = "at least " + s
	}

	return s
}
