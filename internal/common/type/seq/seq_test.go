// Released under an MIT license. See LICENSE.

package seq

import (
	"math/big"
	"testing"

	"github.com/michaelmacinnis/rationals/internal/common/type/integer"
	"github.com/michaelmacinnis/rationals/internal/common/type/rational"
)

func of(a, b int64) *rational.T {
	return rational.Must(rational.Of(a, b))
}

func TestIntegerRange(t *testing.T) {
	s := To(IntegerRange(integer.Range(big.NewInt(1), big.NewInt(5))))

	if s.Name() != "range" || s.String() != "1..5" {
		t.Fatalf("unexpected %s %s", s.Name(), s)
	}

	if !s.Contains(of(7, 2)) || s.Contains(of(11, 2)) {
		t.Fatalf("%s has the wrong bounds", s)
	}

	if !s.End().Equal(rational.Int64(6)) {
		t.Fatalf("unexpected end %v", s.End())
	}
}

func TestProgression(t *testing.T) {
	p, err := rational.FromClosedRange(rational.Int64(0), rational.Int64(1), of(1, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := To(Rational(p))

	if s.Name() != "progression" || s.IsEmpty() {
		t.Fatalf("unexpected %s %s", s.Name(), s)
	}

	if !s.Contains(of(3, 4)) || s.Contains(of(1, 3)) {
		t.Fatalf("%s has the wrong elements", s)
	}

	n := 0

	s.Each(func(r *rational.T) bool {
		n++

		return n < 2
	})

	if n != 2 {
		t.Fatalf("expected iteration to stop after 2 elements, got %d", n)
	}
}

func TestEqual(t *testing.T) {
	a := RationalRange(rational.NewRange(of(1, 3), of(2, 3)))
	b := RationalRange(rational.NewRange(of(2, 6), of(4, 6)))
	c := IntegerRange(integer.Range(big.NewInt(3), big.NewInt(1)))
	d := RationalRange(rational.NewRange(of(2, 3), of(1, 3)))

	if !a.Equal(b) {
		t.Fatalf("%v and %v should be equal", a, b)
	}

	if a.Equal(c) || !c.Equal(d) {
		t.Fatalf("only empty ranges should be equal")
	}

	p, err := integer.FromClosedRange(big.NewInt(1), big.NewInt(3), big.NewInt(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Integer(p).Equal(IntegerRange(integer.Range(big.NewInt(1), big.NewInt(3)))) {
		t.Fatalf("a progression is not a range")
	}
}

func TestContainsLargeProgression(t *testing.T) {
	p, err := integer.FromClosedRange(big.NewInt(1), big.NewInt(3000000000), big.NewInt(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := To(Integer(p))

	for _, c := range []struct {
		v        *rational.T
		expected bool
	}{
		{rational.Int64(0), false},
		{rational.Int64(3000000001), false},
		{of(5, 2), false},
		{rational.Int64(1), true},
		{rational.Int64(2999999999), true},
		{rational.Int64(3000000000), true},
	} {
		if s.Contains(c.v) != c.expected {
			t.Fatalf("%v in %s: expected %v", c.v, s, c.expected)
		}
	}
}

func TestContainsDescending(t *testing.T) {
	p, err := integer.FromClosedRange(big.NewInt(10), big.NewInt(1), big.NewInt(-3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := To(Integer(p))

	for v, expected := range map[int64]bool{
		10: true, 7: true, 4: true, 1: true,
		13: false, 8: false, 5: false, 0: false, -2: false,
	} {
		if s.Contains(rational.Int64(v)) != expected {
			t.Fatalf("%d in %s: expected %v", v, s, expected)
		}
	}

	e, err := rational.FromClosedRange(rational.Int64(0), rational.Int64(1), of(-1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if To(Rational(e)).Contains(rational.Int64(0)) {
		t.Fatalf("an empty progression contains nothing")
	}
}
