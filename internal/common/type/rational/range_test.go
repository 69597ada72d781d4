// Released under an MIT license. See LICENSE.

package rational

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/rationals/internal/common/struct/progression"
)

func TestContains(t *testing.T) {
	for _, c := range []struct {
		lower, upper, value *T
		expected            bool
	}{
		{of(1, 5), of(3, 5), of(2, 5), true},
		{of(1, 5), of(3, 5), of(4, 5), false},
		{of(1, 3), of(5, 7), of(1, 2), true},
		{of(1, 3), of(4, 7), of(8, 9), false},
		{of(1, 3), of(2, 3), of(1, 2), true},
		{of(1, 3), of(2, 3), of(1, 3), true},
		{of(1, 3), of(2, 3), of(2, 3), true},
		{of(2, 3), of(1, 3), of(1, 2), false},
	} {
		r := NewRange(c.lower, c.upper)
		if r.Contains(c.value) != c.expected {
			t.Fatalf("%v in %v: expected %v", c.value, r, c.expected)
		}
	}
}

func TestRangeStep(t *testing.T) {
	for _, c := range []struct {
		lower, upper, step *T
	}{
		{of(1, 5), of(3, 5), of(1, 5)},
		{of(1, 3), of(5, 7), of(1, 21)},
		{of(1, 2), of(3, 4), of(1, 8)},
		{Int64(1), Int64(3), Int64(1)},
	} {
		r := NewRange(c.lower, c.upper)

		check(t, c.step, r.Step())
		check(t, c.upper, r.Last())
	}
}

func TestRangeElements(t *testing.T) {
	r := NewRange(of(1, 3), of(5, 7))

	n := 0
	prev := (*T)(nil)

	i := r.Iterator()
	for i.HasNext() {
		v, err := i.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if n == 0 {
			check(t, r.First(), v)
		}

		if !r.Contains(v) {
			t.Fatalf("%v produced %v which it does not contain", r, v)
		}

		if prev != nil {
			check(t, of(1, 21), v.Sub(prev))
		}

		prev = v
		n++
	}

	check(t, r.Last(), prev)

	// 7/21 through 15/21.
	if n != 9 {
		t.Fatalf("expected 9 elements, got %d", n)
	}

	if _, err := i.Next(); !errors.Is(err, progression.ErrExhausted) {
		t.Fatalf("expected %v, got %v", progression.ErrExhausted, err)
	}
}

func TestEmptyRange(t *testing.T) {
	r := NewRange(of(2, 3), of(1, 3))

	if !r.IsEmpty() {
		t.Fatalf("%v should be empty", r)
	}

	if r.Iterator().HasNext() {
		t.Fatalf("%v should have no elements", r)
	}

	if !r.Equal(NewRange(Int64(5), Int64(1))) {
		t.Fatalf("empty ranges should be equal")
	}
}

func TestEndExclusive(t *testing.T) {
	r := NewRange(of(1, 3), of(5, 7))

	// One unit of the start's denominator past the end.
	check(t, of(5, 7).Add(of(1, 3)), r.EndExclusive())
	check(t, of(5, 7), r.EndInclusive())
	check(t, of(1, 3), r.Start())
}

func TestRationalProgression(t *testing.T) {
	p, err := FromClosedRange(Int64(0), Int64(1), of(1, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := p.String(); s != "0..1 step 1/3" {
		t.Fatalf("unexpected %q", s)
	}

	q, err := FromClosedRange(Int64(0), Int64(1), of(2, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	check(t, of(4, 5), q.Last())

	d, err := FromClosedRange(Int64(1), of(-1, 2), of(-1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := d.String(); s != "1 downTo -1/2 step 1/2" {
		t.Fatalf("unexpected %q", s)
	}

	var v []string

	d.Each(func(r *T) bool {
		v = append(v, r.String())

		return true
	})

	if len(v) != 4 || v[0] != "1" || v[1] != "1/2" || v[2] != "0" || v[3] != "-1/2" {
		t.Fatalf("unexpected elements %v", v)
	}

	_, err = FromClosedRange(Int64(0), Int64(1), Int64(0))
	if !errors.Is(err, progression.ErrStep) {
		t.Fatalf("expected %v, got %v", progression.ErrStep, err)
	}

	_, err = Last(Int64(0), Int64(1), Int64(0))
	if !errors.Is(err, progression.ErrStep) {
		t.Fatalf("expected %v, got %v", progression.ErrStep, err)
	}
}

func TestRangeString(t *testing.T) {
	for _, c := range []struct {
		r        *Range
		expected string
	}{
		{NewRange(of(1, 3), of(2, 3)), "1/3..2/3 step 1/3"},
		{NewRange(of(1, 2), of(3, 4)), "1/2..3/4 step 1/8"},
		{NewRange(Int64(1), Int64(3)), "1..3 step 1"},
	} {
		if s := c.r.String(); s != c.expected {
			t.Fatalf("expected %q, got %q", c.expected, s)
		}
	}
}
