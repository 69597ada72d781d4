// Released under an MIT license. See LICENSE.

package rational

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	for s, expected := range map[string]string{
		"117/1098": "13/122",
		"1/2":      "1/2",
		"-2/4":     "-1/2",
		"2/-4":     "-1/2",
		"6/3":      "2",
		"42":       "42",
		"-0":       "0",
		"10/10":    "1",
		"+3/9":     "1/3",
		"1824032980372593840238402384283940832058/912016490186296920119201192141970416029": "2",
	} {
		r, err := Parse(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}

		if r.String() != expected {
			t.Fatalf("%q: expected %q, got %q", s, expected, r)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for s, expected := range map[string]error{
		"":       ErrLiteral,
		"1/":     ErrLiteral,
		"/2":     ErrLiteral,
		"1/2/3":  ErrLiteral,
		"a/b":    ErrLiteral,
		"1.5":    ErrLiteral,
		" 1/2":   ErrLiteral,
		"1/0":    ErrDenominator,
		"0/0":    ErrDenominator,
		"1//2":   ErrLiteral,
		"0x10/2": ErrLiteral,
	} {
		_, err := Parse(s)
		if !errors.Is(err, expected) {
			t.Fatalf("%q: expected %v, got %v", s, expected, err)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	for s, expected := range map[string]string{
		"0.5":     "1/2",
		"0.125":   "1/8",
		"-1.5e3":  "-1500",
		"2.50":    "5/2",
		"12":      "12",
		"1e-3":    "1/1000",
		"0.00000": "0",
	} {
		r, err := ParseDecimal(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}

		if r.String() != expected {
			t.Fatalf("%q: expected %q, got %q", s, expected, r)
		}
	}

	for _, s := range []string{
		"1/2",
		"1e-2147483648",
		"5e-2147483648",
		"1e2147483647",
		"1e10001",
		"0.1e-10000",
	} {
		if _, err := ParseDecimal(s); !errors.Is(err, ErrLiteral) {
			t.Fatalf("%q: expected %v, got %v", s, ErrLiteral, err)
		}
	}

	r, err := ParseDecimal("3e-10000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	check(t, Int64(3), r.Mul(Int(new(big.Int).Exp(ten, big.NewInt(10000), nil))))
}

func TestDecimal(t *testing.T) {
	for _, c := range []struct {
		r        *T
		places   int32
		expected string
	}{
		{of(1, 3), 4, "0.3333"},
		{of(2, 3), 2, "0.67"},
		{of(-1, 8), 3, "-0.125"},
		{Int64(7), 2, "7.00"},
		{of(1, 2), 0, "1"},
	} {
		if s := c.r.Decimal(c.places); s != c.expected {
			t.Fatalf("%v to %d places: expected %q, got %q", c.r, c.places, c.expected, s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, r := range []*T{of(13, 122), of(-5, 7), Int64(-12), Int64(0)} {
		p, err := Parse(r.String())
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", r, err)
		}

		check(t, r, p)
	}
}
