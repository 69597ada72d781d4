// Released under an MIT license. See LICENSE.

package reader

import (
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	r := New("test")
	defer r.Close()

	for _, c := range []struct {
		line     string
		expected string
		failed   bool
	}{
		{"1/2 + 1/3\n", "((1 / 2) + (1 / 3))", false},
		{"\n", "", false},
		{"1 +\n", "test:3:4", true},
		{"list(1..3)\n", "list((1..3))", false},
		{") (\n", "test:5:1", true},
		{"# comment\n", "", false},
		{"-1/2 in 1/3..2/3\n", "(((-1) / 2) in ((1 / 3)..(2 / 3)))", false},
	} {
		n, err := r.Scan(c.line)

		switch {
		case c.failed:
			if err == nil || !strings.HasPrefix(err.Error(), c.expected) {
				t.Fatalf("%q: expected an error at %s, got %v", c.line, c.expected, err)
			}

			if n != nil {
				t.Fatalf("%q: unexpected expression %v", c.line, n)
			}

		case err != nil:
			t.Fatalf("%q: unexpected error: %v", c.line, err)

		case c.expected == "":
			if n != nil {
				t.Fatalf("%q: expected nothing, got %v", c.line, n)
			}

		case n == nil || n.String() != c.expected:
			t.Fatalf("%q: expected %s, got %v", c.line, c.expected, n)
		}
	}
}
