// Released under an MIT license. See LICENSE.

package parser

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/rationals/internal/common/struct/node"
	"github.com/michaelmacinnis/rationals/internal/reader/lexer"
)

func parse(s string) (parsed []string, failed []string) {
	l := lexer.New("test")

	l.Scan(s)

	New(func(n node.I) {
		if n == nil {
			parsed = append(parsed, "")
		} else {
			parsed = append(parsed, n.String())
		}
	}, func(err error) {
		failed = append(failed, err.Error())
	}, l.Token).Parse()

	return parsed, failed
}

func TestExpressions(t *testing.T) {
	for s, expected := range map[string]string{
		"1 + 2 * 3":             "(1 + (2 * 3))",
		"(1 - 2) - 3":           "((1 - 2) - 3)",
		"1 - 2 - 3":             "((1 - 2) - 3)",
		"-1/2":                  "((-1) / 2)",
		"--1":                   "(-(-1))",
		"1/2 <= 2/3":            "((1 / 2) <= (2 / 3))",
		"1..10 step 2":          "(1..10 step 2)",
		"10 downto 1":           "(10 downto 1)",
		"1 + 1 downto 0 step 1": "((1 + 1) downto 0 step 1)",
		"1/2 in 1/3..2/3":       "((1 / 2) in ((1 / 3)..(2 / 3)))",
		"list(1..3)":            "list((1..3))",
		"decimal(1/3, 10)":      "decimal((1 / 3), 10)",
		"rational('1/2')":       "rational('1/2')",
		"help()":                "help()",
		"0.5 == 1/2":            "(0.5 == (1 / 2))",
	} {
		parsed, failed := parse(s + "\n")
		if len(failed) > 0 {
			t.Fatalf("%q: unexpected errors %v", s, failed)
		}

		if len(parsed) != 1 || parsed[0] != expected {
			t.Fatalf("%q: expected %q, got %q", s, expected, parsed)
		}
	}
}

func TestBlankLines(t *testing.T) {
	parsed, failed := parse("\n1\n\n")
	if len(failed) > 0 {
		t.Fatalf("unexpected errors %v", failed)
	}

	if strings.Join(parsed, ",") != ",1," {
		t.Fatalf("unexpected expressions %q", parsed)
	}
}

func TestErrors(t *testing.T) {
	for _, s := range []string{
		"1 +",
		"(1",
		"1 2",
		"f(1,)",
		"step",
		"f",
		"1 = 2",
		"1 in",
	} {
		parsed, failed := parse(s + "\n")
		if len(failed) != 1 || len(parsed) != 0 {
			t.Fatalf("%q: expected one error, got %q %v", s, parsed, failed)
		}

		if !strings.HasPrefix(failed[0], "test:1:") {
			t.Fatalf("%q: error %q has no location", s, failed[0])
		}
	}
}

func TestRecovery(t *testing.T) {
	parsed, failed := parse("1 +\n2 * 3\n)\n4\n")

	if len(failed) != 2 {
		t.Fatalf("expected two errors, got %v", failed)
	}

	if strings.Join(parsed, ",") != "(2 * 3),4" {
		t.Fatalf("unexpected expressions %q", parsed)
	}
}
