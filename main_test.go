// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/michaelmacinnis/rationals/internal/system/options"
)

func TestDemo(t *testing.T) {
	options.ParseArgs([]string{"examples/demo.rat"})

	var stdout, stderr bytes.Buffer

	if status := run(nil, &stdout, &stderr); status != 0 {
		t.Fatalf("exit status %d: %s", status, stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 17 {
		t.Fatalf("expected 17 results, got %d", len(lines))
	}

	for i, l := range lines {
		if l != "true" {
			t.Fatalf("result %d: expected true, got %q", i+1, l)
		}
	}
}

func TestCommand(t *testing.T) {
	options.ParseArgs([]string{"-c", "list(1/2..3/4)"})

	var stdout, stderr bytes.Buffer

	if status := run(nil, &stdout, &stderr); status != 0 {
		t.Fatalf("exit status %d: %s", status, stderr.String())
	}

	if s := stdout.String(); s != "1/2 5/8 3/4\n" {
		t.Fatalf("unexpected output %q", s)
	}
}

func TestStdin(t *testing.T) {
	options.ParseArgs([]string{})
	if options.Interactive() {
		t.Skip("stdin is a terminal")
	}

	var stdout, stderr bytes.Buffer

	status := run(strings.NewReader("1/2 +\n1/0\n"), &stdout, &stderr)
	if status != 1 {
		t.Fatalf("expected exit status 1, got %d", status)
	}

	if stdout.Len() != 0 || strings.Count(stderr.String(), "\n") != 2 {
		t.Fatalf("unexpected output %q %q", stdout.String(), stderr.String())
	}
}

func TestMissingScript(t *testing.T) {
	options.ParseArgs([]string{os.DevNull + ".missing"})

	var stdout, stderr bytes.Buffer

	if status := run(nil, &stdout, &stderr); status != 2 {
		t.Fatalf("expected exit status 2, got %d", status)
	}
}
