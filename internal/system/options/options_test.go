package options

import "testing"

func TestParseArgs(t *testing.T) {
	ParseArgs([]string{"-C", "settings.toml", "-c", "1/2 + 1/3"})

	if Command() != "1/2 + 1/3" {
		t.Fatalf("unexpected command %q", Command())
	}

	if Config() != "settings.toml" {
		t.Fatalf("unexpected config %q", Config())
	}

	if Interactive() || Script() != "" {
		t.Fatalf("an expression should not be interactive")
	}

	ParseArgs([]string{"demo.rat"})

	if Script() != "demo.rat" || Command() != "" || Config() != "" {
		t.Fatalf("unexpected options %q %q %q", Script(), Command(), Config())
	}

	if Interactive() {
		t.Fatalf("a script should not be interactive")
	}
}
