package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "rationals 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	config      string
	interactive bool
	script      string
	usage       = `rationals

Usage:
  rationals [-C CONFIG] [SCRIPT]
  rationals [-C CONFIG] -c EXPRESSION
  rationals -h
  rationals -v

Arguments:
  SCRIPT  Path to a file of expressions, one per line.

Options:
  -C, --config=CONFIG        Read settings from CONFIG.
  -c, --command=EXPRESSION   Evaluate the specified expression.
  -h, --help                 Display this help.
  -v, --version              Print rationals version.

If no script or expression is given, expressions are read from stdin. If
stdin is a TTY, line editing and history are enabled.
`
)

func Command() string {
	return command
}

func Config() string {
	return config
}

func Interactive() bool {
	return interactive
}

func Parse() {
	ParseArgs(os.Args[1:])
}

func ParseArgs(argv []string) {
	opts, err := docopt.ParseArgs(usage, argv, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	script, _ = opts.String("SCRIPT")

	interactive = command == "" && script == "" &&
		isatty.IsTerminal(os.Stdin.Fd())
}

func Script() string {
	return script
}
