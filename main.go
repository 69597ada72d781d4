// Released under an MIT license. See LICENSE.

/*
Rationals is a calculator for exact rational arithmetic and for progressions
and ranges over integers and rationals. Each line is one expression:

    1/2 + 1/3
    -2/4 == -1/2
    list(1/3..5/7)
    first(10 downto 1 step 3)
    1/2 in 1/3..2/3
    decimal(1/3, 10)

Rationals is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/rationals/internal/engine"
	"github.com/michaelmacinnis/rationals/internal/system/config"
	"github.com/michaelmacinnis/rationals/internal/system/options"
	"github.com/michaelmacinnis/rationals/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := config.Load(options.Config())
	if err != nil {
		fmt.Fprintln(stderr, err.Error())

		return 2
	}

	e := engine.New(c.Output.Limit)

	if options.Interactive() {
		err = ui.Run(e, c)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 1
		}

		return 0
	}

	name, r := "stdin", stdin

	if cmd := options.Command(); cmd != "" {
		name, r = "command", strings.NewReader(cmd)
	} else if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 2
		}
		defer f.Close()

		name, r = path, f
	}

	if ui.Batch(e, c, name, r, stdout, stderr) > 0 {
		return 1
	}

	return 0
}
