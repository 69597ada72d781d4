// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the calculator.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/rationals/internal/common/interface/cell"
	"github.com/michaelmacinnis/rationals/internal/common/struct/node"
	"github.com/michaelmacinnis/rationals/internal/reader"
	"github.com/michaelmacinnis/rationals/internal/system/config"
	"github.com/michaelmacinnis/rationals/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed expressions.
type Evaluator interface {
	Evaluate(n node.I) (cell.I, error)
	Names() []string
}

// Batch evaluates each line read from r and prints the results to stdout.
// Errors are printed to stderr. Batch returns the number of lines that failed.
func Batch(e Evaluator, c *config.T, name string, r io.Reader, stdout, stderr io.Writer) int {
	rd := reader.New(name)
	defer rd.Close()

	failed := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		if !evaluate(e, c, rd, s.Text(), 0, stdout, stderr) {
			failed++
		}
	}

	if err := s.Err(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		failed++
	}

	return failed
}

// Run launches the interactive UI which sends expressions to the Evaluator.
func Run(e Evaluator, c *config.T) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	if c.UI.History {
		_ = history.Load(cli.ReadHistory)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Names()))

	rd := reader.New("stdin")
	defer rd.Close()

	for {
		merr := uncooked.ApplyMode()
		if merr != nil {
			return merr
		}

		line, err := cli.Prompt(c.UI.Prompt)

		merr = cooked.ApplyMode()
		if merr != nil {
			return merr
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if err != nil {
			os.Stdout.Write([]byte("\n"))

			break
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		evaluate(e, c, rd, line, width(), os.Stdout, os.Stderr)
	}

	if c.UI.History {
		return history.Save(cli.WriteHistory)
	}

	return nil
}

func completer(names []string) liner.WordCompleter {
	// Liner passes the cursor position in runes.
	return func(line string, pos int) (head string, cs []string, tail string) {
		r := []rune(line)

		start := pos
		for start > 0 && word(r[start-1]) {
			start--
		}

		head = string(r[:start])
		tail = string(r[pos:])

		prefix := string(r[start:pos])
		for _, n := range names {
			if strings.HasPrefix(n, prefix) {
				cs = append(cs, n)
			}
		}

		return
	}
}

func evaluate(e Evaluator, c *config.T, rd *reader.T, line string, w int, stdout, stderr io.Writer) bool {
	n, err := rd.Scan(line + "\n")
	if err == nil {
		var v cell.I

		v, err = e.Evaluate(n)
		if err == nil {
			Print(stdout, v, c.Output.Places, w)

			return true
		}
	}

	fmt.Fprintln(stderr, err.Error())

	return false
}

func word(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
