// Released under an MIT license. See LICENSE.

// Package reader encapsulates the lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/rationals/internal/common/struct/node"
	"github.com/michaelmacinnis/rationals/internal/common/struct/token"
	"github.com/michaelmacinnis/rationals/internal/reader/lexer"
	"github.com/michaelmacinnis/rationals/internal/reader/parser"
)

type result struct {
	err  error
	node node.I
}

// T (reader) turns lines of text into expressions.
type T struct {
	i chan string
	o chan result
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		i: make(chan string),
		o: make(chan result),
		s: lexer.New(name),
	}

	var v result

	r.p = parser.New(func(n node.I) {
		v = result{node: n}
	}, func(err error) {
		v = result{err: err}
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.o <- v

			v = result{}

			if !r.next() {
				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	go r.start()

	return r
}

// Close terminates the reader.
func (r *reader) Close() {
	close(r.i)
}

// Scan reads the line and returns the expression on it. The line should
// end with a newline. A blank or incomplete line returns a nil expression.
// If the line can't be parsed, Scan returns the error.
func (r *reader) Scan(line string) (node.I, error) {
	r.i <- line

	v := <-r.o

	return v.node, v.err
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	if r.next() {
		r.p.Parse()
	}

	close(r.o)
}
