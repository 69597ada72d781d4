// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for rational expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/rationals/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	char int    // Column of the current token.
	line int    // Line of the current token.
	name string // Label for the source being scanned.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		char:  1,
		line:  1,
		name:  label,
		runes: 1,
		state: skipSpace,
	}
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	line := l.line
	if c == '\n' {
		// Report newline as part of previous line.
		line--
	}

	l.tokens <- token.New(c, v, l.name, line, l.char)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) peek() (token.Class, int) {
	return l.peekAt(l.index)
}

func (l *T) peekAt(i int) (token.Class, int) {
	r, w := rune(eof), 0
	if i < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[i:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.char = l.runes
	l.first = l.index
}

func isDigit(r token.Class) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r token.Class) bool {
	return r == '_' || r >= 0 && unicode.IsLetter(rune(r))
}

// T states.

func afterAngle(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '=':
		l.accept(r, w)
	}

	l.emit(token.Compare, l.Text())

	return skipSpace
}

func afterDot(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case r == '.':
		l.accept(r, w)
		l.emit(token.Span, l.Text())
	case isDigit(r):
		return scanFraction
	default:
		l.emit(token.Error, l.Text())
	}

	return skipSpace
}

func afterEquals(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '=':
		l.accept(r, w)
		l.emit(token.Compare, l.Text())
	default:
		l.emit(token.Error, l.Text())
	}

	return skipSpace
}

func scanExponent(l *T) action {
	r, w := l.peek()
	if r == eof {
		return nil
	}

	if r == '+' || r == '-' {
		l.accept(r, w)
	}

	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isDigit(r):
			l.accept(r, w)
		default:
			l.emit(token.Number, l.Text())
			return skipSpace
		}
	}
}

func scanFraction(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isDigit(r):
			l.accept(r, w)
		case r == 'e' || r == 'E':
			l.accept(r, w)
			return scanExponent
		default:
			l.emit(token.Number, l.Text())
			return skipSpace
		}
	}
}

func scanNumber(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isDigit(r):
			l.accept(r, w)
		case r == '.':
			n, _ := l.peekAt(l.index + w)
			if n == eof {
				return nil
			}

			if n == '.' {
				// The start of a span, not a decimal point.
				l.emit(token.Number, l.Text())
				return skipSpace
			}

			l.accept(r, w)
			return scanFraction
		case r == 'e' || r == 'E':
			l.accept(r, w)
			return scanExponent
		default:
			l.emit(token.Number, l.Text())
			return skipSpace
		}
	}
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			// Strings do not span lines.
			l.emit(token.Error, l.Text())
			return skipSpace
		case '\'':
			l.accept(r, w)
			s := l.Text()
			l.emit(token.String, s[1:len(s)-1])
			return skipSpace
		default:
			l.accept(r, w)
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isLetter(r) || isDigit(r):
			l.accept(r, w)
		default:
			l.emit(token.Symbol, l.Text())
			return skipSpace
		}
	}
}

func scanToken(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case isDigit(r):
		return scanNumber
	case isLetter(r):
		return scanSymbol
	}

	l.accept(r, w)

	switch r {
	case '\n', '(', ')', '*', '+', ',', '-', '/':
		l.emit(r, l.Text())
	case '.':
		return afterDot
	case '<', '>':
		return afterAngle
	case '!', '=':
		return afterEquals
	case '\'':
		return scanString
	default:
		l.emit(token.Error, l.Text())
	}

	return skipSpace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()
			return scanToken
		default:
			l.accept(r, w)
		}
	}
}

func skipSpace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\r', ' ':
			l.accept(r, w)
			l.skip()
		case '#':
			l.accept(r, w)
			return skipComment
		default:
			return scanToken
		}
	}
}
