// Released under an MIT license. See LICENSE.

// Package token is shared by the lexer and parser.
package token

import (
	"strconv"
	"unicode"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	value string

	char int    // Character position (column).
	line int    // Line number (row).
	name string // Label for the source of this token.
}

type token = T

// Token classes. Single character tokens use the character as their class.
const (
	Error Class = iota

	Compare Class = unicode.MaxRune + iota
	Number
	Span
	String
	Symbol
)

// New creates a new token.
func New(class Class, value, name string, line, char int) *token {
	return &token{
		class: class,
		value: value,
		char:  char,
		line:  line,
		name:  name,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Compare:
		return "Compare"
	case Number:
		return "Number"
	case Span:
		return "Span"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Keyword returns true if t is the symbol s.
func (t *token) Keyword(s string) bool {
	return t.Is(Symbol) && t.value == s
}

// Source returns the location of the token as name:line:char.
func (t *token) Source() string {
	return t.name + ":" + strconv.Itoa(t.line) + ":" + strconv.Itoa(t.char)
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.Source() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
