// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all calculator values.
package cell

// I (cell) is a value produced by evaluating an expression.
type I interface {
	Equal(c I) bool
	Name() string
}
