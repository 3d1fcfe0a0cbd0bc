// Package constraints holds the type sets shared between the kit packages.
package constraints

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type (
	UInt    = constraints.Unsigned
	Integer = constraints.Integer
	Float   = constraints.Float
	Complex = constraints.Complex
	Ordered = cmp.Ordered
)

type Number interface {
	Integer | Float
}

// Additive is the set of types where `x + x` is defined.
type Additive interface {
	Number | Complex | ~string
}

// Textual is the set of basic kinds that fmt renders without any help from the type itself.
type Textual interface {
	Ordered | Complex | ~bool
}
