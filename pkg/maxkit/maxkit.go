// Package maxkit picks the greater of two operands.
//
// Which function applies depends on what the operand type can do:
//
//   - Of: built-in ordered values (numbers, strings)
//   - OfFunc: types that define their own three-way Compare method
//   - Pointee and Pointee2: raw pointers to ordered values, one or two levels deep
//   - Indirect: pointer-like wrappers such as *atomic.Pointer[T]
//
// Go has no overloading, so every capability has its own entry point,
// and the compiler rejects operands that satisfy none of them (complex numbers, structs without Compare).
//
// Dereferencing a nil operand is a programming error and panics with ErrNilPointer.
package maxkit

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/featurebook/internal/constraints"
	"go.llib.dev/featurebook/pkg/compare"
	"go.llib.dev/featurebook/pkg/pointer"
)

const ErrNilPointer errorkit.Error = "maxkit: nil operand"

// Of returns b when a < b, otherwise a.
// Ties resolve to a, and since tied values are equal under the ordering, Of(a, b) == Of(b, a).
func Of[T constraints.Ordered](a, b T) T {
	if compare.IsLess(compare.Ordered(a, b)) {
		return b
	}
	return a
}

// OfFunc is Of for types that implement compare.Interface.
func OfFunc[T compare.Interface[T]](a, b T) T {
	if compare.IsLess(a.Compare(b)) {
		return b
	}
	return a
}

// Pointee compares the values behind two pointers.
func Pointee[P ~*T, T constraints.Ordered](a, b P) T {
	return Of(deref[P, T](a), deref[P, T](b))
}

// Pointee2 compares the values behind two pointers to pointers.
func Pointee2[PP ~*P, P ~*T, T constraints.Ordered](a, b PP) T {
	return Pointee[P, T](deref[PP, P](a), deref[PP, P](b))
}

// PointeeFunc is Pointee for types that implement compare.Interface.
func PointeeFunc[P ~*T, T compare.Interface[T]](a, b P) T {
	return OfFunc(deref[P, T](a), deref[P, T](b))
}

// Indirection is a pointer-like value: something that can be loaded into a pointer which may be nil.
// *atomic.Pointer[T] is one.
type Indirection[T any] interface {
	comparable
	Load() *T
}

// Indirect compares the values behind two pointer-like wrappers.
// Both the wrapper and the loaded pointer must be non-nil.
func Indirect[I Indirection[T], T constraints.Ordered](a, b I) T {
	return Pointee(load[I, T](a), load[I, T](b))
}

func deref[P ~*T, T any](p P) T {
	v, err := pointer.TryDeref[P, T](p)
	if err != nil {
		panic(ErrNilPointer.Wrap(err))
	}
	return v
}

func load[I Indirection[T], T any](i I) *T {
	if i == *new(I) {
		panic(ErrNilPointer.Wrap(pointer.ErrNil.F("%T", i)))
	}
	return i.Load()
}
