// Package pointer collects helpers for working with raw pointers in generic code.
package pointer

import "go.llib.dev/frameless/pkg/errorkit"

const ErrNil errorkit.Error = "nil pointer dereference"

// Of takes the pointer of a value.
func Of[T any](v T) *T { return &v }

// Deref will return the referenced value,
// or if the pointer has no value,
// then it returns with the zero value.
func Deref[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// TryDeref returns the referenced value,
// or an error wrapping ErrNil when the pointer is nil.
func TryDeref[P ~*T, T any](v P) (T, error) {
	if v == nil {
		return *new(T), ErrNil.F("%T", v)
	}
	return *v, nil
}
