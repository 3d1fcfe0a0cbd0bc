// Package mathkit holds generic numeric helpers.
package mathkit

import (
	"iter"
	"math"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/featurebook/internal/constraints"
)

type (
	Integer  constraints.Integer
	Float    constraints.Float
	Number   constraints.Number
	Additive constraints.Additive
)

const ErrEmptySpan errorkit.Error = "mathkit: empty span"

// Sum adds up the elements of seq, starting from the zero value of T.
// Strings are concatenated.
func Sum[T Additive](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Avg returns the arithmetic mean of span.
func Avg[S ~[]T, T Number](span S) (float64, error) {
	if len(span) == 0 {
		return 0, ErrEmptySpan
	}
	var sum float64
	for _, v := range span {
		sum += float64(v)
	}
	return sum / float64(len(span)), nil
}

// IsPowerOf2 reports whether v is a positive power of two.
func IsPowerOf2[T Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// IsPowerOf2Float reports whether v is a positive power of two, fractions like 0.25 included.
func IsPowerOf2Float[T Float](v T) bool {
	mantissa, _ := math.Frexp(float64(v))
	return mantissa == 0.5
}

// InRange reports whether v can be represented by To without loss.
//
//	InRange[uint](-1) == false
//	InRange[uint](42) == true
func InRange[To, From Integer](v From) bool {
	converted := To(v)
	if From(converted) != v {
		return false
	}
	return (v < 0) == (converted < 0)
}

// CmpLess compares two integers by value, even when one of them is signed and the other is not.
//
//	int(-7) < uint(665)
func CmpLess[A, B Integer](a A, b B) bool {
	switch {
	case a < 0 && 0 <= b:
		return true
	case 0 <= a && b < 0:
		return false
	case a < 0 && b < 0:
		return int64(a) < int64(b)
	default:
		return uint64(a) < uint64(b)
	}
}

func CmpGreater[A, B Integer](a A, b B) bool {
	return CmpLess(b, a)
}

func CmpEqual[A, B Integer](a A, b B) bool {
	return !CmpLess(a, b) && !CmpLess(b, a)
}
