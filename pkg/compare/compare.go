// Package compare is the three-way comparison toolkit.
//
// A comparison result is an int: negative when a < b, zero when they are equivalent,
// positive when a > b. This matches cmp.Compare, strings.Compare and slices.SortFunc.
package compare

import (
	"cmp"
	"strings"

	"go.llib.dev/featurebook/internal/constraints"
)

// Interface is implemented by types that define their own three-way ordering.
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Compare(o Version) int {
//		if c := cmp.Compare(v.Major, o.Major); c != 0 {
//			return c
//		}
//		return cmp.Compare(v.Minor, o.Minor)
//	}
type Interface[T any] interface {
	// Compare returns -1 if the receiver is less than the argument, 0 if they are equal, +1 if it is greater.
	Compare(T) int
}

func IsEqual(cmp int) bool { return cmp == 0 }

func IsLess(cmp int) bool { return cmp < 0 }

func IsLessOrEqual(cmp int) bool { return cmp <= 0 }

func IsMore(cmp int) bool { return 0 < cmp }

func IsMoreOrEqual(cmp int) bool { return 0 <= cmp }

func IsGreater(cmp int) bool { return IsMore(cmp) }

func IsGreaterOrEqual(cmp int) bool { return IsMoreOrEqual(cmp) }

func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Ordered compares two values of a built-in ordered type.
// NaN is treated as less than any other float, as in cmp.Compare.
func Ordered[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Func turns the Compare method of T into a comparison function,
// so it can be passed to slices.SortFunc and friends.
func Func[T Interface[T]](a, b T) int {
	return a.Compare(b)
}

// Reverse flips the ordering of a comparison function.
func Reverse[T any](fn func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return fn(b, a) }
}

// By compares values by a projection of them.
//
//	slices.SortStableFunc(words, compare.By(func(w string) int { return len(w) }, cmp.Compare[int]))
func By[T, P any](projection func(T) P, fn func(a, b P) int) func(a, b T) int {
	return func(a, b T) int { return fn(projection(a), projection(b)) }
}
