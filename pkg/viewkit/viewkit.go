// Package viewkit provides lazy views over iter.Seq.
//
// A view never copies its source: elements are produced on demand,
// so views compose into pipelines and can sit on top of unbounded sequences.
//
//	squares := viewkit.Take(
//		viewkit.Filter(
//			viewkit.Transform(viewkit.Iota(1, 20), func(x int) int { return x * x }),
//			func(x int) bool { return x%2 == 0 }),
//		5)
package viewkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/featurebook/internal/constraints"
)

// All views every element of a slice.
func All[S ~[]E, E any](s S) iter.Seq[E] {
	return iterkit.Slice([]E(s))
}

// Counted views the first n elements of a slice.
// A negative n views nothing, and an n past the end views the whole slice.
func Counted[S ~[]E, E any](s S, n int) iter.Seq[E] {
	return iterkit.Head(All(s), n)
}

// DropSlice returns the tail of s after its first n elements.
// The result shares the backing array with s, so writes through it are visible in s.
func DropSlice[S ~[]E, E any](s S, n int) S {
	return s[clamp(n, len(s)):]
}

func clamp(n, length int) int {
	return max(0, min(n, length))
}

// Iota yields begin, begin+1, ... up to but excluding end.
// Both bounds must fit into an int.
func Iota[T constraints.Integer](begin, end T) iter.Seq[T] {
	if end <= begin {
		return iterkit.Empty[T]()
	}
	return iterkit.Map(iterkit.IntRange(int(begin), int(end)-1), func(v int) T { return T(v) })
}

// IotaFrom yields begin, begin+1, ... without an upper bound.
// Use it together with Take or TakeWhile.
func IotaFrom[T constraints.Integer](begin T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := begin; ; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n elements of seq.
// It never pulls more than n elements from the source.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return iterkit.Head(seq, n)
}

// Drop skips the first n elements of seq.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return iterkit.Offset(seq, n)
}

// DropWhile skips elements while pred holds, then yields the rest unconditionally.
func DropWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields elements until pred fails for the first time.
func TakeWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Filter yields the elements for which pred holds.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return iterkit.Filter(seq, pred)
}

// Transform maps every element with fn.
func Transform[To, From any](seq iter.Seq[From], fn func(From) To) iter.Seq[To] {
	return iterkit.Map(seq, fn)
}

// Pairs maps every element into a pair.
func Pairs[K, V, From any](seq iter.Seq[From], fn func(From) (K, V)) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Elements0 views the first element of every pair.
func Elements0[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

// Elements1 views the second element of every pair.
func Elements1[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect materialises a finite sequence.
// A nil sequence collects into a nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return iterkit.Collect(seq)
}

// Equal reports whether two finite sequences yield the same elements in the same order.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for {
		va, okA := nextA()
		vb, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if va != vb {
			return false
		}
	}
}
