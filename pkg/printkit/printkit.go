// Package printkit renders sequences as a single labelled line:
//
//	vec: [ 1 2 3 ]
//
// Only element types with a canonical textual form are accepted.
// This is decided by the compiler through the Element constraint,
// or through fmt.Stringer for the Stringers variants.
// A map, a channel or a slice of structs will not compile.
package printkit

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"go.llib.dev/featurebook/internal/constraints"
)

// DefaultLabel is used when no label is given.
const DefaultLabel = "items"

// Element is the set of types that fmt renders without any help from the type itself.
type Element interface {
	constraints.Textual
}

// Output is where Print and its siblings write.
// When nil, they write to os.Stdout.
var Output io.Writer

func output() io.Writer {
	if Output != nil {
		return Output
	}
	return os.Stdout
}

// Fprint writes the elements of seq to w in iteration order.
// Every element is followed by a single space, including the last one.
// The only error returned is the one from w.
func Fprint[E Element](w io.Writer, seq iter.Seq[E], label ...string) error {
	return fprint(w, seq, func(e E) any { return e }, label)
}

// Print is Fprint to Output.
// Write errors are discarded, the same way fmt.Println users discard them.
func Print[E Element](seq iter.Seq[E], label ...string) {
	_ = Fprint(output(), seq, label...)
}

// FprintSlice is Fprint over the elements of a slice.
func FprintSlice[S ~[]E, E Element](w io.Writer, s S, label ...string) error {
	return Fprint(w, slices.Values(s), label...)
}

// PrintSlice is FprintSlice to Output.
func PrintSlice[S ~[]E, E Element](s S, label ...string) {
	_ = FprintSlice(output(), s, label...)
}

// FprintStringers is Fprint for elements that describe themselves through a String method.
func FprintStringers[E fmt.Stringer](w io.Writer, seq iter.Seq[E], label ...string) error {
	return fprint(w, seq, func(e E) any { return e.String() }, label)
}

// PrintStringers is FprintStringers to Output.
func PrintStringers[E fmt.Stringer](seq iter.Seq[E], label ...string) {
	_ = FprintStringers(output(), seq, label...)
}

func fprint[E any](w io.Writer, seq iter.Seq[E], text func(E) any, label []string) error {
	if _, err := fmt.Fprintf(w, "%s: [ ", labelOf(label)); err != nil {
		return err
	}
	if seq != nil {
		for e := range seq {
			if _, err := fmt.Fprintf(w, "%v ", text(e)); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func labelOf(label []string) string {
	if len(label) == 0 {
		return DefaultLabel
	}
	return label[0]
}

// Holder keeps a printable range around and can print it on demand.
type Holder[S ~[]E, E Element] struct {
	Items S
}

// Print writes the held items to Output under DefaultLabel.
func (h Holder[S, E]) Print() {
	PrintSlice(h.Items, DefaultLabel)
}

// Fprint writes the held items to w under DefaultLabel.
func (h Holder[S, E]) Fprint(w io.Writer) error {
	return FprintSlice(w, h.Items, DefaultLabel)
}
