// Package join joins the elements of a sequence into a single string,
// interspersing a separator between them. It works in the same way as
// strings.Join does, except that it operates iterators as opposed to greedy
// string slices, and the result doesn't have to be materialized at all: it
// can be streamed into a writer or consumed fragment by fragment instead.
package join

import (
	"fmt"
	"iter"
	"strings"

	"github.com/indigo-web/utils/ft"
)

// A Separator is interspersed between elements: either plain text or a
// single rune.
type Separator interface {
	~string | ~rune
}

// Joiner lazily joins elements of a sequence with a separator in between.
// Constructing one costs nothing: the source is traversed only when the
// Joiner is consumed via String, WriteTo, WriteText, Fragments or Iter.
// Unless the source is restartable, a consumption call uses the source up,
// so consume the Joiner exactly once.
type Joiner[T any] struct {
	src      iter.Seq[T]
	render   func(T) string
	sep      string
	restarts bool
}

// New wraps a sequence of arbitrary elements. Each element is turned into
// text by render, which must be total: rendering is not allowed to fail.
func New[T any, S Separator](src iter.Seq[T], sep S, render func(T) string) Joiner[T] {
	return Joiner[T]{src: src, render: render, sep: string(sep)}
}

// Strings wraps a sequence of strings, used as-is.
func Strings[S Separator](src iter.Seq[string], sep S) Joiner[string] {
	return New(src, sep, ft.Nop[string])
}

// Stringers wraps a sequence of elements rendered by their String method.
func Stringers[T fmt.Stringer, S Separator](src iter.Seq[T], sep S) Joiner[T] {
	return New(src, sep, func(elem T) string { return elem.String() })
}

// Restartable declares that the source is cheaply re-traversable: ranging
// over it again is free to set up and has no side effects. String then sizes
// the result in a first pass and fills it in a second, allocating exactly
// once. Never declare one-shot sources (channels, readers, pull adapters)
// restartable.
func (j Joiner[T]) Restartable() Joiner[T] {
	j.restarts = true
	return j
}

// String returns the joined elements as a new string. An empty source
// produces an empty string; a sole element is returned as-is, with no
// separator around. Implements fmt.Stringer, so a restartable Joiner may be
// handed to the fmt package directly.
func (j Joiner[T]) String() string {
	if j.restarts {
		return j.sized()
	}

	var b strings.Builder
	j.appendTo(&b)

	return b.String()
}

// sized traverses the source twice: first to compute the exact output
// length, then to fill a buffer grown once to it.
func (j Joiner[T]) sized() string {
	var length, n int
	for elem := range j.src {
		length += len(j.render(elem))
		n++
	}

	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(length + (n-1)*len(j.sep))
	j.appendTo(&b)

	return b.String()
}

func (j Joiner[T]) appendTo(b *strings.Builder) {
	first := true

	for elem := range j.src {
		if !first {
			b.WriteString(j.sep)
		}

		first = false
		b.WriteString(j.render(elem))
	}
}
