package join

import (
	"slices"

	pull "github.com/indigo-web/iter"
	"github.com/indigo-web/utils/ft"
)

// Slice joins the elements of a slice, rendered by render. A slice cursor
// duplicates for free, so the view is restartable and String takes the sized
// path.
func Slice[T any, S Separator](elems []T, sep S, render func(T) string) Joiner[T] {
	return New(slices.Values(elems), sep, render).Restartable()
}

// StringSlice joins a slice of strings, used as-is. Unlike strings.Join, the
// result doesn't have to be materialized: it may as well be streamed or
// consumed fragment by fragment.
func StringSlice[S Separator](elems []string, sep S) Joiner[string] {
	return Slice(elems, sep, ft.Nop[string])
}

// Pull adapts a pull-style iterator. Such a source can only be traversed
// once, so the view is single-use and String takes the incremental path.
func Pull[T any, S Separator](src pull.Iterator[T], sep S, render func(T) string) Joiner[T] {
	return New(func(yield func(T) bool) {
		for {
			elem, ok := src.Next()
			if !ok || !yield(elem) {
				return
			}
		}
	}, sep, render)
}
