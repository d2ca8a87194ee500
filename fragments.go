package join

import (
	"iter"

	pull "github.com/indigo-web/iter"
)

// Fragments returns the joined output as a lazy sequence of fragments:
// element, separator, element, ..., element. No trailing separator, no
// fragments at all for an empty source. Nothing is rendered until the
// consumer asks for it. The sequence can be ranged over again only if the
// source is restartable; a one-shot source makes a one-shot sequence.
func (j Joiner[T]) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		first := true

		for elem := range j.src {
			if !first && !yield(j.sep) {
				return
			}

			first = false
			if !yield(j.render(elem)) {
				return
			}
		}
	}
}

// Iter returns the fragment sequence as a pull iterator. Every pull advances
// the source cursor irrevocably, so the iterator is single-use regardless of
// the source. The iterator keeps one element of lookahead, consumed from the
// source already at construction; rendering still happens on pull only.
// Abandoning the iterator midway without calling Break leaks the underlying
// coroutine until the iterator is collected.
func (j Joiner[T]) Iter() pull.Iterator[string] {
	next, stop := iter.Pull(j.src)
	f := &fragiter[T]{next: next, stop: stop, render: j.render, sep: j.sep}

	elem, ok := next()
	if !ok {
		stop()
		f.state = exhausted
		return f
	}

	f.ahead = elem
	return f
}

const (
	elemPending = iota
	sepPending
	exhausted
)

// fragiter pulls fragments one at a time, keeping a single element of
// lookahead. The lookahead is what tells an inner element (followed by a
// separator) apart from the last one.
type fragiter[T any] struct {
	next   func() (T, bool)
	stop   func()
	render func(T) string
	sep    string
	ahead  T
	state  uint8
}

func (f *fragiter[T]) Next() (string, bool) {
	switch f.state {
	case elemPending:
		frag := f.render(f.ahead)

		if elem, ok := f.next(); ok {
			f.ahead = elem
			f.state = sepPending
		} else {
			f.stop()
			f.state = exhausted
		}

		return frag, true
	case sepPending:
		f.state = elemPending
		return f.sep, true
	default:
		return "", false
	}
}

func (f *fragiter[T]) Stopped() bool {
	return f.state == exhausted
}

// Break gives up on the remaining fragments, releasing the source.
func (f *fragiter[T]) Break() {
	if f.state != exhausted {
		f.stop()
		f.state = exhausted
	}
}
