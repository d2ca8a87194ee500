package join

import (
	"slices"
	"strconv"
	"testing"

	pull "github.com/indigo-web/iter"
	"github.com/stretchr/testify/require"
)

func TestFragments(t *testing.T) {
	t.Run("alternation", func(t *testing.T) {
		frags := slices.Collect(StringSlice([]string{"a", "b", "c"}, ", ").Fragments())
		require.Equal(t, []string{"a", ", ", "b", ", ", "c"}, frags)
	})

	t.Run("empty source", func(t *testing.T) {
		require.Empty(t, slices.Collect(Strings(asIterator(), ",").Fragments()))
	})

	t.Run("single element", func(t *testing.T) {
		frags := slices.Collect(Strings(asIterator("x"), ",").Fragments())
		require.Equal(t, []string{"x"}, frags)
	})

	t.Run("rendered on demand", func(t *testing.T) {
		rendered := 0
		j := New(slices.Values([]int{1, 2, 3}), ",", func(v int) string {
			rendered++
			return strconv.Itoa(v)
		})

		for range j.Fragments() {
			break
		}

		require.Equal(t, 1, rendered)
	})

	t.Run("restartable source restarts", func(t *testing.T) {
		j := StringSlice([]string{"a", "b"}, "-")
		require.Equal(t, []string{"a", "-", "b"}, slices.Collect(j.Fragments()))
		require.Equal(t, []string{"a", "-", "b"}, slices.Collect(j.Fragments()))
	})

	t.Run("one-shot source does not", func(t *testing.T) {
		j := Strings(oneshot("a", "b"), "-")
		require.Equal(t, []string{"a", "-", "b"}, slices.Collect(j.Fragments()))
		require.Empty(t, slices.Collect(j.Fragments()))
	})

	t.Run("matches String", func(t *testing.T) {
		j := StringSlice([]string{"foo", "bar", "baz"}, ", ")
		var str string
		for frag := range j.Fragments() {
			str += frag
		}

		require.Equal(t, j.String(), str)
	})
}

func expectFragment(t *testing.T, it pull.Iterator[string], want string) {
	frag, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, want, frag)
}

func TestIter(t *testing.T) {
	t.Run("alternation", func(t *testing.T) {
		it := StringSlice([]string{"a", "b"}, "-").Iter()
		expectFragment(t, it, "a")
		expectFragment(t, it, "-")
		expectFragment(t, it, "b")

		_, ok := it.Next()
		require.False(t, ok)

		// stays exhausted
		_, ok = it.Next()
		require.False(t, ok)
	})

	t.Run("empty source", func(t *testing.T) {
		_, ok := Strings(asIterator(), ",").Iter().Next()
		require.False(t, ok)
	})

	t.Run("single element", func(t *testing.T) {
		it := Strings(asIterator("x"), ",").Iter()
		expectFragment(t, it, "x")

		_, ok := it.Next()
		require.False(t, ok)
	})

	t.Run("stopped reports exhaustion", func(t *testing.T) {
		it := Strings(asIterator("x"), ",").Iter()
		require.False(t, it.Stopped())
		expectFragment(t, it, "x")
		require.True(t, it.Stopped())

		require.True(t, Strings(asIterator(), ",").Iter().Stopped())
	})

	t.Run("break releases the source", func(t *testing.T) {
		it := StringSlice([]string{"a", "b", "c"}, "-").Iter()
		expectFragment(t, it, "a")

		it.Break()
		require.True(t, it.Stopped())

		_, ok := it.Next()
		require.False(t, ok)

		// breaking again is a no-op
		it.Break()
	})
}
