package enumerable

import (
	"iter"
	"slices"
)

// Sequence is the minimal contract a source must satisfy: an ordered,
// re-iterable, finite traversal of its elements.
type Sequence[T any] interface {
	All() iter.Seq[T]
}

// Indexed is a Sequence with random access. Views over an Indexed source
// count, index and slice by cursor arithmetic instead of walking the source.
type Indexed[T any] interface {
	Sequence[T]
	Len() int
	At(i int) T
}

// Slice adapts a slice (or array, via arr[:]) into an Indexed source.
type Slice[T any] []T

var _ Indexed[int] = Slice[int](nil)

func (s Slice[T]) All() iter.Seq[T] {
	return slices.Values(s)
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(i int) T {
	return s[i]
}

// Seq adapts an iter.Seq into a forward-only source. The wrapped sequence
// must yield the same elements every time it is ranged over.
type Seq[T any] iter.Seq[T]

var _ Sequence[int] = Seq[int](nil)

func (s Seq[T]) All() iter.Seq[T] {
	return iter.Seq[T](s)
}
