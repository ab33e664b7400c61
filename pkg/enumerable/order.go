package enumerable

import (
	"cmp"
	"slices"
)

// Key compares two elements on one sort key, returning a negative number,
// zero or a positive number as a sorts before, with or after b.
type Key[T any] func(a, b T) int

// By returns a Key ordering elements ascending by the value f extracts.
func By[T any, K cmp.Ordered](f func(T) K) Key[T] {
	return func(a, b T) int {
		return cmp.Compare(f(a), f(b))
	}
}

// ByDescending returns a Key ordering elements descending by the value f extracts.
func ByDescending[T any, K cmp.Ordered](f func(T) K) Key[T] {
	return func(a, b T) int {
		return cmp.Compare(f(b), f(a))
	}
}

// thenBy folds keys into one comparison that consults each key in turn and
// stops at the first one that tells the pair apart.
func thenBy[T any](keys []Key[T]) func(a, b T) int {
	if len(keys) == 0 {
		return func(T, T) int { return 0 }
	}

	head, rest := keys[0], thenBy(keys[1:])
	return func(a, b T) int {
		if c := head(a, b); c != 0 {
			return c
		}
		return rest(a, b)
	}
}

// OrderBy stably sorts the elements by keys, lexicographically: ties on the
// first key are broken by the second, and so on. Elements equal on every key
// keep their relative order.
func (e *Enumerable[T]) OrderBy(keys ...Key[T]) *Enumerable[T] {
	if e.err != nil {
		return e
	}
	e.ensureMaterialized()
	if len(keys) == 0 {
		return e
	}

	slices.SortStableFunc(e.data, thenBy(keys))
	return e
}

// Order stably sorts the elements in ascending natural order.
func Order[T cmp.Ordered](e *Enumerable[T]) *Enumerable[T] {
	return e.OrderBy(cmp.Compare[T])
}

// OrderDescending stably sorts the elements in descending natural order.
func OrderDescending[T cmp.Ordered](e *Enumerable[T]) *Enumerable[T] {
	return e.OrderBy(func(a, b T) int {
		return cmp.Compare(b, a)
	})
}
