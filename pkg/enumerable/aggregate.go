package enumerable

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by the types Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count returns the number of elements. It is O(1) unless the view borrows
// a forward-only source.
func (e *Enumerable[T]) Count() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	return e.length(), nil
}

// CountMatch returns the number of elements satisfying pred.
func (e *Enumerable[T]) CountMatch(pred func(T) bool) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n := 0
	for _, v := range e.values() {
		if pred(v) {
			n++
		}
	}
	return n, nil
}

// Max returns the largest element.
func Max[T cmp.Ordered](e *Enumerable[T]) (T, error) {
	return MaxBy(e, identity[T])
}

// MaxBy returns the largest value f produces over the elements.
func MaxBy[T any, K cmp.Ordered](e *Enumerable[T], f func(T) K) (K, error) {
	return best(e, f, "max", func(c int) bool { return c > 0 })
}

// Min returns the smallest element.
func Min[T cmp.Ordered](e *Enumerable[T]) (T, error) {
	return MinBy(e, identity[T])
}

// MinBy returns the smallest value f produces over the elements.
func MinBy[T any, K cmp.Ordered](e *Enumerable[T], f func(T) K) (K, error) {
	return best(e, f, "min", func(c int) bool { return c < 0 })
}

func best[T any, K cmp.Ordered](e *Enumerable[T], f func(T) K, op string, better func(int) bool) (K, error) {
	var result K
	if e.err != nil {
		return result, e.err
	}

	found := false
	for _, v := range e.values() {
		k := f(v)
		if !found || better(cmp.Compare(k, result)) {
			result, found = k, true
		}
	}
	if !found {
		return result, fmt.Errorf("%w: %s", ErrEmptySequence, op)
	}
	return result, nil
}

// Sum adds the elements. An empty view is an error rather than zero.
func Sum[T Number](e *Enumerable[T]) (T, error) {
	return SumBy(e, identity[T])
}

// SumBy adds the values f produces over the elements.
func SumBy[T any, N Number](e *Enumerable[T], f func(T) N) (N, error) {
	var sum N
	if e.err != nil {
		return sum, e.err
	}

	found := false
	for _, v := range e.values() {
		sum += f(v)
		found = true
	}
	if !found {
		return sum, fmt.Errorf("%w: sum", ErrEmptySequence)
	}
	return sum, nil
}

// Average returns the arithmetic mean of integer elements as a float64.
func Average[T constraints.Integer](e *Enumerable[T]) (float64, error) {
	return AverageBy(e, identity[T])
}

// AverageBy returns the mean of the integers f produces, as a float64.
func AverageBy[T any, N constraints.Integer](e *Enumerable[T], f func(T) N) (float64, error) {
	return AverageFloatBy(e, func(v T) float64 {
		return float64(f(v))
	})
}

// AverageFloat returns the arithmetic mean of floating-point elements in
// their own precision.
func AverageFloat[F constraints.Float](e *Enumerable[F]) (F, error) {
	return AverageFloatBy(e, identity[F])
}

// AverageFloatBy returns the mean of the floats f produces, in their own precision.
func AverageFloatBy[T any, F constraints.Float](e *Enumerable[T], f func(T) F) (F, error) {
	var sum F
	if e.err != nil {
		return sum, e.err
	}

	n := 0
	for _, v := range e.values() {
		sum += f(v)
		n++
	}
	if n == 0 {
		return sum, fmt.Errorf("%w: average", ErrEmptySequence)
	}
	return sum / F(n), nil
}

// Aggregate folds the elements left to right into an accumulator starting
// at seed.
func Aggregate[T, A any](e *Enumerable[T], seed A, f func(A, T) A) (A, error) {
	if e.err != nil {
		return seed, e.err
	}

	acc := seed
	for _, v := range e.values() {
		acc = f(acc, v)
	}
	return acc, nil
}

func identity[T any](v T) T {
	return v
}
