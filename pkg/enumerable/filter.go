package enumerable

import (
	"github.com/emirpasic/gods/sets/hashset"
	"go.uber.org/zap"
)

// Where keeps the elements for which pred returns true, in their original order.
func (e *Enumerable[T]) Where(pred func(T) bool) *Enumerable[T] {
	return e.WhereIndexed(func(v T, _ int) bool {
		return pred(v)
	})
}

// WhereIndexed is Where with each element's 0-based position before filtering.
func (e *Enumerable[T]) WhereIndexed(pred func(T, int) bool) *Enumerable[T] {
	if e.err != nil {
		return e
	}
	e.ensureMaterialized()

	kept := e.data[:0]
	for i, v := range e.data {
		if pred(v, i) {
			kept = append(kept, v)
		}
	}
	clear(e.data[len(kept):])
	e.data = kept
	return e
}

// Select returns a new view holding f applied to every element of e.
// e keeps its contents.
func Select[T, R any](e *Enumerable[T], f func(T) R) *Enumerable[R] {
	return SelectIndexed(e, func(v T, _ int) R {
		return f(v)
	})
}

// SelectIndexed is Select with each element's 0-based position.
func SelectIndexed[T, R any](e *Enumerable[T], f func(T, int) R) *Enumerable[R] {
	if e.err != nil {
		return owning[R](nil, e.logger, e.err)
	}
	e.ensureMaterialized()

	projected := make([]R, len(e.data))
	for i, v := range e.data {
		projected[i] = f(v, i)
	}

	e.logger.Debug("projected enumerable", zap.Int("count", len(projected)))
	return owning(projected, e.logger, nil)
}

// Distinct removes repeated elements, keeping the first occurrence of each.
func Distinct[T comparable](e *Enumerable[T]) *Enumerable[T] {
	if e.err != nil {
		return e
	}
	e.ensureMaterialized()

	seen := hashset.New()
	kept := e.data[:0]
	for _, v := range e.data {
		if seen.Contains(v) {
			continue
		}
		seen.Add(v)
		kept = append(kept, v)
	}
	clear(e.data[len(kept):])
	e.data = kept
	return e
}
