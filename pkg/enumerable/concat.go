package enumerable

import "slices"

// Concat appends the elements of other after the elements of e. other is
// materialized if it was not already; its contents are copied, not shared.
func (e *Enumerable[T]) Concat(other *Enumerable[T]) *Enumerable[T] {
	if e.err != nil {
		return e
	}
	if other.err != nil {
		return e.fail(other.err)
	}

	e.ensureMaterialized()
	other.ensureMaterialized()
	e.data = append(e.data, other.data...)
	return e
}

// Reverse reverses the order of the elements.
func (e *Enumerable[T]) Reverse() *Enumerable[T] {
	if e.err != nil {
		return e
	}
	e.ensureMaterialized()
	slices.Reverse(e.data)
	return e
}
