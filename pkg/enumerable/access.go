package enumerable

import "fmt"

// First returns the first element.
func (e *Enumerable[T]) First() (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	for _, v := range e.values() {
		return v, nil
	}
	return zero, fmt.Errorf("%w: first", ErrEmptySequence)
}

// FirstMatch returns the first element satisfying pred.
func (e *Enumerable[T]) FirstMatch(pred func(T) bool) (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	for _, v := range e.values() {
		if pred(v) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("%w: first", ErrNoMatch)
}

// Last returns the last element.
func (e *Enumerable[T]) Last() (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	if e.randomAccess() {
		if n := e.length(); n > 0 {
			return e.at(n - 1), nil
		}
		return zero, fmt.Errorf("%w: last", ErrEmptySequence)
	}

	last, found := zero, false
	for _, v := range e.values() {
		last, found = v, true
	}
	if !found {
		return zero, fmt.Errorf("%w: last", ErrEmptySequence)
	}
	return last, nil
}

// LastMatch returns the last element satisfying pred.
func (e *Enumerable[T]) LastMatch(pred func(T) bool) (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	if e.randomAccess() {
		for i := e.length() - 1; i >= 0; i-- {
			if v := e.at(i); pred(v) {
				return v, nil
			}
		}
		return zero, fmt.Errorf("%w: last", ErrNoMatch)
	}

	last, found := zero, false
	for _, v := range e.values() {
		if pred(v) {
			last, found = v, true
		}
	}
	if !found {
		return zero, fmt.Errorf("%w: last", ErrNoMatch)
	}
	return last, nil
}

// Single returns the only element. It fails if the view is empty or holds
// more than one element.
func (e *Enumerable[T]) Single() (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	single, found := zero, false
	for _, v := range e.values() {
		if found {
			return zero, fmt.Errorf("%w: single", ErrMultipleMatches)
		}
		single, found = v, true
	}
	if !found {
		return zero, fmt.Errorf("%w: single", ErrEmptySequence)
	}
	return single, nil
}

// SingleMatch returns the only element satisfying pred. Every element is
// tested until a second match is seen.
func (e *Enumerable[T]) SingleMatch(pred func(T) bool) (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	single, found := zero, false
	for _, v := range e.values() {
		if !pred(v) {
			continue
		}
		if found {
			return zero, fmt.Errorf("%w: single", ErrMultipleMatches)
		}
		single, found = v, true
	}
	if !found {
		return zero, fmt.Errorf("%w: single", ErrNoMatch)
	}
	return single, nil
}

// ElementAt returns the element at position i.
func (e *Enumerable[T]) ElementAt(i int) (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	if i >= 0 {
		if e.randomAccess() {
			if i < e.length() {
				return e.at(i), nil
			}
		} else {
			for pos, v := range e.values() {
				if pos == i {
					return v, nil
				}
			}
		}
	}
	return zero, fmt.Errorf("%w: element %d", ErrOutOfRange, i)
}

// Contains reports whether v is one of the elements of e.
func Contains[T comparable](e *Enumerable[T], v T) (bool, error) {
	return e.AnyMatch(func(x T) bool {
		return x == v
	})
}

// Empty reports whether the view has no elements.
func (e *Enumerable[T]) Empty() (bool, error) {
	ok, err := e.Any()
	return !ok, err
}

// Any reports whether the view has at least one element.
func (e *Enumerable[T]) Any() (bool, error) {
	if e.err != nil {
		return false, e.err
	}

	if e.randomAccess() {
		return e.length() > 0, nil
	}
	for range e.values() {
		return true, nil
	}
	return false, nil
}

// AnyMatch reports whether some element satisfies pred. It stops at the first match.
func (e *Enumerable[T]) AnyMatch(pred func(T) bool) (bool, error) {
	if e.err != nil {
		return false, e.err
	}

	for _, v := range e.values() {
		if pred(v) {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every element satisfies pred. It stops at the first
// element that does not. All is true for an empty view.
func (e *Enumerable[T]) All(pred func(T) bool) (bool, error) {
	if e.err != nil {
		return false, e.err
	}

	for _, v := range e.values() {
		if !pred(v) {
			return false, nil
		}
	}
	return true, nil
}
