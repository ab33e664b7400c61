package enumerable

import (
	"fmt"
	"slices"
)

// Take keeps the first n elements. n larger than the count keeps everything.
// A borrowed view moves its end cursor instead of copying.
func (e *Enumerable[T]) Take(n int) *Enumerable[T] {
	if e.err != nil {
		return e
	}
	if n < 0 {
		return e.fail(fmt.Errorf("%w: take count %d is negative", ErrInvalidArgument, n))
	}

	switch e.state {
	case owned:
		if n < len(e.data) {
			clear(e.data[n:])
			e.data = e.data[:n]
		}
	case borrowed:
		end := advance(e.win.start, n)
		if !e.win.bounded || end < e.win.end {
			e.win.end = end
			e.win.bounded = true
		}
	}
	return e
}

// Skip drops the first n elements. n larger than the count leaves the view empty.
// A borrowed view moves its start cursor instead of copying.
func (e *Enumerable[T]) Skip(n int) *Enumerable[T] {
	if e.err != nil {
		return e
	}
	if n < 0 {
		return e.fail(fmt.Errorf("%w: skip count %d is negative", ErrInvalidArgument, n))
	}

	switch e.state {
	case owned:
		e.data = slices.Delete(e.data, 0, min(n, len(e.data)))
	case borrowed:
		e.win.start = advance(e.win.start, n)
		if e.win.bounded && e.win.start > e.win.end {
			e.win.start = e.win.end
		}
	}
	return e
}
