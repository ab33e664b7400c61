package enumerable

import (
	"iter"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/openfga/cinq/pkg/logger"
)

type state uint8

const (
	// borrowed views read through a window into the caller's source.
	borrowed state = iota
	// owned views hold their own copy of the elements.
	owned
)

func (s state) String() string {
	switch s {
	case borrowed:
		return "borrowed"
	case owned:
		return "owned"
	default:
		return "unknown"
	}
}

// window is the cursor pair into a borrowed source. end is only meaningful
// when bounded is set; an unbounded window over a forward-only source runs
// to the end of the source.
type window struct {
	start   int
	end     int
	bounded bool
}

// Enumerable is a query view over a sequence of T. Its zero value is not
// usable; construct one with From, FromSlice or FromSeq.
//
// Chainable methods mutate the view and return it, so a view must have a
// single owner. Use Clone to fork a chain.
type Enumerable[T any] struct {
	state state

	// valid while borrowed
	src     Sequence[T]
	indexed Indexed[T]
	win     window

	// valid while owned
	data []T

	err    error
	logger logger.Logger
}

// From returns a view borrowing src. Nothing is copied.
func From[T any](src Sequence[T], opts ...Option) *Enumerable[T] {
	o := newOptions(opts)

	e := &Enumerable[T]{
		state:  borrowed,
		src:    src,
		logger: o.logger,
	}
	if idx, ok := src.(Indexed[T]); ok {
		e.indexed = idx
		e.win = window{start: 0, end: idx.Len(), bounded: true}
	}
	return e
}

// FromSlice returns a view borrowing s.
func FromSlice[T any](s []T, opts ...Option) *Enumerable[T] {
	return From[T](Slice[T](s), opts...)
}

// FromSeq returns a view borrowing a forward-only sequence. seq must be
// finite and yield the same elements each time it is ranged over.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Enumerable[T] {
	return From[T](Seq[T](seq), opts...)
}

// owning wraps data that already belongs to the new view.
func owning[T any](data []T, l logger.Logger, err error) *Enumerable[T] {
	return &Enumerable[T]{
		state:  owned,
		data:   data,
		err:    err,
		logger: l,
	}
}

// Err returns the first error recorded by a chained step, if any.
func (e *Enumerable[T]) Err() error {
	return e.err
}

// Materialized reports whether the view owns a copy of its elements.
func (e *Enumerable[T]) Materialized() bool {
	return e.state == owned
}

// Clone returns an independent view with the same contents. A borrowed view
// clones to another borrowed view over the same source; an owned view's
// elements are copied.
func (e *Enumerable[T]) Clone() *Enumerable[T] {
	c := *e
	if e.state == owned {
		c.data = slices.Clone(e.data)
	}
	return &c
}

// ToSlice returns the current contents as a new slice, materializing the
// view if it has not been already.
func (e *Enumerable[T]) ToSlice() ([]T, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.ensureMaterialized()
	return slices.Clone(e.data), nil
}

func (e *Enumerable[T]) fail(err error) *Enumerable[T] {
	if e.err == nil {
		e.err = err
	}
	return e
}

// ensureMaterialized copies the borrowed window into owned storage. It is a
// no-op on an owned view.
func (e *Enumerable[T]) ensureMaterialized() {
	if e.state == owned {
		return
	}

	var data []T
	if e.indexed != nil {
		data = make([]T, 0, e.win.end-e.win.start)
	}
	for _, v := range e.values() {
		data = append(data, v)
	}
	if data == nil {
		data = []T{}
	}

	e.logger.Debug("materialized enumerable",
		zap.Int("count", len(data)),
		zap.Bool("random_access", e.indexed != nil),
	)

	e.data = data
	e.state = owned
	e.src = nil
	e.indexed = nil
	e.win = window{}
}

// values yields the current elements with their position in the view.
func (e *Enumerable[T]) values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		switch e.state {
		case owned:
			for i, v := range e.data {
				if !yield(i, v) {
					return
				}
			}
		case borrowed:
			if e.indexed != nil {
				for i := e.win.start; i < e.win.end; i++ {
					if !yield(i-e.win.start, e.indexed.At(i)) {
						return
					}
				}
				return
			}

			pos := 0
			for v := range e.src.All() {
				if e.win.bounded && pos >= e.win.end {
					return
				}
				if pos >= e.win.start {
					if !yield(pos-e.win.start, v) {
						return
					}
				}
				pos++
			}
		}
	}
}

// randomAccess reports whether at and length are O(1).
func (e *Enumerable[T]) randomAccess() bool {
	return e.state == owned || e.indexed != nil
}

// at returns the i-th element of the view. Callers check randomAccess and bounds.
func (e *Enumerable[T]) at(i int) T {
	if e.state == owned {
		return e.data[i]
	}
	return e.indexed.At(e.win.start + i)
}

func (e *Enumerable[T]) length() int {
	switch {
	case e.state == owned:
		return len(e.data)
	case e.indexed != nil:
		return e.win.end - e.win.start
	}

	n := 0
	for range e.values() {
		n++
	}
	return n
}

// advance returns pos+n saturated at math.MaxInt.
func advance(pos, n int) int {
	if n > math.MaxInt-pos {
		return math.MaxInt
	}
	return pos + n
}
