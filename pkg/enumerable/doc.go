// Package enumerable provides a chainable query view over Go sequences.
//
// An Enumerable starts out borrowing its source: it keeps a cursor window
// into the caller's sequence and copies nothing. Operations that only read
// (Count, First, ElementAt, Any, ...) walk the window directly. Operations
// that remove, reorder or append elements (Where, OrderBy, Reverse, Concat)
// first materialize the window into a slice owned by the view, exactly once,
// and then work on that slice in place. Select always produces a new, owned
// view of the projected type and leaves its input untouched.
//
//	temps, err := enumerable.Select(
//		enumerable.FromSlice(points).
//			Where(func(p weather.Point) bool { return p.Rain }).
//			OrderBy(enumerable.By(func(p weather.Point) int { return p.TempMin })).
//			Take(5),
//		func(p weather.Point) int { return p.TempMin },
//	).ToSlice()
//
// Chainable steps that can fail (Take and Skip with a negative count) record
// the error on the view; the remaining steps are skipped and the error is
// returned by the terminal call. Operations that need ordering, arithmetic or
// equality on the element type are package-level generic functions so the
// compiler rejects element types that cannot support them.
//
// An Enumerable is not safe for concurrent use. The source is never written
// to, so any number of views may borrow the same source from different
// goroutines.
package enumerable
