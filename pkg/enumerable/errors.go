package enumerable

import "errors"

var (
	// ErrEmptySequence is returned by accessors and aggregates invoked on a view with no elements.
	ErrEmptySequence = errors.New("sequence contains no elements")

	// ErrNoMatch is returned when a predicate-qualified accessor finds no satisfying element.
	ErrNoMatch = errors.New("sequence contains no matching element")

	// ErrMultipleMatches is returned by Single and SingleMatch when more than one element qualifies.
	ErrMultipleMatches = errors.New("sequence contains more than one matching element")

	// ErrOutOfRange is returned for positional access outside [0, count).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is recorded by Take and Skip when given a negative count.
	ErrInvalidArgument = errors.New("invalid argument")
)
