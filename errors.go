package promise

import "errors"

var (
	// ErrPanic wraps a value recovered from a panicking producer or policy.
	ErrPanic = errors.New("promise: panic recovered")

	// ErrNilFuture is the outcome of a producer that returned a nil future.
	ErrNilFuture = errors.New("promise: producer returned nil future")

	// ErrRetriesExhausted is raised by a Limit policy once its retries are spent.
	ErrRetriesExhausted = errors.New("promise: maximum number of retries reached")
)
