package promise

import (
	"context"
	"fmt"
	"sync"
)

// Future is the eventual outcome of an asynchronous operation.
// It settles exactly once and is safe for concurrent use.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// Producer starts an asynchronous operation and returns a future for its outcome.
// Combinators that retry hold the producer, never the future, because a future
// settles only once.
type Producer[T any] func(ctx context.Context) *Future[T]

// Outcome is a settled future's result. Exactly one of success or failure is
// represented: Err is nil on success.
type Outcome[T any] struct {
	Value T
	Err   error
}

// OK reports whether the outcome is a success.
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// NewFuture returns a pending future and the function that settles it.
// Only the first call to settle has any effect.
func NewFuture[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.settle
}

// Resolved returns a future that has already succeeded with v.
func Resolved[T any](v T) *Future[T] {
	f, settle := NewFuture[T]()
	settle(v, nil)
	return f
}

// Rejected returns a future that has already failed with err.
func Rejected[T any](err error) *Future[T] {
	f, settle := NewFuture[T]()
	var zero T
	settle(zero, err)
	return f
}

// Go runs fn on its own goroutine and returns a future for its result.
// A panic in fn rejects the future with an error wrapping ErrPanic.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, settle := NewFuture[T]()
	go func() {
		var value T
		var err error
		defer func() {
			if r := recover(); r != nil {
				var zero T
				settle(zero, fmt.Errorf("%w: %v", ErrPanic, r))
				return
			}
			settle(value, err)
		}()
		value, err = fn(ctx)
	}()
	return f
}

func (f *Future[T]) settle(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Done returns a channel that is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future settles and returns its value and error.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}

// Outcome blocks until the future settles and returns its outcome.
func (f *Future[T]) Outcome() Outcome[T] {
	v, err := f.Result()
	return Outcome[T]{Value: v, Err: err}
}

// Await blocks until the future settles or ctx is done. Giving up on ctx does
// not affect the underlying operation; the future still settles on its own.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// invoke calls produce, turning a panic or a nil future into a rejection.
func invoke[T any](ctx context.Context, produce Producer[T]) (f *Future[T]) {
	defer func() {
		if r := recover(); r != nil {
			f = Rejected[T](fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()
	f = produce(ctx)
	if f == nil {
		return Rejected[T](ErrNilFuture)
	}
	return f
}
