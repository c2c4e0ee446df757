package promise_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bjaus/promise"
	"github.com/bjaus/promise/internal/fakeclock"
)

var errTest = errors.New("test error")

// testTimeout bounds every wait on a goroutine so a broken test fails instead of hanging.
const testTimeout = 5 * time.Second

func newFakeClock() *fakeclock.Clock {
	return fakeclock.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

// await returns the outcome of f, failing the test if it does not settle in time.
func await[T any](t *testing.T, f *promise.Future[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	select {
	case <-f.Done():
		return f.Result()
	case <-ctx.Done():
		t.Fatal("future did not settle")
		var zero T
		return zero, nil
	}
}

// isSettled reports whether f has settled, without blocking.
func isSettled[T any](f *promise.Future[T]) bool {
	select {
	case <-f.Done():
		return true
	default:
		return false
	}
}

// blockUntil waits for n timers to be pending on clock.
func blockUntil(t *testing.T, clock *fakeclock.Clock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	require.NoError(t, clock.BlockUntil(ctx, n), "expected %d pending timers", n)
}

// counter is a producer that records how many times it was invoked and
// answers each call through outcome.
type counter[T any] struct {
	calls   atomic.Int32
	outcome func(call int) (T, error)
}

func (c *counter[T]) produce(context.Context) *promise.Future[T] {
	n := int(c.calls.Add(1))
	v, err := c.outcome(n)
	if err != nil {
		return promise.Rejected[T](err)
	}
	return promise.Resolved(v)
}

func (c *counter[T]) count() int {
	return int(c.calls.Load())
}
