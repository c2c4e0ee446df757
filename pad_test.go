package promise_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/promise"
)

func TestPad(t *testing.T) {
	t.Run("holds an early success", func(t *testing.T) {
		clock := newFakeClock()
		op := &counter[string]{outcome: func(int) (string, error) { return "fast", nil }}

		f := promise.Pad(context.Background(), op.produce, 100*time.Millisecond, promise.WithClock(clock))
		assert.Equal(t, 1, op.count(), "operation starts immediately")

		clock.Advance(99 * time.Millisecond)
		assert.False(t, isSettled(f))

		clock.Advance(time.Millisecond)
		v, err := await(t, f)
		require.NoError(t, err)
		assert.Equal(t, "fast", v)
	})

	t.Run("holds an early failure", func(t *testing.T) {
		clock := newFakeClock()
		op := &counter[int]{outcome: func(int) (int, error) { return 0, errTest }}

		f := promise.Pad(context.Background(), op.produce, 50*time.Millisecond, promise.WithClock(clock))

		clock.Advance(49 * time.Millisecond)
		assert.False(t, isSettled(f))

		clock.Advance(time.Millisecond)
		_, err := await(t, f)
		assert.Same(t, errTest, err)
	})

	t.Run("waits only the remaining time", func(t *testing.T) {
		clock := newFakeClock()
		op := &counter[int]{outcome: func(int) (int, error) { return 1, nil }}
		slow := func(ctx context.Context) *promise.Future[int] {
			return promise.Delay(ctx, op.produce, 40*time.Millisecond, promise.WithClock(clock))
		}

		f := promise.Pad(context.Background(), slow, 100*time.Millisecond, promise.WithClock(clock))
		assert.Equal(t, 2, clock.Pending(), "padding and operation run concurrently")

		clock.Advance(40 * time.Millisecond)
		assert.False(t, isSettled(f))

		clock.Advance(59 * time.Millisecond)
		assert.False(t, isSettled(f))

		clock.Advance(time.Millisecond)
		v, err := await(t, f)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("adds nothing to a slow operation", func(t *testing.T) {
		clock := newFakeClock()
		inner, settle := promise.NewFuture[int]()
		f := promise.Pad(context.Background(), func(context.Context) *promise.Future[int] {
			return inner
		}, 100*time.Millisecond, promise.WithClock(clock))

		clock.Advance(150 * time.Millisecond)
		assert.False(t, isSettled(f))
		assert.Equal(t, 0, clock.Pending())

		settle(0, errTest)
		_, err := await(t, f)
		assert.Same(t, errTest, err)
		assert.Equal(t, 0, clock.Pending(), "no extra wait after a late outcome")
	})

	t.Run("non-positive padding adds no timer", func(t *testing.T) {
		for _, d := range []time.Duration{0, -time.Second} {
			clock := newFakeClock()
			op := &counter[int]{outcome: func(int) (int, error) { return 9, nil }}

			f := promise.Pad(context.Background(), op.produce, d, promise.WithClock(clock))
			assert.Equal(t, 0, clock.Pending())

			v, err := await(t, f)
			require.NoError(t, err)
			assert.Equal(t, 9, v)
		}
	})

	t.Run("cancellation does not shorten the padding", func(t *testing.T) {
		clock := newFakeClock()
		op := &counter[int]{outcome: func(int) (int, error) { return 0, errTest }}
		ctx, cancel := context.WithCancel(context.Background())

		f := promise.Pad(ctx, op.produce, time.Hour, promise.WithClock(clock))
		cancel()

		select {
		case <-f.Done():
			t.Fatal("settled before the padding elapsed")
		case <-time.After(10 * time.Millisecond):
		}
		assert.Equal(t, 1, clock.Pending())

		clock.Advance(time.Hour - time.Millisecond)
		assert.False(t, isSettled(f))

		clock.Advance(time.Millisecond)
		_, err := await(t, f)
		assert.Same(t, errTest, err)
	})

	t.Run("real clock", func(t *testing.T) {
		start := time.Now()
		f := promise.Pad(context.Background(), func(context.Context) *promise.Future[int] {
			return promise.Rejected[int](errTest)
		}, 5*time.Millisecond)

		_, err := await(t, f)
		assert.Same(t, errTest, err)
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})
}
