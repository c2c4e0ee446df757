package promise

import (
	"context"
	"time"
)

// Delay invokes produce once d has elapsed and adopts the outcome of the
// future it returns. produce is never called on the caller's goroutine, even
// for a zero delay. If ctx is done before the timer fires, produce is not
// called and the future rejects with ctx.Err().
func Delay[T any](ctx context.Context, produce Producer[T], d time.Duration, opts ...Option) *Future[T] {
	cfg := newConfig(opts)
	timer := wait(ctx, cfg.clock, d)
	return Go(ctx, func(ctx context.Context) (T, error) {
		if _, err := timer.Result(); err != nil {
			var zero T
			return zero, err
		}
		return invoke(ctx, produce).Result()
	})
}
