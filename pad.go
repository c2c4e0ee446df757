package promise

import (
	"context"
	"time"
)

// Pad invokes produce immediately and delivers its outcome no earlier than d
// after the call. Outcomes that arrive early are held until the padding
// elapses; late outcomes are delivered as soon as they arrive. The value and
// error are never altered. A d of zero or less adds no wait.
//
// Cancelling ctx never shortens the padding; it only reaches produce.
func Pad[T any](ctx context.Context, produce Producer[T], d time.Duration, opts ...Option) *Future[T] {
	if d <= 0 {
		return invoke(ctx, produce)
	}

	cfg := newConfig(opts)
	padding := wait(context.WithoutCancel(ctx), cfg.clock, d)
	op := invoke(ctx, produce)
	return Go(ctx, func(context.Context) (T, error) {
		value, err := op.Result()
		<-padding.Done()
		return value, err
	})
}
