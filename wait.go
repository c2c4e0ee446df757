package promise

import (
	"context"
	"time"
)

// Wait returns a future that resolves once d has elapsed. A d of zero or less
// still waits for a zero-length timer. If ctx is done first the timer is
// stopped and the future rejects with ctx.Err().
func Wait(ctx context.Context, d time.Duration, opts ...Option) *Future[struct{}] {
	cfg := newConfig(opts)
	return wait(ctx, cfg.clock, d)
}

func wait(ctx context.Context, clock Clock, d time.Duration) *Future[struct{}] {
	f, settle := NewFuture[struct{}]()
	if err := ctx.Err(); err != nil {
		settle(struct{}{}, err)
		return f
	}
	if d < 0 {
		d = 0
	}

	t := clock.AfterFunc(d, func() {
		settle(struct{}{}, nil)
	})
	if ctx.Done() == nil {
		return f
	}

	stop := context.AfterFunc(ctx, func() {
		if t.Stop() {
			settle(struct{}{}, ctx.Err())
		}
	})
	go func() {
		<-f.Done()
		stop()
	}()
	return f
}
