package promise

import (
	"context"
	"fmt"
)

// Policy decides what Retry does after each attempt.
//
// value and err are the outcome of the attempt that just completed; err is nil
// on success. attempts counts every attempt made so far, including that one.
// A non-nil error ends the loop and becomes the final failure, replacing the
// attempt's outcome. A panic is treated the same way, wrapped in ErrPanic.
type Policy[T any] func(value T, err error, attempts int) (Decision, error)

// Retry invokes produce until policy says to stop, then delivers the outcome of
// the last attempt. A failed attempt is not fatal by itself; it is handed to
// policy like a success. Attempts never overlap: the next one starts only after
// the previous outcome has been seen and policy asked for a retry.
//
// There is no built-in limit: a policy that always retries loops forever.
// If ctx is done while waiting between attempts,
// the last outcome is delivered. A nil policy never retries.
func Retry[T any](ctx context.Context, produce Producer[T], policy Policy[T], opts ...Option) *Future[T] {
	cfg := newConfig(opts)
	return Go(ctx, func(ctx context.Context) (T, error) {
		return execute(ctx, produce, policy, cfg)
	})
}

func execute[T any](ctx context.Context, produce Producer[T], policy Policy[T], cfg config) (T, error) {
	attempts := 0
	for {
		attempts++
		value, err := invoke(ctx, produce).Result()

		decision, policyErr := decide(policy, value, err, attempts)
		if policyErr != nil {
			cfg.exhausted(ctx, attempts, policyErr)
			var zero T
			return zero, policyErr
		}
		if !decision.Retry() {
			return finish(ctx, cfg, attempts, value, err)
		}

		delay, timed := decision.Delay()
		cfg.retrying(ctx, attempts, err, delay)
		if !timed {
			continue
		}
		if _, waitErr := wait(ctx, cfg.clock, delay).Result(); waitErr != nil {
			return finish(ctx, cfg, attempts, value, err)
		}
	}
}

func decide[T any](policy Policy[T], value T, err error, attempts int) (d Decision, policyErr error) {
	if policy == nil {
		return Stop(), nil
	}
	defer func() {
		if r := recover(); r != nil {
			d, policyErr = Stop(), fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return policy(value, err, attempts)
}

func finish[T any](ctx context.Context, cfg config, attempts int, value T, err error) (T, error) {
	if err != nil {
		cfg.exhausted(ctx, attempts, err)
		return value, err
	}
	cfg.succeeded(ctx, attempts)
	return value, nil
}
