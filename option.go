package promise

import (
	"context"
	"time"
)

// OnRetryFunc is called before each retry. err is the failure of the attempt
// that just completed, or nil when a successful value is being retried.
// delay is zero for an immediate retry.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// OnSuccessFunc is called when Retry resolves.
type OnSuccessFunc func(ctx context.Context, attempts int)

// OnExhaustedFunc is called when Retry rejects, either with the last attempt's
// error or with an error raised by the policy.
type OnExhaustedFunc func(ctx context.Context, attempts int, err error)

// config holds all combinator configuration.
type config struct {
	clock Clock

	// Retry hooks
	onRetry     []OnRetryFunc
	onSuccess   []OnSuccessFunc
	onExhausted []OnExhaustedFunc
}

// Option configures combinator behavior.
type Option func(*config)

// package-level default to avoid allocation
var defaultClock = realClock{}

func newConfig(opts []Option) config {
	cfg := config{clock: defaultClock}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.clock == nil {
		cfg.clock = defaultClock
	}
	return cfg
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// Join groups several options into one.
func Join(opts ...Option) Option {
	return func(c *config) {
		for _, opt := range opts {
			if opt != nil {
				opt(c)
			}
		}
	}
}

// OnRetry adds a hook that is called before each retry.
// Hooks accumulate and run in the order they were given.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = append(c.onRetry, fn)
	}
}

// OnSuccess adds a hook that is called when Retry resolves.
func OnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.onSuccess = append(c.onSuccess, fn)
	}
}

// OnExhausted adds a hook that is called when Retry rejects.
func OnExhausted(fn OnExhaustedFunc) Option {
	return func(c *config) {
		c.onExhausted = append(c.onExhausted, fn)
	}
}

func (c *config) retrying(ctx context.Context, attempt int, err error, delay time.Duration) {
	for _, fn := range c.onRetry {
		fn(ctx, attempt, err, delay)
	}
}

func (c *config) succeeded(ctx context.Context, attempts int) {
	for _, fn := range c.onSuccess {
		fn(ctx, attempts)
	}
}

func (c *config) exhausted(ctx context.Context, attempts int, err error) {
	for _, fn := range c.onExhausted {
		fn(ctx, attempts, err)
	}
}
