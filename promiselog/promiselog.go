// Package promiselog logs Retry lifecycle events with zerolog.
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	f := promise.Retry(ctx, fetch, policy, promiselog.Hooks(logger))
//
// Retries are logged at warn, recoveries after more than one attempt at info
// and give-ups at error. A logger found in ctx via zerolog.Ctx takes precedence
// over the one passed to Hooks.
package promiselog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bjaus/promise"
)

// Field names used in log events.
const (
	FieldAttempt  = "attempt"
	FieldAttempts = "attempts"
	FieldDelay    = "delay"
)

// Hooks returns an option that installs logging hooks on Retry.
func Hooks(logger zerolog.Logger) promise.Option {
	h := hooks{logger: logger}
	return promise.Join(
		promise.OnRetry(h.onRetry),
		promise.OnSuccess(h.onSuccess),
		promise.OnExhausted(h.onExhausted),
	)
}

type hooks struct {
	logger zerolog.Logger
}

func (h hooks) from(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.logger
}

func (h hooks) onRetry(ctx context.Context, attempt int, err error, delay time.Duration) {
	h.from(ctx).Warn().
		Err(err).
		Int(FieldAttempt, attempt).
		Dur(FieldDelay, delay).
		Msg("retrying")
}

func (h hooks) onSuccess(ctx context.Context, attempts int) {
	if attempts <= 1 {
		return
	}
	h.from(ctx).Info().
		Int(FieldAttempts, attempts).
		Msg("recovered after retry")
}

func (h hooks) onExhausted(ctx context.Context, attempts int, err error) {
	h.from(ctx).Error().
		Err(err).
		Int(FieldAttempts, attempts).
		Msg("giving up")
}
