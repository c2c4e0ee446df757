// Package promise provides small, composable helpers for shaping the timing
// and retry behavior of asynchronous operations.
//
// promise is built from two primitives:
//
//   - Future: a settle-once result that any goroutine can wait on
//   - Clock: a timer scheduler that can be swapped for a fake in tests
//
// On top of them sit four operations: Wait, Delay, Pad and Retry.
//
// # Futures
//
// A Future settles exactly once with a value or an error. Create one with
// Go, Resolved, Rejected or NewFuture, and read it with Result, Await or Done:
//
//	f := promise.Go(ctx, func(ctx context.Context) (*User, error) {
//	    return client.GetUser(ctx, id)
//	})
//	user, err := f.Await(ctx)
//
// Then sequences a continuation after a future and All joins several.
//
// Operations that may run more than once take a Producer, a function that
// starts the operation and returns a fresh future each time it is called.
//
// # Timing
//
// Wait is a timer future. Delay starts an operation only after a delay. Pad
// makes an operation take at least a given time, success or failure, which is
// useful for hiding how quickly a check fails:
//
//	f := promise.Pad(ctx, checkPassword, 500*time.Millisecond)
//
// # Retry
//
// Retry calls a producer repeatedly and asks a Policy what to do after every
// attempt. The policy sees the value, the error and the number of attempts so
// far, and returns a Decision:
//
//	f := promise.Retry(ctx, fetchJob, func(j Job, err error, attempts int) (promise.Decision, error) {
//	    switch {
//	    case attempts >= 10:
//	        return promise.Stop(), nil
//	    case err != nil:
//	        return promise.RetryAfter(time.Second), nil
//	    case j.Pending:
//	        return promise.RetryNow(), nil
//	    default:
//	        return promise.Stop(), nil
//	    }
//	})
//
// Stop delivers the outcome of the last attempt, success or failure. Failures
// are never fatal on their own; the policy decides. A policy that returns an
// error ends the loop with that error instead of the attempt's outcome, which
// is how a caller surfaces its own "gave up" error. Limit does this for a
// fixed retry budget:
//
//	policy := promise.Limit(3, promise.While(func(_ Job, err error, _ int) bool {
//	    return err != nil
//	}))
//
// There is no built-in backoff curve and no implicit attempt limit; the policy
// owns both.
//
// # Lifecycle Hooks
//
// Hooks provide observability without coupling to a specific logger or
// metrics system:
//
//	f := promise.Retry(ctx, fetch, policy,
//	    promise.OnRetry(func(ctx context.Context, attempt int, err error, delay time.Duration) {
//	        logger.Warn("retrying", "attempt", attempt, "delay", delay)
//	    }),
//	    promise.OnExhausted(func(ctx context.Context, attempts int, err error) {
//	        logger.Error("gave up", "attempts", attempts, "error", err)
//	    }),
//	)
//
// Hooks accumulate. The promiselog and promiseotel packages provide ready-made
// hooks for zerolog and OpenTelemetry.
//
// # Cancellation
//
// The context passed to each operation reaches every producer call. The
// operations themselves only stop waiting on timers when it is done: Wait and
// Delay reject with ctx.Err() and Retry delivers the last attempt's outcome.
// Pad is the exception: its padding always runs to the end, so cancellation
// cannot reveal how quickly the operation finished. A producer that ignores
// its context runs to completion.
//
// # Testing
//
// Inject a clock to control time in tests:
//
//	f := promise.Delay(ctx, fetch, time.Minute, promise.WithClock(clock))
//
// A Clock only needs AfterFunc; a fake that fires callbacks when the
// test advances it makes every timing path deterministic.
package promise
