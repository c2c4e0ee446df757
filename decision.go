package promise

import (
	"fmt"
	"time"
)

// decisionKind is the branch a policy picked.
type decisionKind uint8

const (
	kindStop decisionKind = iota
	kindRetryNow
	kindRetryAfter
)

// Decision tells Retry what to do after an attempt. The zero value is Stop.
type Decision struct {
	kind  decisionKind
	delay time.Duration
}

// Stop ends the retry loop with the outcome of the attempt that just completed.
func Stop() Decision {
	return Decision{kind: kindStop}
}

// RetryNow retries at once without scheduling a timer.
func RetryNow() Decision {
	return Decision{kind: kindRetryNow}
}

// RetryAfter retries once d has elapsed. A negative d is Stop. A zero d still
// goes through a zero-length timer, unlike RetryNow.
func RetryAfter(d time.Duration) Decision {
	if d < 0 {
		return Stop()
	}
	return Decision{kind: kindRetryAfter, delay: d}
}

// Bool maps true to RetryNow and false to Stop.
func Bool(retry bool) Decision {
	if retry {
		return RetryNow()
	}
	return Stop()
}

// Retry reports whether the decision asks for another attempt.
func (d Decision) Retry() bool {
	return d.kind != kindStop
}

// Delay returns the wait before the next attempt and whether a timer is used.
func (d Decision) Delay() (time.Duration, bool) {
	return d.delay, d.kind == kindRetryAfter
}

func (d Decision) String() string {
	switch d.kind {
	case kindRetryNow:
		return "retry now"
	case kindRetryAfter:
		return fmt.Sprintf("retry after %v", d.delay)
	default:
		return "stop"
	}
}
