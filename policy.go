package promise

import "fmt"

// While returns a policy that retries immediately as long as pred holds.
func While[T any](pred func(value T, err error, attempts int) bool) Policy[T] {
	return func(value T, err error, attempts int) (Decision, error) {
		return Bool(pred(value, err, attempts)), nil
	}
}

// Limit caps p at n retries. Once n retries have been made and p still asks
// for another, the policy fails with ErrRetriesExhausted, wrapping the last
// attempt's error if there was one. Decisions to stop pass through untouched.
func Limit[T any](n int, p Policy[T]) Policy[T] {
	return func(value T, err error, attempts int) (Decision, error) {
		d, policyErr := p(value, err, attempts)
		if policyErr != nil || !d.Retry() {
			return d, policyErr
		}
		if attempts-1 < n {
			return d, nil
		}
		if err != nil {
			return Stop(), fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}
		return Stop(), ErrRetriesExhausted
	}
}
