// Package retry provides a bounded, fixed-delay retry helper.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Default policy values.
const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 2 * time.Second
)

// Policy bounds a retry loop: at most MaxAttempts calls, Delay between them.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy returns the default policy (3 attempts, 2s apart).
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultDelay}
}

// Operation is a single attempt. attempt is 1-based.
type Operation[T any] func(ctx context.Context, attempt int) (T, error)

// Notify is called after a failed attempt that will be retried.
type Notify func(attempt int, err error, wait time.Duration)

// Permanent marks err as non-retryable. Do returns it unwrapped.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs op until it succeeds, returns a permanent error, the policy is
// exhausted or ctx is done. It returns the last value, the number of attempts
// made and the last error.
func Do[T any](ctx context.Context, p Policy, op Operation[T], notify Notify) (T, int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), uint64(maxAttempts-1)),
		ctx,
	)

	attempts := 0
	wrapped := func() (T, error) {
		attempts++
		return op(ctx, attempts)
	}

	var onRetry backoff.Notify
	if notify != nil {
		onRetry = func(err error, wait time.Duration) {
			notify(attempts, err, wait)
		}
	}

	v, err := backoff.RetryNotifyWithData(wrapped, b, onRetry)
	return v, attempts, err
}
