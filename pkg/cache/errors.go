package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks a remote backend that could not be reached.
var ErrNetwork = errors.New("network error")

// RetryableError marks a transient failure for [RetryWithBackoff].
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err was marked with [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable
// error, or attempts run out. The delay doubles after every retry.
func RetryWithBackoff(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	err := fn()
	for left := attempts - 1; left > 0 && IsRetryable(err); left-- {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		err = fn()
	}
	return err
}
