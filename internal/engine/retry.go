// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Transient reports whether a failed operation is worth retrying. Only
// daemon reachability problems and expired time budgets can heal on their
// own; every other kind (absent binary, name conflict, missing image,
// malformed output, invalid request) will fail identically on a rerun.
func Transient(err error) bool {
	return errors.Is(err, ErrEngineUnreachable) || errors.Is(err, ErrTimeout)
}

// RetryWithBackoff runs op up to maxAttempts times, doubling the delay
// between attempts starting from baseDelay. The facade itself never
// retries; this is the helper for callers that want a retry policy on top.
//
// A nil error returns immediately. A non-transient error (per Transient)
// is returned without further attempts. The wait between attempts honors
// ctx, so cancellation aborts the loop instead of sleeping through it.
// On exhaustion the last error is returned.
func RetryWithBackoff(
	ctx context.Context,
	maxAttempts int,
	baseDelay time.Duration,
	op func(attempt int) error,
) error {
	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			if err := waitBackoff(ctx, baseDelay<<(attempt-1)); err != nil {
				return fmt.Errorf("retry aborted: %w", err)
			}
		}

		err := op(attempt)
		if err == nil {
			return nil
		}
		if !Transient(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// waitBackoff blocks for the given delay or until ctx is done, whichever
// comes first.
func waitBackoff(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
