package advisor

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/careercompass/compass/internal/models"
)

// RetryPolicy is the named retry policy consulted by the orchestrator.
// Only failures whose taxonomy kind is retryable are retried; everything
// else aborts on the first attempt.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy retries transient upstream failures exactly once.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 2,
		Backoff:     200 * time.Millisecond,
	}
}

// Do runs op under the policy. The last error is returned unchanged so
// the caller can still read its taxonomy kind.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Backoff), uint64(attempts-1)),
		ctx,
	)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !models.KindOf(err).Retryable() {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}
