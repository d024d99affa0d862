package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/careercompass/compass/internal/models"
)

func TestRetryPolicy_RetriesTransientOnce(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond}

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return models.NewFault(models.KindUpstreamUnavailable, "connection refused", nil)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetryPolicy_ExhaustsAndReturnsLastError(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond}

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return models.NewFault(models.KindProviderUnavailable, "timeout", nil)
	})

	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
	if kind := models.KindOf(err); kind != models.KindProviderUnavailable {
		t.Errorf("returned kind = %v, want ProviderUnavailable", kind)
	}
}

func TestRetryPolicy_TerminalKindsAbortImmediately(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond}

	terminal := []models.Kind{
		models.KindProfileNotFound,
		models.KindUpstreamContractViolation,
		models.KindProviderRejected,
		models.KindProviderResponseTooLarge,
	}

	for _, kind := range terminal {
		attempts := 0
		err := policy.Do(context.Background(), func() error {
			attempts++
			return models.NewFault(kind, "terminal", nil)
		})

		if attempts != 1 {
			t.Errorf("%v: attempts = %d, want 1 (no retry)", kind, attempts)
		}
		if got := models.KindOf(err); got != kind {
			t.Errorf("%v: returned kind = %v", kind, got)
		}
	}
}

func TestRetryPolicy_ContextCancellationStopsRetries(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, Backoff: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := policy.Do(ctx, func() error {
		attempts++
		return models.NewFault(models.KindUpstreamUnavailable, "still down", nil)
	})

	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if attempts > 2 {
		t.Errorf("attempts = %d, cancellation should have cut retries short", attempts)
	}
}

func TestRetryPolicy_ZeroAttemptsStillRunsOnce(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 0, Backoff: time.Millisecond}

	attempts := 0
	if err := policy.Do(context.Background(), func() error {
		attempts++
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}
