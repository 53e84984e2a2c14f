package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDo_Success(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return nil
	}

	err := Do(context.Background(), operation)

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestDo_SuccessAfterFailures(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}

	err := Do(context.Background(), operation,
		WithMaxAttempts(5),
		WithDelay(10*time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error after retries, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("persistent error")
	}

	err := Do(context.Background(), operation,
		WithMaxAttempts(4),
		WithDelay(10*time.Millisecond))

	if err == nil {
		t.Fatal("Expected error after exhausting attempts, got nil")
	}
	if attempts != 4 {
		t.Errorf("Expected 4 attempts, got: %d", attempts)
	}
}

func TestDo_ReportsAttemptCount(t *testing.T) {
	t.Parallel()
	operation := func() error {
		return errors.New("boom")
	}

	err := Do(context.Background(), operation,
		WithMaxAttempts(2),
		WithDelay(time.Millisecond))

	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	want := "operation failed after 2 attempts"
	if got := err.Error(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("Expected error to start with %q, got %q", want, got)
	}
}

func TestDo_Notify(t *testing.T) {
	t.Parallel()
	var notified []int
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("flaky")
		}
		return nil
	}

	err := Do(context.Background(), operation,
		WithMaxAttempts(5),
		WithDelay(time.Millisecond),
		WithNotify(func(attempt int, _ error) {
			notified = append(notified, attempt)
		}))

	if err != nil {
		t.Errorf("Expected success, got: %v", err)
	}
	if len(notified) != 2 || notified[0] != 1 || notified[1] != 2 {
		t.Errorf("Expected notifications for attempts [1 2], got: %v", notified)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, operation, WithDelay(10*time.Millisecond))

	if err == nil {
		t.Fatal("Expected error due to context cancellation, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt before context check, got: %d", attempts)
	}
}

func TestDo_Classifier(t *testing.T) {
	t.Parallel()

	t.Run("Non-transient stops immediately", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		operation := func() error {
			attempts++
			return errors.New("invalid input")
		}

		err := Do(context.Background(), operation,
			WithMaxAttempts(5),
			WithDelay(time.Millisecond),
			WithClassifier(func(error) bool { return false }))

		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if attempts != 1 {
			t.Errorf("Expected 1 attempt for non-transient error, got: %d", attempts)
		}
	})

	t.Run("Transient keeps retrying", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		operation := func() error {
			attempts++
			return errors.New("throttled")
		}

		_ = Do(context.Background(), operation,
			WithMaxAttempts(3),
			WithDelay(time.Millisecond),
			WithClassifier(func(error) bool { return true }))

		if attempts != 3 {
			t.Errorf("Expected 3 attempts for transient error, got: %d", attempts)
		}
	})
}

func TestDo_FatalError(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return Fatal(errors.New("fatal error"))
	}

	err := Do(context.Background(), operation, WithDelay(time.Millisecond))

	if err == nil {
		t.Fatal("Expected fatal error, got nil")
	}
	if !IsFatal(err) {
		t.Errorf("Expected fatal error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt (no retries for fatal error), got: %d", attempts)
	}
}

func TestDo_FixedDelay(t *testing.T) {
	t.Parallel()
	attempts := 0
	var delays []time.Duration
	lastTime := time.Now()

	operation := func() error {
		attempts++
		now := time.Now()
		if attempts > 1 {
			delays = append(delays, now.Sub(lastTime))
		}
		lastTime = now
		if attempts < 4 {
			return errors.New("error")
		}
		return nil
	}

	delay := 50 * time.Millisecond
	err := Do(context.Background(), operation,
		WithMaxAttempts(5),
		WithDelay(delay))

	if err != nil {
		t.Errorf("Expected success after retries, got: %v", err)
	}
	if len(delays) != 3 {
		t.Fatalf("Expected 3 delays, got: %d", len(delays))
	}

	// Fixed delay: every gap should be ~delay, never growing.
	tolerance := 25 * time.Millisecond
	for i, d := range delays {
		if d < delay-tolerance || d > delay+tolerance {
			t.Errorf("Delay %d: expected ~%v, got %v", i+1, delay, d)
		}
	}
}

func TestFatal(t *testing.T) {
	t.Parallel()
	t.Run("Nil error", func(t *testing.T) {
		t.Parallel()
		if err := Fatal(nil); err != nil {
			t.Errorf("Expected nil, got: %v", err)
		}
	})

	t.Run("Non-nil error", func(t *testing.T) {
		t.Parallel()
		originalErr := errors.New("test error")
		err := Fatal(originalErr)

		if err == nil {
			t.Fatal("Expected non-nil error")
		}
		if !IsFatal(err) {
			t.Error("Expected error to be fatal")
		}
		if err.Error() != originalErr.Error() {
			t.Errorf("Expected error message %q, got %q", originalErr.Error(), err.Error())
		}
	})
}

func TestIsFatal(t *testing.T) {
	t.Parallel()
	t.Run("Non-fatal error", func(t *testing.T) {
		t.Parallel()
		if IsFatal(errors.New("regular error")) {
			t.Error("Expected non-fatal error")
		}
	})

	t.Run("Wrapped fatal error", func(t *testing.T) {
		t.Parallel()
		err := Fatal(errors.New("base error"))
		wrapped := fmt.Errorf("context: %w", err)
		if !IsFatal(wrapped) {
			t.Error("Expected wrapped fatal error to be detected")
		}
	})
}

func TestFatalError_Unwrap(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel error")
	fatalErr := Fatal(sentinel)

	if unwrapped := errors.Unwrap(fatalErr); unwrapped != sentinel {
		t.Errorf("errors.Unwrap() returned %v, want %v", unwrapped, sentinel)
	}
	if !errors.Is(fatalErr, sentinel) {
		t.Error("errors.Is should find sentinel through FatalError.Unwrap()")
	}
}
