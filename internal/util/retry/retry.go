package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds retry configuration.
type Config struct {
	// MaxAttempts is the total number of invocations, including the first.
	MaxAttempts int

	// Delay is the fixed wait between attempts. No backoff, no jitter:
	// budgets stay predictable for CI runs.
	Delay time.Duration

	// Classifier reports whether an error is worth retrying. A nil
	// classifier retries everything.
	Classifier func(error) bool

	// Notify is called after each failed attempt with the 1-based attempt
	// number and the error.
	Notify func(attempt int, err error)
}

// Option is a functional option for retry configuration.
type Option func(*Config)

// Do invokes operation until it succeeds or MaxAttempts is exhausted,
// sleeping Delay between attempts. Context cancellation aborts the wait.
//
// Errors wrapped with Fatal(), or rejected by the classifier, are not
// retried. The terminal error reports how many attempts were made.
func Do(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		MaxAttempts: 3,
		Delay:       10 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err
		if cfg.Notify != nil {
			cfg.Notify(attempt, err)
		}

		if IsFatal(err) {
			return fmt.Errorf("fatal error on attempt %d (not retrying): %w", attempt, err)
		}
		if cfg.Classifier != nil && !cfg.Classifier(err) {
			return fmt.Errorf("non-transient error on attempt %d (not retrying): %w", attempt, err)
		}

		if attempt < cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(cfg.Delay):
			}
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}

// WithMaxAttempts sets the total number of attempts, first call included.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithDelay sets the fixed delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = d
	}
}

// WithClassifier sets the transience classifier. Returning false stops
// retrying and surfaces the error immediately.
func WithClassifier(fn func(error) bool) Option {
	return func(c *Config) {
		c.Classifier = fn
	}
}

// WithNotify sets a callback invoked after every failed attempt.
func WithNotify(fn func(attempt int, err error)) Option {
	return func(c *Config) {
		c.Notify = fn
	}
}

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is fatal (non-retryable).
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
