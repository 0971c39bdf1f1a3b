package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAttempts  = 3
	DefaultBaseDelay = 1000 * time.Millisecond
)

// Op is one read-only, idempotent unit of a batch
type Op[T any] func(ctx context.Context) (T, error)

// Clock abstracts time for production and testing
type Clock interface {
	After(d time.Duration) <-chan time.Time
	Now() time.Time
}

// SystemClock provides production time implementation using the standard library
type SystemClock struct{}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type retryConfig struct {
	attempts  int
	baseDelay time.Duration
	clock     Clock
	logger    *logrus.Entry
}

type RetryOption func(*retryConfig)

// WithAttempts sets how many times the whole batch is tried
func WithAttempts(n int) RetryOption {
	return func(c *retryConfig) { c.attempts = n }
}

// WithBaseDelay sets the wait after the first failed attempt; it doubles after each attempt
func WithBaseDelay(d time.Duration) RetryOption {
	return func(c *retryConfig) { c.baseDelay = d }
}

// WithClock injects a custom Clock (e.g., for testing)
func WithClock(clock Clock) RetryOption {
	return func(c *retryConfig) { c.clock = clock }
}

// WithLogger sets where retries are logged
func WithLogger(logger *logrus.Entry) RetryOption {
	return func(c *retryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// RetryAll runs every op concurrently and returns their results in op order. When any op
// fails the partial results are dropped and the whole batch is run again, waiting
// baseDelay * 2^attempt in between. After the last attempt its error is returned.
func RetryAll[T any](ctx context.Context, ops []Op[T], opts ...RetryOption) ([]T, error) {
	cfg := retryConfig{
		attempts:  DefaultAttempts,
		baseDelay: DefaultBaseDelay,
		clock:     SystemClock{},
		logger:    logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.attempts < 1 {
		cfg.attempts = 1
	}

	var err error
	for attempt := 0; attempt < cfg.attempts; attempt++ {
		if attempt > 0 {
			delay := cfg.baseDelay * time.Duration(1<<(attempt-1))
			cfg.logger.WithError(err).WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"delay":   delay,
				"ops":     len(ops),
			}).Debug("retrying batch")

			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("batch retry cancelled: %w (%w)", ctx.Err(), err)
			case <-cfg.clock.After(delay):
			}
		}

		var results []T
		results, err = runAll(ctx, ops)
		if err == nil {
			return results, nil
		}
	}
	return nil, err
}

func runAll[T any](ctx context.Context, ops []Op[T]) ([]T, error) {
	results := make([]T, len(ops))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, op := range ops {
		group.Go(func() error {
			result, err := op(groupCtx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
