package llm

import (
	"context"
	"fmt"
	"time"
)

// Retryer executes LLM generation calls with bounded exponential backoff.
// It is the single place retry policy is defined and the sole point that
// waits between attempts; every LLM-backed component shares one instance.
type Retryer struct {
	MaxAttempts int
	MinWait     time.Duration
	MaxWait     time.Duration

	sleep func(time.Duration) // test hook, nil means time.Sleep
}

// NewRetryer creates a Retryer. MaxAttempts must be positive and
// MinWait <= MaxWait; callers validate via config.Load.
func NewRetryer(maxAttempts int, minWait, maxWait time.Duration) *Retryer {
	return &Retryer{
		MaxAttempts: maxAttempts,
		MinWait:     minWait,
		MaxWait:     maxWait,
	}
}

// Generate executes one generation call through client, retrying only on
// transient provider errors. preDelay, when positive, is applied before the
// first attempt to support external rate limiting. Non-transient errors
// propagate immediately; exhausting all attempts propagates the last error
// wrapped in ErrRetryExhausted.
func (r *Retryer) Generate(ctx context.Context, client Client, preDelay time.Duration, req GenerateRequest) (*GenerateResponse, error) {
	if preDelay > 0 {
		if err := r.wait(ctx, preDelay); err != nil {
			return nil, err
		}
	}

	var lastErr error
	backoff := r.MinWait

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		resp, err := client.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return nil, err
		}
		if attempt == r.MaxAttempts {
			break
		}

		if err := r.wait(ctx, backoff); err != nil {
			return nil, err
		}
		backoff *= 2
		if backoff > r.MaxWait {
			backoff = r.MaxWait
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, r.MaxAttempts, lastErr)
}

func (r *Retryer) wait(ctx context.Context, d time.Duration) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if r.sleep != nil {
		r.sleep(d)
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
