package process

import (
	"context"

	"github.com/kbukum/problemkit/receiver"
	"github.com/kbukum/problemkit/resilience"
)

// Runner wraps subprocess execution with persistent resilience state.
// Use NewRunner to create one, then call Run repeatedly. The circuit breaker
// state persists across calls, so repeated crashes trip the breaker.
type Runner struct {
	retry   resilience.RetryConfig
	breaker *resilience.CircuitBreaker
}

// RunnerConfig configures a Runner. Zero-value fields are skipped:
// an empty config means Run calls process.Run directly.
type RunnerConfig struct {
	// Retry configures retry behavior. Nil disables retries.
	Retry *resilience.RetryConfig
	// Breaker configures a circuit breaker. Nil disables breaking.
	Breaker *resilience.CircuitBreakerConfig
	// Problems receives a problem chain for every failed attempt.
	// Nil disables attempt reporting.
	Problems receiver.Receiver
}

// NewRunner creates a Runner with the given resilience config.
func NewRunner(cfg RunnerConfig) *Runner {
	r := &Runner{}
	if cfg.Retry != nil {
		r.retry = *cfg.Retry
	} else {
		r.retry.MaxAttempts = 1
	}
	r.retry.Problems = cfg.Problems
	if cfg.Breaker != nil {
		r.breaker = resilience.NewCircuitBreaker(*cfg.Breaker)
	}
	return r
}

// Run executes a subprocess through the resilience chain.
// When the breaker is open, the subprocess is not started at all.
func (r *Runner) Run(ctx context.Context, cmd Command) (*Result, error) {
	if r == nil {
		return Run(ctx, cmd)
	}

	run := func() (*Result, error) {
		return Run(ctx, cmd)
	}

	if r.breaker != nil {
		var result *Result
		err := r.breaker.Execute(func() error {
			var runErr error
			result, runErr = resilience.Retry(ctx, r.retry, run)
			return runErr
		})
		return result, err
	}

	return resilience.Retry(ctx, r.retry, run)
}

// Breaker exposes the underlying circuit breaker, or nil when none
// was configured.
func (r *Runner) Breaker() *resilience.CircuitBreaker {
	return r.breaker
}
