package process_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kbukum/problemkit/attachment"
	"github.com/kbukum/problemkit/problem"
	"github.com/kbukum/problemkit/process"
	"github.com/kbukum/problemkit/receiver"
	"github.com/kbukum/problemkit/resilience"
)

func TestRunner_EmptyConfig(t *testing.T) {
	runner := process.NewRunner(process.RunnerConfig{})
	result, err := runner.Run(context.Background(), process.Command{
		Binary: "echo",
		Args:   []string{"hello"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d", result.ExitCode)
	}
	if string(result.Stdout) != "hello\n" {
		t.Fatalf("expected 'hello\\n', got %q", string(result.Stdout))
	}
}

func TestRunner_RetryOnFailure(t *testing.T) {
	var acc receiver.Accumulator
	runner := process.NewRunner(process.RunnerConfig{
		Retry: &resilience.RetryConfig{
			MaxAttempts:    2,
			InitialBackoff: time.Millisecond,
			BackoffFactor:  1.0,
		},
		Problems: &acc,
	})

	// "false" always fails, so both attempts should fail
	_, err := runner.Run(context.Background(), process.Command{
		Binary: "false",
	})
	if err == nil {
		t.Fatal("expected error from failing command")
	}
	if !errors.Is(err, resilience.ErrMaxRetriesExceeded) {
		t.Errorf("expected ErrMaxRetriesExceeded, got %v", err)
	}

	if acc.Len() != 2 {
		t.Fatalf("expected 2 attempt problems, got %d", acc.Len())
	}
	for i, p := range acc.Problems() {
		code, ok := attachment.ExitCodeOf(p)
		if !ok {
			t.Fatalf("attempt %d: expected an exit code attachment", i+1)
		}
		if code != 1 {
			t.Errorf("attempt %d: expected exit code 1, got %d", i+1, code)
		}
	}
}

func TestRunner_CircuitBreakerTrips(t *testing.T) {
	runner := process.NewRunner(process.RunnerConfig{
		Breaker: &resilience.CircuitBreakerConfig{
			Name:             "test-proc-cb",
			MaxFailures:      2,
			Timeout:          time.Second,
			HalfOpenMaxCalls: 1,
		},
	})

	// Fail twice to trip the breaker
	for i := 0; i < 2; i++ {
		_, err := runner.Run(context.Background(), process.Command{
			Binary: "false",
		})
		if err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	if runner.Breaker().State() != resilience.StateOpen {
		t.Fatalf("expected StateOpen, got %s", runner.Breaker().State())
	}

	// Third call is rejected without starting a subprocess
	_, err := runner.Run(context.Background(), process.Command{
		Binary: "false",
	})
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestRunner_SuccessDoesNotTripBreaker(t *testing.T) {
	runner := process.NewRunner(process.RunnerConfig{
		Breaker: &resilience.CircuitBreakerConfig{
			Name:        "test-proc-success",
			MaxFailures: 3,
			Timeout:     time.Second,
		},
	})

	for i := 0; i < 5; i++ {
		result, err := runner.Run(context.Background(), process.Command{
			Binary: "echo",
			Args:   []string{"ok"},
		})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if result.ExitCode != 0 {
			t.Fatalf("call %d: expected exit 0, got %d", i, result.ExitCode)
		}
	}
	if runner.Breaker().State() != resilience.StateClosed {
		t.Fatalf("expected StateClosed, got %s", runner.Breaker().State())
	}
}

func TestRunner_NilRunsDirectly(t *testing.T) {
	var runner *process.Runner
	result, err := runner.Run(context.Background(), process.Command{
		Binary: "echo",
		Args:   []string{"direct"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result.Stdout) != "direct\n" {
		t.Fatalf("expected 'direct\\n', got %q", string(result.Stdout))
	}
}

func TestRunner_FailFastReceiverAbortsRetries(t *testing.T) {
	runner := process.NewRunner(process.RunnerConfig{
		Retry: &resilience.RetryConfig{
			MaxAttempts:    5,
			InitialBackoff: time.Millisecond,
			BackoffFactor:  1.0,
		},
		Problems: receiver.FailFast{},
	})

	start := time.Now()
	_, err := runner.Run(context.Background(), process.Command{
		Binary: "false",
	})
	if err == nil {
		t.Fatal("expected the first failure to propagate")
	}
	p, ok := err.(*problem.Problem)
	if !ok {
		t.Fatalf("expected *problem.Problem, got %T", err)
	}
	if !p.Has(resilience.ErrRetry) {
		t.Error("expected the retry tag on the propagated chain")
	}
	// One attempt only, so no backoff sleeps happened
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("expected an immediate abort, took %v", elapsed)
	}
}
