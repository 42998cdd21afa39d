package receiver

import (
	"slices"
	"strings"

	"github.com/kbukum/problemkit/problem"
)

// Aggregate is the error produced by Accumulator.Check when problems were
// swallowed. It wraps the full accumulated list, preserving each problem's
// own chain and attachments.
type Aggregate struct {
	problems []*problem.Problem
}

// Error joins the member problems' messages with newlines.
func (a *Aggregate) Error() string {
	parts := make([]string, len(a.problems))
	for i, p := range a.problems {
		parts[i] = p.Error()
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the member problems to errors.Is and errors.As.
func (a *Aggregate) Unwrap() []error {
	errs := make([]error, len(a.problems))
	for i, p := range a.problems {
		errs[i] = p
	}
	return errs
}

// Problems returns the wrapped problems in accumulation order.
func (a *Aggregate) Problems() []*problem.Problem {
	return slices.Clone(a.problems)
}

// Len returns the number of wrapped problems.
func (a *Aggregate) Len() int {
	return len(a.problems)
}
