package receiver

import "github.com/kbukum/problemkit/problem"

// Receiver accepts problems and decides their fate. Accept returns nil when
// the problem was swallowed (for example, accumulated for a later Check) and
// a non-nil error carrying the problem when it must propagate immediately.
//
// A Receiver is not safe for concurrent use unless stated otherwise; callers
// collecting from multiple goroutines should keep one Accumulator per
// goroutine and Merge them afterward.
type Receiver interface {
	Accept(p *problem.Problem) error
}

// FailFast is the stateless Receiver that always propagates. Two sequential
// calls are independent; nothing is retained.
type FailFast struct{}

// Accept returns the problem unchanged as the propagation error.
func (FailFast) Accept(p *problem.Problem) error {
	return p.Err()
}
