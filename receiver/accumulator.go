package receiver

import (
	"reflect"
	"slices"

	"github.com/kbukum/problemkit/problem"
)

// Accumulator is a Receiver that collects swallowed problems into an ordered
// list. The zero value is ready to use.
//
// Error types registered as critical escalate instead of accumulating:
// Accept returns the problem for immediate propagation and does not retain
// it. By default only the head cause is checked against the critical set;
// set ScanChain to check every cause.
//
// Any code path that used an Accumulator must call Check before treating the
// operation as successful; swallowed problems are invisible otherwise.
type Accumulator struct {
	// ScanChain widens critical matching from the head cause to the whole
	// chain.
	ScanChain bool

	problems []*problem.Problem
	critical map[reflect.Type]struct{}
}

// Critical registers error type E as critical on the accumulator.
func Critical[E error](a *Accumulator) {
	if a.critical == nil {
		a.critical = make(map[reflect.Type]struct{})
	}
	a.critical[reflect.TypeOf((*E)(nil)).Elem()] = struct{}{}
}

// IsCritical reports whether the problem would escalate: its head cause (or
// any cause, with ScanChain) carries an error whose concrete type is
// registered as critical.
func (a *Accumulator) IsCritical(p *problem.Problem) bool {
	if len(a.critical) == 0 || p == nil {
		return false
	}
	if !a.ScanChain {
		_, ok := a.critical[reflect.TypeOf(p.Top().Err())]
		return ok
	}
	for _, c := range p.Causes() {
		if _, ok := a.critical[reflect.TypeOf(c.Err())]; ok {
			return true
		}
	}
	return false
}

// Accept implements Receiver. Critical problems propagate without being
// retained; everything else is appended to the internal list and swallowed.
func (a *Accumulator) Accept(p *problem.Problem) error {
	if p == nil {
		return nil
	}
	if a.IsCritical(p) {
		return p
	}
	a.problems = append(a.problems, p)
	return nil
}

// Add appends a problem unconditionally, bypassing the critical check.
func (a *Accumulator) Add(p *problem.Problem) {
	if p != nil {
		a.problems = append(a.problems, p)
	}
}

// Check is the mandatory gate after accumulating: it returns nil when
// nothing was swallowed, otherwise an *Aggregate wrapping the accumulated
// problems in call order. The accumulator keeps its list, so Check can be
// called again.
func (a *Accumulator) Check() error {
	if len(a.problems) == 0 {
		return nil
	}
	return &Aggregate{problems: slices.Clone(a.problems)}
}

// Len returns the number of accumulated problems.
func (a *Accumulator) Len() int {
	return len(a.problems)
}

// Empty reports whether nothing was accumulated.
func (a *Accumulator) Empty() bool {
	return len(a.problems) == 0
}

// Problems returns the accumulated problems in call order.
func (a *Accumulator) Problems() []*problem.Problem {
	return slices.Clone(a.problems)
}

// Merge combines accumulators into a new one: problem lists are
// concatenated in argument order and critical sets are united. The inputs
// are left untouched. Use one Accumulator per goroutine and Merge after all
// workers have finished.
func Merge(accs ...*Accumulator) *Accumulator {
	merged := &Accumulator{}
	for _, a := range accs {
		if a == nil {
			continue
		}
		merged.problems = append(merged.problems, a.problems...)
		merged.ScanChain = merged.ScanChain || a.ScanChain
		for t := range a.critical {
			if merged.critical == nil {
				merged.critical = make(map[reflect.Type]struct{})
			}
			merged.critical[t] = struct{}{}
		}
	}
	return merged
}
