package problem

import (
	"fmt"
	"slices"
	"strings"
)

// Problem is an ordered causation chain. The first cause is the head (the
// most recent wrapping) and the last cause is the root cause. A Problem is
// never empty: construction always starts from at least one error value.
//
// Problem implements error, so it can cross any boundary that expects the
// standard error capability. Display joins the cause messages head to root
// with ": "; the exact layout is not contractual.
type Problem struct {
	causes []*Cause
}

// Wrap creates a single-cause Problem from an error value. An existing
// *Problem passes through unchanged; a nil error yields a nil Problem.
func Wrap(err error) *Problem {
	if err == nil {
		return nil
	}
	if p, ok := err.(*Problem); ok {
		return p
	}
	return &Problem{causes: []*Cause{newCause(err)}}
}

// New creates a single-cause Problem from a plain text message.
func New(text string) *Problem {
	return Wrap(Message(text))
}

// Newf creates a single-cause Problem from a formatted message.
func Newf(format string, args ...any) *Problem {
	return Wrap(Message(fmt.Sprintf(format, args...)))
}

// Via returns a new Problem with a new head cause prepended in front of the
// existing chain; the previous chain becomes the new head's tail. The
// receiver is left unchanged, so a chain held elsewhere (a sentinel, an
// accumulated entry) is never corrupted by further wrapping. Existing causes
// are never reordered, so the root cause is stable once established. A nil
// receiver behaves like Wrap(err); a nil err leaves the chain unchanged.
// If err is itself a *Problem its whole chain is spliced in front.
func (p *Problem) Via(err error) *Problem {
	if err == nil {
		return p
	}
	if p == nil {
		return Wrap(err)
	}
	if other, ok := err.(*Problem); ok && other != nil {
		return other.Behind(p)
	}
	causes := make([]*Cause, 0, len(p.causes)+1)
	causes = append(causes, newCause(err))
	causes = append(causes, p.causes...)
	return &Problem{causes: causes}
}

// With returns a new Problem whose head cause carries the attachment.
// Attachments always describe the most specific error: whichever cause is
// the head at attach time. The head is copied before attaching, so chains
// sharing a tail never observe each other's attachments.
func (p *Problem) With(attachment any) *Problem {
	if p == nil || attachment == nil {
		return p
	}
	causes := slices.Clone(p.causes)
	causes[0] = causes[0].clone()
	causes[0].Attach(attachment)
	return &Problem{causes: causes}
}

// Behind splices this chain in front of other's, so other's root cause
// remains the root of the combined chain. Returns a new combined Problem;
// both inputs are left unchanged.
func (p *Problem) Behind(other *Problem) *Problem {
	if other == nil {
		return p
	}
	if p == nil {
		return other
	}
	causes := make([]*Cause, 0, len(p.causes)+len(other.causes))
	causes = append(causes, p.causes...)
	causes = append(causes, other.causes...)
	return &Problem{causes: causes}
}

// Top returns the head cause: the most recently added, most specific error.
func (p *Problem) Top() *Cause {
	if p == nil {
		return nil
	}
	return p.causes[0]
}

// Root returns the root cause: the first error encountered.
func (p *Problem) Root() *Cause {
	if p == nil {
		return nil
	}
	return p.causes[len(p.causes)-1]
}

// Len returns the number of causes in the chain.
func (p *Problem) Len() int {
	if p == nil {
		return 0
	}
	return len(p.causes)
}

// Causes returns the chain head-to-root. The chain is immutable once built,
// so repeated calls are safe and independent.
func (p *Problem) Causes() []*Cause {
	if p == nil {
		return nil
	}
	return slices.Clone(p.causes)
}

// Errors returns the error value of each cause, head-to-root. This walks the
// chain only; it does not descend into any error's own nested source chain
// (see Sources for that).
func (p *Problem) Errors() []error {
	if p == nil {
		return nil
	}
	errs := make([]error, len(p.causes))
	for i, c := range p.causes {
		errs[i] = c.err
	}
	return errs
}

// Error implements the error interface.
func (p *Problem) Error() string {
	parts := make([]string, len(p.causes))
	for i, c := range p.causes {
		parts[i] = c.err.Error()
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the chain's error values to errors.Is and errors.As.
func (p *Problem) Unwrap() []error {
	return p.Errors()
}

// Err converts the Problem to an ordinary error value. It returns an
// untyped nil for a nil Problem, so the result is safe to compare to nil.
func (p *Problem) Err() error {
	if p == nil {
		return nil
	}
	return p
}

// Attachments returns every attachment in the chain, head-to-root, each
// cause's attachments in insertion order.
func (p *Problem) Attachments() []any {
	if p == nil {
		return nil
	}
	var all []any
	for _, c := range p.causes {
		all = append(all, c.attachments...)
	}
	return all
}
