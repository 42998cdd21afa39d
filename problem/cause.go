package problem

import "slices"

// Cause is one link in a Problem's causation chain. It exclusively owns its
// error value and its attachment list.
type Cause struct {
	err         error
	attachments []any
}

func newCause(err error) *Cause {
	return &Cause{err: err}
}

func (c *Cause) clone() *Cause {
	return &Cause{err: c.err, attachments: slices.Clone(c.attachments)}
}

// Err returns the error value held by this cause.
func (c *Cause) Err() error {
	return c.err
}

// Attach appends an attachment to this cause, preserving insertion order.
// Nil attachments are ignored. Returns the receiver for chaining during
// construction.
func (c *Cause) Attach(v any) *Cause {
	if v != nil {
		c.attachments = append(c.attachments, v)
	}
	return c
}

// Attachments returns the cause's attachments in insertion order.
// The returned slice is a copy; mutating it does not affect the cause.
func (c *Cause) Attachments() []any {
	return slices.Clone(c.attachments)
}

// CauseView is a position-aware view of a cause inside its chain.
type CauseView struct {
	problem *Problem
	depth   int
}

// Cause returns the underlying cause.
func (v CauseView) Cause() *Cause {
	return v.problem.causes[v.depth]
}

// Err returns the error value of the viewed cause.
func (v CauseView) Err() error {
	return v.Cause().Err()
}

// Attachments returns the viewed cause's attachments in insertion order.
func (v CauseView) Attachments() []any {
	return v.Cause().Attachments()
}

// Depth returns the position of the cause in the chain; the head is 0.
func (v CauseView) Depth() int {
	return v.depth
}

// IsTop reports whether this is the head of the chain.
func (v CauseView) IsTop() bool {
	return v.depth == 0
}

// IsRoot reports whether this is the root cause (the last link).
func (v CauseView) IsRoot() bool {
	return v.depth == v.problem.Len()-1
}

// Next returns the view of the next cause toward the root. The second
// return value is false when the viewed cause is the root.
func (v CauseView) Next() (CauseView, bool) {
	if v.IsRoot() {
		return CauseView{}, false
	}
	return CauseView{problem: v.problem, depth: v.depth + 1}, true
}

// Under returns the causes strictly below the viewed one, head-to-root:
// everything that caused this specific cause.
func (v CauseView) Under() []*Cause {
	return slices.Clone(v.problem.causes[v.depth+1:])
}
