package problem

import "errors"

// CauseOf returns the first cause, head-to-root, whose error value matches
// type E. Matching uses errors.As on the cause's own error, so an error of
// type E nested in a cause's source chain also matches. The boolean is
// false when no cause matches.
func CauseOf[E error](p *Problem) (E, CauseView, bool) {
	var zero E
	if p == nil {
		return zero, CauseView{}, false
	}
	for i, c := range p.causes {
		var target E
		if errors.As(c.err, &target) {
			return target, CauseView{problem: p, depth: i}, true
		}
	}
	return zero, CauseView{}, false
}

// CausesOf returns every cause whose error value matches type E,
// head-to-root.
func CausesOf[E error](p *Problem) []CauseView {
	if p == nil {
		return nil
	}
	var views []CauseView
	for i, c := range p.causes {
		var target E
		if errors.As(c.err, &target) {
			views = append(views, CauseView{problem: p, depth: i})
		}
	}
	return views
}

// HasType reports whether any cause in the chain carries an error of type E.
func HasType[E error](p *Problem) bool {
	_, _, ok := CauseOf[E](p)
	return ok
}

// CauseFor returns the first cause, head-to-root, whose error value equals
// target under errors.Is semantics. Used for sentinel and tag matching.
func (p *Problem) CauseFor(target error) (CauseView, bool) {
	if p == nil || target == nil {
		return CauseView{}, false
	}
	for i, c := range p.causes {
		if errors.Is(c.err, target) {
			return CauseView{problem: p, depth: i}, true
		}
	}
	return CauseView{}, false
}

// CausesFor returns every cause whose error value equals target under
// errors.Is semantics, head-to-root.
func (p *Problem) CausesFor(target error) []CauseView {
	if p == nil || target == nil {
		return nil
	}
	var views []CauseView
	for i, c := range p.causes {
		if errors.Is(c.err, target) {
			views = append(views, CauseView{problem: p, depth: i})
		}
	}
	return views
}

// Has reports whether any cause in the chain equals target under errors.Is
// semantics.
func (p *Problem) Has(target error) bool {
	_, ok := p.CauseFor(target)
	return ok
}

// Sources returns err followed by its nested source chain, obtained by
// repeated errors.Unwrap. This is the error value's own causation, distinct
// from and composable with a Problem's chain traversal.
func Sources(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}
