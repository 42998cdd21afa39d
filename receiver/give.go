package receiver

import "github.com/kbukum/problemkit/problem"

// Give hands err to the receiver when non-nil. It returns nil when err was
// nil or the receiver swallowed it, and the propagation error otherwise.
func Give(r Receiver, err error) error {
	if err == nil {
		return nil
	}
	return r.Accept(problem.Wrap(err))
}

// GiveOk bridges an ordinary fallible call to a receiver. On success it
// returns (v, true, nil). On failure the error is handed to the receiver:
// if swallowed, GiveOk returns (zero, false, nil) so the caller can continue
// with a partial result; if the receiver signals propagation, GiveOk fails
// immediately with that error.
//
// With FailFast the failure always propagates; with an Accumulator it is
// recorded and the loop goes on.
func GiveOk[T any](r Receiver, v T, err error) (T, bool, error) {
	if err == nil {
		return v, true, nil
	}
	var zero T
	if perr := r.Accept(problem.Wrap(err)); perr != nil {
		return zero, false, perr
	}
	return zero, false, nil
}

// GiveOr is like GiveOk but substitutes fallback for the value when the
// failure was swallowed.
func GiveOr[T any](r Receiver, fallback T, v T, err error) (T, error) {
	got, ok, perr := GiveOk(r, v, err)
	if perr != nil {
		return got, perr
	}
	if !ok {
		return fallback, nil
	}
	return got, nil
}

// GiveZero is like GiveOr with the zero value as the fallback.
func GiveZero[T any](r Receiver, v T, err error) (T, error) {
	var zero T
	return GiveOr(r, zero, v, err)
}
