package ers

import "errors"

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// ErrLimitExceeded is a constant sentinel error that indicates that a
// limit has been exceeded. These are generally retriable.
const ErrLimitExceeded Error = Error("limit exceeded")

// ErrRecoveredPanic is at the root of any error returned by a
// function in this module that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by violated structural
// invariants.
const ErrInvariantViolation Error = Error("invariant violation")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, _ := r.(error)

	if r == nil || Ok(err) {
		return false
	}

	return errors.Is(err, ErrInvariantViolation)
}
