package ers

import "fmt"

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r != nil {
		switch err := r.(type) {
		case error:
			return Join(err, ErrRecoveredPanic)
		case string:
			return Join(New(err), ErrRecoveredPanic)
		case []error:
			return Join(append(err, ErrRecoveredPanic)...)
		default:
			return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
		}
	}
	return nil
}

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ErrInvariantViolation
	case 1:
		switch ei := args[0].(type) {
		case error:
			return Join(ei, ErrInvariantViolation)
		case string:
			return Join(New(ei), ErrInvariantViolation)
		default:
			return Join(fmt.Errorf("%v", args[0]), ErrInvariantViolation)
		}
	default:
		return Join(fmt.Errorf("%v", args), ErrInvariantViolation)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}
