// Package ers provides some very basic error aggregating and handling
// tools: constant sentinel errors, a wrapping stack for aggregating
// several errors, and helpers for converting panics into errors.
//
// The package has no dependencies outside of a few packages in the
// standard library.
package ers

import "fmt"

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is,
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// Error implements the error interface for ConstError.
func (e Error) Error() string { return string(e) }

// Satisfies the Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return e == ""
	case (err == nil) != (e == ""):
		return false
	default:
		switch x := err.(type) {
		case Error:
			return x == e
		default:
			return false
		}
	}
}

// Wrap produces a wrapped error if the err is non-nil, wrapping the
// error with the provided annotation. When the error is nil, Wrap
// returns nil.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", annotation, err)
}

// Wrapf produces a wrapped error, if the error is non-nil, with a
// formated wrap annotation. When the error is nil, Wrapf does not
// build an error and returns nil.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}
