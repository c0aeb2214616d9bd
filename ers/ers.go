package ers

import "fmt"

// When constructs an ers.Error-typed error value IF the conditional
// is true, and returns nil otherwise. Error and error values are
// passed through; other values are formatted with their type.
func When(cond bool, val any) error {
	if !cond {
		return nil
	}

	switch e := val.(type) {
	case error:
		return e
	case string:
		return Error(e)
	default:
		return fmt.Errorf("error=%v [%T]", e, e)
	}
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Ok returns true when the error is nil, and false otherwise. It
// should always be inlined, and mostly exists for clarity at call
// sites in bool/Ok check relevant contexts.
func Ok(err error) bool {
	switch e := err.(type) {
	case nil:
		return true
	case interface{ Ok() bool }:
		return e.Ok()
	default:
		return false
	}
}
