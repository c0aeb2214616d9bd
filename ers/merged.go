package ers

import (
	"errors"
	"strings"
)

// Stack represents the error type returned by Join when it has more
// than one error. The implementation provides support for
// errors.Unwrap and errors.Is, and provides an Unwind() method which
// returns a slice of the constituent errors for additional use.
//
// The zero value is an empty stack ready for use.
type Stack struct {
	err   error
	next  *Stack
	count int
}

// Join takes a slice of errors and converts it into an *ers.Stack
// typed error. Nil errors are ignored; when only one error is
// non-nil, that error is returned unwrapped.
func Join(errs ...error) error {
	s := &Stack{}
	s.Add(errs...)
	return s.Resolve()
}

// Len reports the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Push adds an error to the top of the stack. Nil errors are
// ignored, and stacks (or errors that unwrap to slices) are
// flattened.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		errs := werr.Unwind()
		for idx := len(errs) - 1; idx >= 0; idx-- {
			e.Push(errs[idx])
		}
	case interface{ Unwrap() []error }:
		for _, err := range werr.Unwrap() {
			e.Push(err)
		}
	default:
		e.next = &Stack{next: e.next, err: e.err, count: e.count}
		e.err = err
		e.count++
	}
}

// Add pushes the errors so that the first argument ends up on top
// of the stack, which preserves argument order in Error and Unwind.
func (e *Stack) Add(errs ...error) {
	for idx := len(errs) - 1; idx >= 0; idx-- {
		e.Push(errs[idx])
	}
}

// Ok returns true when the stack holds no errors.
func (e *Stack) Ok() bool { return e.Len() == 0 }

// Resolve returns nil for an empty stack, the only error for a stack
// of one, and the stack itself otherwise.
func (e *Stack) Resolve() error {
	switch e.Len() {
	case 0:
		return nil
	case 1:
		return e.err
	default:
		return e
	}
}

// Error produces the aggregated error strings from this method, top
// of the stack first.
func (e *Stack) Error() string {
	if e.err == nil && e.next == nil {
		return "<nil>"
	}

	errs := e.Unwind()
	strs := make([]string, 0, len(errs))
	for _, err := range errs {
		strs = append(strs, err.Error())
	}

	return strings.Join(strs, ": ")
}

// Is calls errors.Is on the underlying error to provied compatibility
// with errors.Is, which takes advantage of this interface.
func (e *Stack) Is(err error) bool { return errors.Is(e.err, err) }

// As calls errors.As on the underlying error to provied compatibility
// with errors.As, which takes advantage of this interface.
func (e *Stack) As(target any) bool { return errors.As(e.err, target) }

// Unwrap returns the next iterator in the stack, and is compatible
// with errors.Unwrap.
func (e *Stack) Unwrap() error {
	if e.next == nil || e.next.err == nil {
		return nil
	}
	return e.next
}

// Unwind returns the errors in the stack, most recently pushed
// first.
func (e *Stack) Unwind() []error {
	out := make([]error, 0, e.Len())
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		out = append(out, iter.err)
	}
	return out
}
