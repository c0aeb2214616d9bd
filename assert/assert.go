// Package assert provides generic test assertions. Every assertion is
// fatal: a failure stops the test at the failing line. The check
// package carries the same assertions in a non-fatal form.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// True fails the test unless cond holds.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// Equal fails the test when the values differ. Pointers compare by
// address, not by the values they point to.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual fails the test when the values are equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// NotNil fails the test when val is nil, including a typed nil held
// in an interface. Use Error for error values.
func NotNil(t testing.TB, val any) {
	t.Helper()
	if _, ok := val.(error); ok {
		t.Error("use assert.Error() for checking errors")
	}
	if isNil(val) {
		t.Fatalf("value (type=%T) was nil", val)
	}
}

// NotNilPtr is NotNil for pointers, without reflection.
func NotNilPtr[T any](t testing.TB, val *T) { t.Helper(); NotEqual(t, val, nil) }

// Error fails the test if err is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if err is not nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// NotType fails the test when obj has the type T.
func NotType[T any](t testing.TB, obj any) {
	t.Helper()
	if _, ok := obj.(T); ok {
		var tn T
		t.Fatalf("%v has type %T", obj, tn)
	}
}

// ErrorIs fails the test unless errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs fails the test if errors.Is(err, target).
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v>, is <%v>", err, target)
	}
}

// NotPanic fails the test if fn panics.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// EqualItems fails the test unless both slices hold equal items in
// the same order, and reports the first difference.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}
	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// EqualDiff compares want and got with go-cmp and fails the test with
// the full diff (-want +got) when they differ.
func EqualDiff[T any](t testing.TB, want, got T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Substring fails the test unless substr occurs in str.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}

func isNil(in any) bool {
	v := reflect.ValueOf(in)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Invalid:
		return true
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
