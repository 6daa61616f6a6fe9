package invariant_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jasmine-lang/jasmine/core/invariant"
)

// expectPanic runs fn and returns the recovered panic message
func expectPanic(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic")
			}
			msg = fmt.Sprintf("%v", r)
		}()
		fn()
	}()
	return msg
}

// TestPrecondition verifies pass and fail behaviour of Precondition
func TestPrecondition(t *testing.T) {
	invariant.Precondition(true, "this should pass")

	msg := expectPanic(t, func() {
		invariant.Precondition(false, "offset %d past end", 12)
	})
	if !strings.Contains(msg, "PRECONDITION VIOLATION: offset 12 past end") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "at ") {
		t.Errorf("expected caller location, got: %s", msg)
	}
}

// TestInvariantAndUnreachable verifies the internal consistency checks
func TestInvariantAndUnreachable(t *testing.T) {
	invariant.Invariant(1+1 == 2, "math works")

	msg := expectPanic(t, func() { invariant.Invariant(false, "pos must advance") })
	if !strings.Contains(msg, "INVARIANT VIOLATION") {
		t.Errorf("expected INVARIANT VIOLATION, got: %s", msg)
	}

	msg = expectPanic(t, func() { invariant.Unreachable("rule %s", "EOI") })
	if !strings.Contains(msg, "UNREACHABLE VIOLATION: rule EOI") {
		t.Errorf("expected UNREACHABLE VIOLATION, got: %s", msg)
	}
}

// TestNotNil verifies NotNil catches untyped and typed nils
func TestNotNil(t *testing.T) {
	x := 1
	invariant.NotNil(&x, "x")

	var p *int
	msg := expectPanic(t, func() { invariant.NotNil(p, "p") })
	if !strings.Contains(msg, "p must not be nil") {
		t.Errorf("unexpected message: %s", msg)
	}
	expectPanic(t, func() { invariant.NotNil(nil, "value") })
}

// TestInRangeAndExpectNoError verifies the remaining helpers
func TestInRangeAndExpectNoError(t *testing.T) {
	invariant.InRange(5, 0, 10, "offset")
	msg := expectPanic(t, func() { invariant.InRange(11, 0, 10, "offset") })
	if !strings.Contains(msg, "offset must be in range [0, 10], got 11") {
		t.Errorf("unexpected message: %s", msg)
	}

	invariant.ExpectNoError(nil, "fold")
	msg = expectPanic(t, func() { invariant.ExpectNoError(errors.New("boom"), "fold") })
	if !strings.Contains(msg, "fold must not fail: boom") {
		t.Errorf("unexpected message: %s", msg)
	}
}
