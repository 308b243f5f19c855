package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// These tests verify the assertion helpers work correctly.
// Failure paths are exercised through a recording testing.TB.

type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertEqual_Failure(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, "e2e4", "e7e5", "move %d", 1)
	if len(r.failures) != 1 {
		t.Fatalf("failures = %d; want 1", len(r.failures))
	}
	AssertContains(t, r.failures[0], "move 1")
	AssertContains(t, r.failures[0], "-want +got")
}

func TestAssertSameElements(t *testing.T) {
	AssertSameElements(t, []string{"b", "a", "c"}, []string{"c", "b", "a"}, StringLess)
	AssertSameElements(t, nil, []string{}, StringLess)

	r := &recorder{TB: t}
	AssertSameElements(r, []string{"a"}, []string{"a", "b"}, StringLess)
	if len(r.failures) != 1 {
		t.Errorf("failures = %d; want 1", len(r.failures))
	}
}

func TestAssertErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)

	r := &recorder{TB: t}
	AssertNoError(r, sentinel)
	AssertError(r, nil)
	AssertErrorIs(r, errors.New("other"), sentinel)
	if len(r.failures) != 3 {
		t.Errorf("failures = %d; want 3", len(r.failures))
	}
}

func TestAssertBooleans(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false)

	r := &recorder{TB: t}
	AssertTrue(r, false, "first")
	AssertFalse(r, true)
	if len(r.failures) != 2 {
		t.Fatalf("failures = %d; want 2", len(r.failures))
	}
	AssertContains(t, r.failures[0], "first")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"format", []interface{}{"ply %d", 3}, "ply 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMustSquare(t *testing.T) {
	if got := MustSquare(t, "e4"); got != 28 {
		t.Errorf("MustSquare(e4) = %d; want 28", got)
	}
	AssertEqual(t, SquareNames(nil), []string{})
}
