package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// Sequence is anything that can report its elements in order.
type Sequence[T any] interface {
	Values() []T
	Len() int
}

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertErrorIs asserts that err matches target.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected '%v' to be '%v'", err, target)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if diff := cmp.Diff(b, a); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

// AssertElements asserts that s holds exactly the given elements in order.
func AssertElements[T any](t testing.TB, s Sequence[T], elements ...T) {
	t.Helper()

	if elements == nil {
		elements = []T{}
	}

	got := s.Values()
	if got == nil {
		got = []T{}
	}

	if diff := cmp.Diff(elements, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}

	if n := s.Len(); n != len(elements) {
		t.Fatalf("expected length %d, got %d", len(elements), n)
	}
}
